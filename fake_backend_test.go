package radar

import "errors"

// fakeBackend records every call for inspection.
type fakeBackend struct {
	begins   int
	ends     int
	width    float64
	height   float64
	drawn    []CommandType
	failNext bool
}

var errFake = errors.New("fake backend failure")

func (b *fakeBackend) Begin(width, height float64) error {
	if b.failNext {
		b.failNext = false
		return errFake
	}
	b.begins++
	b.width, b.height = width, height
	b.drawn = b.drawn[:0]
	return nil
}

func (b *fakeBackend) End() error               { b.ends++; return nil }
func (b *fakeBackend) DrawRing(RingCommand)     { b.drawn = append(b.drawn, CmdRing) }
func (b *fakeBackend) DrawBullet(BulletCommand) { b.drawn = append(b.drawn, CmdBullet) }
func (b *fakeBackend) DrawSpoke(SpokeCommand)   { b.drawn = append(b.drawn, CmdSpoke) }
func (b *fakeBackend) DrawLabel(LabelCommand)   { b.drawn = append(b.drawn, CmdLabel) }
func (b *fakeBackend) DrawSeries(SeriesCommand) { b.drawn = append(b.drawn, CmdSeries) }
func (b *fakeBackend) DrawIcon(IconCommand)     { b.drawn = append(b.drawn, CmdIcon) }
