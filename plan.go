package radar

// Plan is an immutable, ordered list of drawing commands produced by one
// Build call. Commands appear in paint order: grid, labels, series,
// markers.
type Plan struct {
	width, height float64
	commands      []Command
}

// Width returns the surface width the plan was built for.
func (p *Plan) Width() float64 { return p.width }

// Height returns the surface height the plan was built for.
func (p *Plan) Height() float64 { return p.height }

// Len returns the number of commands.
func (p *Plan) Len() int { return len(p.commands) }

// Empty reports whether the plan draws nothing.
func (p *Plan) Empty() bool { return len(p.commands) == 0 }

// Commands returns a copy of the command list.
func (p *Plan) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Count returns the number of commands of type t.
func (p *Plan) Count(t CommandType) int {
	n := 0
	for _, c := range p.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the plan onto b. Begin is always called, so an empty
// plan clears the backend.
func (p *Plan) Playback(b Backend) error {
	if err := b.Begin(p.width, p.height); err != nil {
		return err
	}
	for _, c := range p.commands {
		switch cmd := c.(type) {
		case RingCommand:
			b.DrawRing(cmd)
		case BulletCommand:
			b.DrawBullet(cmd)
		case SpokeCommand:
			b.DrawSpoke(cmd)
		case LabelCommand:
			b.DrawLabel(cmd)
		case SeriesCommand:
			b.DrawSeries(cmd)
		case IconCommand:
			b.DrawIcon(cmd)
		}
	}
	return b.End()
}
