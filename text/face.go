package text

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a font at one size. The x/image face underneath is not safe for
// concurrent use, so drawing is serialized.
type Face struct {
	source *Source
	size   float64

	mu   sync.Mutex
	face font.Face
}

// Size returns the face size in surface units.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the distance from the baseline to the top of the tallest
// glyphs.
func (f *Face) Ascent() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(f.face.Metrics().Ascent)
}

// Measure returns the shaped advance width of s.
func (f *Face) Measure(s string) float64 {
	return measure(f.source.shaped, s, f.size)
}

// Draw renders s with its baseline origin at (x, y). Right-to-left runs
// are reordered for display first.
func (f *Face) Draw(dst draw.Image, s string, x, y float64, c color.Color) {
	if s == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(VisualOrder(s))
}

// Close releases the underlying face.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Close()
}

// floatToFixed converts a float64 to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
