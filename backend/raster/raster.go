// Package raster provides a raster backend for radar plans.
// It renders commands into an *image.RGBA.
//
// Polygons are filled with golang.org/x/image/vector, strokes are expanded
// into fill outlines first, icons are resampled with
// golang.org/x/image/draw and labels are drawn with package text.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/radar/backend/raster"
//
//	b := raster.NewBackend()
//	_ = plan.Playback(b)
//	_ = b.SavePNG("chart.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/radar"
	"github.com/gogpu/radar/icon"
	"github.com/gogpu/radar/internal/stroke"
	"github.com/gogpu/radar/text"
)

func init() {
	radar.Register("raster", func() radar.Backend {
		return NewBackend()
	})
}

// DefaultFontSize is the label size used when no face is configured.
const DefaultFontSize = 12

// Surface limits. Begin rejects larger sizes instead of allocating them.
const (
	MaxSide   = 1 << 14
	MaxPixels = 1 << 26
)

var (
	// ErrSurfaceTooLarge is returned by Begin when the requested surface
	// exceeds MaxSide or MaxPixels.
	ErrSurfaceTooLarge = errors.New("raster: surface too large")

	// ErrNoSurface is returned by output methods called before Begin.
	ErrNoSurface = errors.New("raster: no surface")
)

// Backend rasterizes plans. It implements radar.Backend,
// radar.WriterBackend and radar.FileBackend.
type Backend struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	icons      *icon.Set
	face       *text.Face
	background color.Color
	scaler     draw.Scaler
}

var (
	_ radar.Backend       = (*Backend)(nil)
	_ radar.WriterBackend = (*Backend)(nil)
	_ radar.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithIcons sets the icon registry. The default is icon.Builtin().
func WithIcons(s *icon.Set) Option {
	return func(b *Backend) {
		b.icons = s
	}
}

// WithFace sets the label face. The default is Go Regular at
// DefaultFontSize.
func WithFace(f *text.Face) Option {
	return func(b *Backend) {
		b.face = f
	}
}

// WithBackground sets the color the surface is cleared to. Use
// color.Transparent for a transparent PNG.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// NewBackend creates a new raster backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		background: color.White,
		scaler:     draw.CatmullRom,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.icons == nil {
		b.icons = icon.Builtin()
	}
	if b.face == nil {
		if src, err := text.DefaultSource(); err == nil {
			b.face, err = src.Face(DefaultFontSize)
			if err != nil {
				radar.Logger().Warn("raster: default face unavailable", "err", err)
			}
		}
	}
	return b
}

// Begin allocates a cleared surface. Sizes are rounded up to whole
// pixels; a non-positive size yields an empty image. Sizes beyond
// MaxSide or MaxPixels fail with ErrSurfaceTooLarge and leave no surface.
func (b *Backend) Begin(width, height float64) error {
	w, h := pixels(width), pixels(height)
	if w < 0 || h < 0 || w*h > MaxPixels {
		b.img, b.z = nil, nil
		return fmt.Errorf("%w: %vx%v", ErrSurfaceTooLarge, width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	b.z = vector.NewRasterizer(w, h)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// DrawRing strokes a closed grid polygon.
func (b *Backend) DrawRing(cmd radar.RingCommand) {
	b.fillPolygons(stroke.Polyline(toStroke(cmd.Points), cmd.StrokeWidth, true), cmd.Stroke)
}

// DrawBullet fills a circle.
func (b *Backend) DrawBullet(cmd radar.BulletCommand) {
	disc := stroke.Disc(stroke.Point(cmd.Center), cmd.Radius)
	if disc == nil {
		return
	}
	b.fillPolygons([]stroke.Polygon{disc}, cmd.Fill)
}

// DrawSpoke strokes a line.
func (b *Backend) DrawSpoke(cmd radar.SpokeCommand) {
	b.fillPolygons(stroke.Line(stroke.Point(cmd.From), stroke.Point(cmd.To), cmd.StrokeWidth), cmd.Stroke)
}

// DrawLabel draws text with its baseline at the command position.
func (b *Backend) DrawLabel(cmd radar.LabelCommand) {
	if b.face == nil || cmd.Text == "" || b.img == nil {
		return
	}
	x := cmd.Pos.X + cmd.DX
	switch cmd.Anchor {
	case radar.AnchorMiddle:
		x -= b.face.Measure(cmd.Text) / 2
	case radar.AnchorEnd:
		x -= b.face.Measure(cmd.Text)
	}
	b.face.Draw(b.img, cmd.Text, x, cmd.Pos.Y, cmd.Fill.NRGBA())
}

// DrawSeries fills the polygon with the translucent fill color, then
// strokes its outline.
func (b *Backend) DrawSeries(cmd radar.SeriesCommand) {
	if len(cmd.Points) >= 3 {
		b.fillPolygons([]stroke.Polygon{toStroke(cmd.Points)}, cmd.Fill.WithOpacity(cmd.FillOpacity))
	}
	b.fillPolygons(stroke.Polyline(toStroke(cmd.Points), cmd.StrokeWidth, true), cmd.Stroke)
}

// DrawIcon resamples the registered icon into the command rectangle.
// Unknown icons are skipped.
func (b *Backend) DrawIcon(cmd radar.IconCommand) {
	if b.img == nil {
		return
	}
	src, ok := b.icons.Get(cmd.Icon)
	if !ok {
		radar.Logger().Warn("raster: icon skipped", "icon", cmd.Icon)
		return
	}
	dst := image.Rect(
		int(math.Round(cmd.Pos.X)),
		int(math.Round(cmd.Pos.Y)),
		int(math.Round(cmd.Pos.X+cmd.Width)),
		int(math.Round(cmd.Pos.Y+cmd.Height)),
	)
	if dst.Empty() {
		return
	}
	b.scaler.Scale(b.img, dst, src, src.Bounds(), draw.Over, nil)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo encodes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNoSurface
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the image as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	if b.img == nil {
		return ErrNoSurface
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SavePNG is an alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// fillPolygons fills the union of polys in one rasterizer pass, so
// overlapping stroke pieces blend once.
func (b *Backend) fillPolygons(polys []stroke.Polygon, c radar.Color) {
	if b.img == nil || len(polys) == 0 || c.A == 0 {
		return
	}
	bounds := b.img.Bounds()
	if bounds.Empty() {
		return
	}
	b.z.Reset(bounds.Dx(), bounds.Dy())
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		b.z.MoveTo(float32(p[0].X), float32(p[0].Y))
		for _, q := range p[1:] {
			b.z.LineTo(float32(q.X), float32(q.Y))
		}
		b.z.ClosePath()
	}
	b.z.Draw(b.img, bounds, image.NewUniform(c.NRGBA()), image.Point{})
}

func toStroke(pts []radar.Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point(p)
	}
	return out
}

// pixels rounds v up to whole pixels. It returns 0 for non-positive or
// NaN sizes and -1 for sizes beyond MaxSide.
func pixels(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v > MaxSide {
		return -1
	}
	return int(math.Ceil(v))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
