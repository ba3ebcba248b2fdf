// Package svg provides an SVG backend for radar plans.
//
// Each command becomes one SVG element, in plan order, carrying the class
// names "poly", "dot", "radius", "label" and "iconUserTotal" so existing
// stylesheets keep working. Icons are embedded as PNG data URIs.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/radar/backend/svg"
//
//	b, _ := radar.NewBackend("svg")
//	_ = plan.Playback(b)
//	_, _ = b.(radar.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/radar"
	"github.com/gogpu/radar/icon"
)

func init() {
	radar.Register("svg", func() radar.Backend {
		return NewBackend()
	})
}

// Backend renders plans as an SVG document.
type Backend struct {
	icons *icon.Set
	buf   bytes.Buffer
	uris  map[string]string
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

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.icons == nil {
		b.icons = icon.Builtin()
	}
	return b
}

// Begin discards previous output and opens a new document.
func (b *Backend) Begin(width, height float64) error {
	b.buf.Reset()
	b.uris = make(map[string]string)
	fmt.Fprintf(&b.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`,
		num(width), num(height))
	b.buf.WriteByte('\n')
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	return nil
}

// DrawRing writes an unfilled polygon.
func (b *Backend) DrawRing(cmd radar.RingCommand) {
	fmt.Fprintf(&b.buf, `<polygon class="poly" points="%s" stroke="%s" stroke-width="%s" fill="none"/>`,
		points(cmd.Points), cmd.Stroke.Hex(), num(cmd.StrokeWidth))
	b.buf.WriteByte('\n')
}

// DrawBullet writes a filled circle.
func (b *Backend) DrawBullet(cmd radar.BulletCommand) {
	fmt.Fprintf(&b.buf, `<circle class="dot" cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(cmd.Center.X), num(cmd.Center.Y), num(cmd.Radius), cmd.Fill.Hex())
	b.buf.WriteByte('\n')
}

// DrawSpoke writes a line.
func (b *Backend) DrawSpoke(cmd radar.SpokeCommand) {
	fmt.Fprintf(&b.buf, `<line class="radius" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
		num(cmd.From.X), num(cmd.From.Y), num(cmd.To.X), num(cmd.To.Y), cmd.Stroke.Hex(), num(cmd.StrokeWidth))
	b.buf.WriteByte('\n')
}

// DrawLabel writes a text element.
func (b *Backend) DrawLabel(cmd radar.LabelCommand) {
	fmt.Fprintf(&b.buf, `<text class="label" x="%s" y="%s"`, num(cmd.Pos.X), num(cmd.Pos.Y))
	if cmd.DX != 0 {
		fmt.Fprintf(&b.buf, ` dx="%s"`, num(cmd.DX))
	}
	fmt.Fprintf(&b.buf, ` fill="%s" style="text-anchor: %s">%s</text>`,
		cmd.Fill.Hex(), cmd.Anchor, escape(cmd.Text))
	b.buf.WriteByte('\n')
}

// DrawSeries writes a filled, stroked polygon.
func (b *Backend) DrawSeries(cmd radar.SeriesCommand) {
	fmt.Fprintf(&b.buf, `<polygon class="poly" points="%s" stroke="%s" stroke-width="%s" fill="%s" fill-opacity="%s"/>`,
		points(cmd.Points), cmd.Stroke.Hex(), num(cmd.StrokeWidth), cmd.Fill.Hex(), num(cmd.FillOpacity))
	b.buf.WriteByte('\n')
}

// DrawIcon writes an image element. Unknown icons are skipped.
func (b *Backend) DrawIcon(cmd radar.IconCommand) {
	uri, ok := b.uris[cmd.Icon]
	if !ok {
		var err error
		uri, err = b.icons.DataURI(cmd.Icon)
		if err != nil {
			radar.Logger().Warn("svg: icon skipped", "icon", cmd.Icon, "err", err)
			return
		}
		b.uris[cmd.Icon] = uri
	}
	fmt.Fprintf(&b.buf, `<image class="iconUserTotal" width="%s" height="%s" x="%s" y="%s" href="%s"/>`,
		num(cmd.Width), num(cmd.Height), num(cmd.Pos.X), num(cmd.Pos.Y), uri)
	b.buf.WriteByte('\n')
}

// Bytes returns the rendered document.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the rendered document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the rendered document to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func points(pts []radar.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
