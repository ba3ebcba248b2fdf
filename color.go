package radar

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an 8-bit RGBA color, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Common colors used by the default theme and series styles.
var (
	Black = RGB(0x00, 0x00, 0x00)
	White = RGB(0xff, 0xff, 0xff)
	Grey  = RGB(0x80, 0x80, 0x80)
	Red   = RGB(0xff, 0x00, 0x00)
	Navy  = RGB(0x1e, 0x32, 0x46)
)

// namedColors holds the names accepted by ParseColor. Names of the
// package colors resolve to those colors, not to their CSS namesakes.
var namedColors = map[string]Color{
	"black": Black,
	"white": White,
	"grey":  Grey,
	"gray":  Grey,
	"red":   Red,
	"navy":  Navy,
	"blue":  RGB(0x00, 0x00, 0xff),
	"green": RGB(0x00, 0x80, 0x00),
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithOpacity returns the color with its alpha scaled by opacity in [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}

// Hex returns the color as a CSS hex string. The alpha channel is
// included only when the color is not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses a CSS color name or a hex string.
// Supported hex formats: "RGB", "RRGGBB", "RRGGBBAA", with or without '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var v [4]uint32
	v[3] = 0xff
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			if !parseHex(hex[i:i+1], &v[i]) {
				return Color{}, &ColorError{Value: s}
			}
			v[i] *= 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			if !parseHex(hex[2*i:2*i+2], &v[i]) {
				return Color{}, &ColorError{Value: s}
			}
		}
	default:
		return Color{}, &ColorError{Value: s}
	}
	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
