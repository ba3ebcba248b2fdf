package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a parsed font shared by any number of faces.
// Source is safe for concurrent use.
type Source struct {
	sfnt   *sfnt.Font
	shaped *gtfont.Font
}

// NewSource parses TrueType or OpenType font data.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Source{sfnt: f, shaped: gt.Font}, nil
}

var (
	defaultOnce sync.Once
	defaultSrc  *Source
	defaultErr  error
)

// DefaultSource returns the embedded Go Regular font. It is parsed once.
func DefaultSource() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSrc, defaultErr = NewSource(goregular.TTF)
	})
	return defaultSrc, defaultErr
}

// Face creates a face of the given size in points at 72 DPI, so one
// point equals one surface unit.
func (s *Source) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	ff, err := opentype.NewFace(s.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: new face: %w", err)
	}
	return &Face{source: s, size: size, face: ff}, nil
}
