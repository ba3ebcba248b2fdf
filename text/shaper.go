package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperPool pools HarfbuzzShaper instances. A shaper keeps internal
// buffers and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// measure shapes s with HarfBuzz and returns the total advance.
func measure(f *gtfont.Font, s string, size float64) float64 {
	if s == "" || f == nil {
		return 0
	}
	runes := []rune(s)
	dir := di.DirectionLTR
	if IsRTL(s) {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		// font.Face is not safe for concurrent use; NewFace is cheap.
		Face:     gtfont.NewFace(f),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	var w float64
	for _, g := range out.Glyphs {
		w += fixedToFloat(g.Advance)
	}
	return w
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
