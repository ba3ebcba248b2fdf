package text

import "golang.org/x/text/unicode/bidi"

// order runs the bidi algorithm over s with the paragraph direction taken
// from its first strong character.
func order(s string) (bidi.Ordering, bool) {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return bidi.Ordering{}, false
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return bidi.Ordering{}, false
	}
	return o, true
}

// IsRTL reports whether s is entirely right-to-left text.
func IsRTL(s string) bool {
	if s == "" {
		return false
	}
	o, ok := order(s)
	return ok && o.Direction() == bidi.RightToLeft
}

// VisualOrder returns s with its runs in display order and the runes of
// right-to-left runs reversed. Left-to-right input comes back unchanged.
func VisualOrder(s string) string {
	if s == "" {
		return s
	}
	o, ok := order(s)
	if !ok || o.Direction() == bidi.LeftToRight {
		return s
	}

	out := make([]rune, 0, len(s))
	for i := 0; i < o.NumRuns(); i++ {
		run := o.Run(i)
		rs := []rune(run.String())
		if run.Direction() == bidi.RightToLeft {
			for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
				rs[l], rs[r] = rs[r], rs[l]
			}
		}
		out = append(out, rs...)
	}
	return string(out)
}
