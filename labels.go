package radar

import (
	"math"
	"strconv"
)

// Anchor is the horizontal alignment of a label relative to its position.
type Anchor uint8

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

// LabelKind distinguishes the two label sets.
type LabelKind uint8

const (
	LabelCategory LabelKind = iota
	LabelPercent
)

// Label is a positioned text item. Pos is the baseline anchor point; DX is
// an extra horizontal offset applied after anchoring.
type Label struct {
	Kind   LabelKind
	Index  int
	Pos    Point
	DX     float64
	Text   string
	Anchor Anchor
}

// CategoryLabelRadius returns the radius the category names are placed on:
// the outer radius plus a margin of margin·minSide, capped at maxMargin.
func CategoryLabelRadius(l Layout, margin, maxMargin float64) float64 {
	return l.Radius + math.Min(l.Viewport.MinSide()*margin, maxMargin)
}

// CategoryLabels places one centered label per category just outside the
// outer ring. Missing names yield empty labels so indices stay aligned.
func CategoryLabels(l Layout, names []string, t Theme) []Label {
	points := l.Vertices(CategoryLabelRadius(l, t.LabelMargin, t.LabelMarginMax))
	labels := make([]Label, len(points))
	for i, p := range points {
		var name string
		if i < len(names) {
			name = names[i]
		}
		labels[i] = Label{
			Kind:   LabelCategory,
			Index:  i,
			Pos:    p,
			Text:   name,
			Anchor: AnchorMiddle,
		}
	}
	return labels
}

// PercentLabels places levels+1 scale labels on the segment from the center
// to vertex 0, at λ = i/levels, reading "0%" through "100%".
func PercentLabels(l Layout, levels int, t Theme) []Label {
	if levels < 1 {
		levels = DefaultLevels
	}
	top := l.OuterVertices()[0]
	labels := make([]Label, levels+1)
	for i := range labels {
		lambda := float64(i) / float64(levels)
		labels[i] = Label{
			Kind:   LabelPercent,
			Index:  i,
			Pos:    l.Center.Lerp(top, lambda),
			DX:     t.PercentLabelDX,
			Text:   FormatPercent(i, levels),
			Anchor: AnchorMiddle,
		}
	}
	return labels
}

// FormatPercent renders step i of levels as a percentage. The value is
// computed as i·100/levels so that exact steps print without float noise.
func FormatPercent(i, levels int) string {
	v := float64(i) * 100 / float64(levels)
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
