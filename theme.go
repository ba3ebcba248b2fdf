package radar

// Theme carries the fixed presentation values of the grid and labels.
// Series styling lives on each Series; see SeriesStyle.
type Theme struct {
	GridColor       Color
	RingWidth       float64 // stroke width of inner rings
	OuterRingWidth  float64 // stroke width of the outermost ring
	BulletColor     Color
	BulletRadius    float64
	SpokeWidth      float64
	LabelColor      Color
	LabelMargin     float64 // category label offset as a fraction of the shorter side
	LabelMarginMax  float64 // upper bound for the category label offset
	PercentLabelDX  float64 // horizontal nudge of the percentage labels
	SeriesLineWidth float64 // default stroke width of series polygons
}

// DefaultTheme returns the stock theme: grey grid with a
// heavier outer ring, black labels.
func DefaultTheme() Theme {
	return Theme{
		GridColor:       Grey,
		RingWidth:       1,
		OuterRingWidth:  2,
		BulletColor:     Grey,
		BulletRadius:    4,
		SpokeWidth:      1,
		LabelColor:      Black,
		LabelMargin:     0.1,
		LabelMarginMax:  20,
		PercentLabelDX:  20,
		SeriesLineWidth: 3,
	}
}
