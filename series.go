package radar

import (
	"math"
	"sort"
)

// Role tags a series with its meaning in the chart. Styling and draw order
// are derived from the role, never from the series position.
type Role uint8

const (
	// RolePrimary is the "current" series, drawn on top.
	RolePrimary Role = iota
	// RoleSecondary is the "total" series, drawn beneath.
	RoleSecondary
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ParseRole parses "primary"/"current" or "secondary"/"total".
func ParseRole(s string) (Role, bool) {
	switch s {
	case "primary", "current":
		return RolePrimary, true
	case "secondary", "total":
		return RoleSecondary, true
	}
	return 0, false
}

// drawRank orders roles from bottom to top.
func (r Role) drawRank() int {
	if r == RolePrimary {
		return 1
	}
	return 0
}

// SeriesStyle is the presentation of one series polygon.
type SeriesStyle struct {
	Stroke      Color
	StrokeWidth float64
	Fill        Color
	FillOpacity float64
}

// IsZero reports whether the style is unset.
func (s SeriesStyle) IsZero() bool {
	return s == SeriesStyle{}
}

// DefaultStyle returns the style of the given role: a strong red for the
// primary series, a faint navy for the secondary one.
func DefaultStyle(r Role) SeriesStyle {
	if r == RolePrimary {
		return SeriesStyle{Stroke: Red, StrokeWidth: 3, Fill: Red, FillOpacity: 0.8}
	}
	return SeriesStyle{Stroke: Navy, StrokeWidth: 3, Fill: Navy, FillOpacity: 0.15}
}

// Series is one set of values, one per category. The implicit minimum is
// always zero.
type Series struct {
	Name   string
	Role   Role
	Values []float64

	// Style overrides DefaultStyle(Role) when non-zero.
	Style SeriesStyle
}

// ResolvedStyle returns the explicit style or the role default.
func (s Series) ResolvedStyle() SeriesStyle {
	if s.Style.IsZero() {
		return DefaultStyle(s.Role)
	}
	return s.Style
}

// DegeneratePolicy decides what a series with maximum zero renders as.
type DegeneratePolicy uint8

const (
	// CollapseToCenter renders every vertex at the chart center.
	CollapseToCenter DegeneratePolicy = iota
	// SkipSeries renders nothing for the series.
	SkipSeries
)

// String returns the policy name.
func (p DegeneratePolicy) String() string {
	if p == SkipSeries {
		return "skip"
	}
	return "collapse"
}

// Normalize maps values to fractions of their maximum.
//
// It returns an *InvalidValueError for a negative or non-finite value. When
// every value is zero it returns all-zero fractions together with
// ErrDegenerateSeries, so callers can still collapse the series to the
// center.
func Normalize(values []float64) ([]float64, error) {
	peak := 0.0
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, &InvalidValueError{Index: i, Value: v}
		}
		if v > peak {
			peak = v
		}
	}
	fractions := make([]float64, len(values))
	if peak == 0 {
		return fractions, ErrDegenerateSeries
	}
	for i, v := range values {
		fractions[i] = v / peak
	}
	return fractions, nil
}

// SeriesShape is a normalized series polygon ready to draw.
type SeriesShape struct {
	Name      string
	Role      Role
	Fractions []float64
	Points    []Point
	Style     SeriesStyle
	Collapsed bool
}

// ShapeSeries normalizes s and interpolates each vertex between the chart
// center and the outer-ring vertex of its category.
//
// The returned shape is valid whenever ok is true. A degenerate series under
// CollapseToCenter yields ok together with an error wrapping
// ErrDegenerateSeries.
func ShapeSeries(l Layout, s Series, policy DegeneratePolicy) (shape SeriesShape, ok bool, err error) {
	if len(s.Values) != l.N {
		return SeriesShape{}, false, &SeriesError{
			Series: s.Name, Role: s.Role,
			Err: &SeriesLengthError{Series: s.Name, Got: len(s.Values), Want: l.N},
		}
	}
	fractions, err := Normalize(s.Values)
	if err != nil {
		if ive, isInvalid := err.(*InvalidValueError); isInvalid {
			ive.Series = s.Name
		}
		err = &SeriesError{Series: s.Name, Role: s.Role, Err: err}
		if fractions == nil || policy == SkipSeries {
			return SeriesShape{}, false, err
		}
	}

	outer := l.OuterVertices()
	points := make([]Point, l.N)
	for j, lambda := range fractions {
		points[j] = l.Center.Lerp(outer[j], lambda)
	}
	return SeriesShape{
		Name:      s.Name,
		Role:      s.Role,
		Fractions: fractions,
		Points:    points,
		Style:     s.ResolvedStyle(),
		Collapsed: err != nil,
	}, true, err
}

// DrawOrder returns the series sorted bottom to top: secondary series
// first, primary last. The order within a role is preserved.
func DrawOrder(series []Series) []Series {
	out := make([]Series, len(series))
	copy(out, series)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Role.drawRank() < out[j].Role.drawRank()
	})
	return out
}
