package radar

import "math"

// OuterRadiusRatio is the outer ring radius as a fraction of the shorter
// viewport side.
const OuterRadiusRatio = 0.425

// Viewport is the size of the drawing area in surface units.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive finite numbers.
func (v Viewport) Valid() bool {
	return isPositiveFinite(v.Width) && isPositiveFinite(v.Height)
}

// MinSide returns the shorter of the two viewport dimensions.
func (v Viewport) MinSide() float64 {
	return math.Min(v.Width, v.Height)
}

// Center returns the middle of the viewport, which is also the chart center.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// OuterRadius returns the radius of the outermost grid ring.
func (v Viewport) OuterRadius() float64 {
	return v.MinSide() * OuterRadiusRatio
}

// Layout holds the parameters shared by every chart layer: one center,
// one outer radius and one category count.
type Layout struct {
	Viewport Viewport
	Center   Point
	Radius   float64
	N        int
}

// NewLayout derives the shared layout for n categories drawn into vp.
func NewLayout(vp Viewport, n int) (Layout, error) {
	if !vp.Valid() {
		return Layout{}, ErrDegenerateViewport
	}
	if n < 1 {
		return Layout{}, ErrNoCategories
	}
	return Layout{
		Viewport: vp,
		Center:   vp.Center(),
		Radius:   vp.OuterRadius(),
		N:        n,
	}, nil
}

// Vertices returns the N category vertices at radius r.
func (l Layout) Vertices(r float64) []Point {
	return RegularPolygon(l.N, r, l.Center)
}

// OuterVertices returns the category vertices on the outer ring.
func (l Layout) OuterVertices() []Point {
	return l.Vertices(l.Radius)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
