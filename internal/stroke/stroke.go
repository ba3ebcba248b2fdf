package stroke

import "math"

// Point is a 2D point in surface coordinates.
type Point struct {
	X, Y float64
}

// Polygon is a closed outline. The last point connects back to the first.
type Polygon []Point

// SignedArea returns the shoelace area of p. In screen coordinates
// (Y down) a negative area means counter-clockwise on screen.
func SignedArea(p Polygon) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// Orient returns p with a non-positive signed area, reversing it if needed.
// The input is not modified.
func Orient(p Polygon) Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	if SignedArea(out) > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Disc approximates a circle of radius r around c.
func Disc(c Point, r float64) Polygon {
	if r <= 0 {
		return nil
	}
	n := discSegments(r)
	p := make(Polygon, n)
	for i := range p {
		a := -2 * math.Pi * float64(i) / float64(n)
		p[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return Orient(p)
}

// discSegments keeps the chord error under roughly a quarter pixel.
func discSegments(r float64) int {
	n := int(math.Ceil(math.Pi / math.Acos(math.Max(0, 1-0.25/math.Max(r, 0.25)))))
	switch {
	case n < 16:
		return 16
	case n > 128:
		return 128
	}
	return n
}

// Polyline expands pts into fill polygons for a stroke of the given width.
// Closed polylines get a join at every vertex; open ones get joins at
// interior vertices and butt ends.
func Polyline(pts []Point, width float64, closed bool) []Polygon {
	if width <= 0 || len(pts) < 2 {
		return nil
	}
	half := width / 2
	var out []Polygon

	segments := len(pts) - 1
	if closed {
		segments = len(pts)
	}
	for i := 0; i < segments; i++ {
		if q := segmentQuad(pts[i], pts[(i+1)%len(pts)], half); q != nil {
			out = append(out, q)
		}
	}

	for i, p := range pts {
		if !closed && (i == 0 || i == len(pts)-1) {
			continue
		}
		out = append(out, Disc(p, half))
	}
	return out
}

// Line expands a single segment with butt ends.
func Line(a, b Point, width float64) []Polygon {
	return Polyline([]Point{a, b}, width, false)
}

func segmentQuad(a, b Point, half float64) Polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*half, dx/length*half
	return Orient(Polygon{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	})
}
