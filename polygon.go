package radar

import "math"

// RegularPolygon returns the n vertices of a regular polygon with
// circumradius r centered at center.
//
// Vertex 0 lies straight above the center and the remaining vertices
// follow clockwise on screen:
//
//	point[i] = (x0 + r·sin(2πi/n), y0 − r·cos(2πi/n))
//
// RegularPolygon returns nil when n < 1.
func RegularPolygon(n int, r float64, center Point) []Point {
	if n < 1 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	points := make([]Point, n)
	for i := range points {
		a := step * float64(i)
		points[i] = Point{
			X: center.X + r*math.Sin(a),
			Y: center.Y - r*math.Cos(a),
		}
	}
	return points
}
