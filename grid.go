package radar

// DefaultLevels is the number of ring steps between the center and the
// outer ring. Levels 0..DefaultLevels are drawn.
const DefaultLevels = 10

// Ring is one concentric grid polygon.
type Ring struct {
	Level  int
	Radius float64
	Points []Point
	Outer  bool
}

// Grid is the radial scale: rings for every level, plus bullets and spokes
// for the outermost ring only.
type Grid struct {
	Rings   []Ring
	Bullets []Point
	Spokes  []Segment
}

// BuildGrid computes rings for levels 0..levels at radius R·i/levels.
// Bullets and spokes are produced for the outer ring's vertices; inner
// rings are density guides only.
func BuildGrid(l Layout, levels int) Grid {
	if levels < 1 {
		levels = DefaultLevels
	}
	g := Grid{Rings: make([]Ring, 0, levels+1)}
	for i := 0; i <= levels; i++ {
		r := l.Radius * float64(i) / float64(levels)
		ring := Ring{
			Level:  i,
			Radius: r,
			Points: l.Vertices(r),
			Outer:  i == levels,
		}
		g.Rings = append(g.Rings, ring)
		if !ring.Outer {
			continue
		}
		g.Bullets = make([]Point, len(ring.Points))
		g.Spokes = make([]Segment, len(ring.Points))
		for j, p := range ring.Points {
			g.Bullets[j] = p
			g.Spokes[j] = Segment{From: l.Center, To: p}
		}
	}
	return g
}

// OuterRing returns the outermost ring. It panics on an empty grid.
func (g Grid) OuterRing() Ring {
	return g.Rings[len(g.Rings)-1]
}
