// Package radar computes radial ("spider" or "radar") charts.
//
// # Overview
//
// A chart is a fixed-radius polar grid of concentric regular polygons,
// one vertex per category, overlaid with series polygons whose vertices
// are normalized against each series' maximum. Category names sit just
// outside the grid, a percentage scale runs along the spoke of category
// 0, and fixed iconic markers decorate selected categories.
//
// radar separates geometry from drawing. Chart.Build is a pure function
// from a Viewport and a Data snapshot to a Plan, an immutable ordered list
// of Commands. A Backend turns commands into output:
//
//	import _ "github.com/gogpu/radar/backend/svg"
//
//	chart := radar.New()
//	plan, err := chart.Build(radar.Viewport{Width: 400, Height: 300}, data)
//	if err != nil {
//	    // Non-fatal: affected layers were suppressed, plan is still usable.
//	}
//	b := radar.MustBackend("svg")
//	_ = plan.Playback(b)
//
// Visual wraps the same flow for hosts that push updates: every Update
// clears the backend and redraws.
//
// # Geometry
//
// The center is the middle of the viewport and the outer radius is
// 0.425 times its shorter side. Vertex 0 points straight up and vertices
// proceed clockwise with spacing 2π/N.
//
// # Paint Order
//
// Grid rings, bullets and spokes come first, then category and percentage
// labels, then series (secondary below primary), then markers.
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down.
package radar
