package radar

import (
	"errors"
	"sync"
)

// Visual applies chart plans to a backend, one update at a time. It is
// the imperative counterpart of Chart.Build: every Update clears the
// backend and redraws from scratch.
type Visual struct {
	mu      sync.Mutex
	chart   *Chart
	backend Backend
	last    *Plan
}

// NewVisual creates a Visual drawing onto b.
func NewVisual(b Backend, opts ...Option) *Visual {
	return &Visual{chart: New(opts...), backend: b}
}

// Update rebuilds the chart for vp and d and replays it onto the backend.
//
// Data and layout conditions reported by Build never stop the update:
// missing data or a degenerate viewport clear the backend and draw
// nothing. Update returns an error only when the backend fails.
func (v *Visual) Update(vp Viewport, d *Data) error {
	plan, buildErr := v.chart.Build(vp, d)
	if buildErr != nil && !errors.Is(buildErr, ErrMissingData) {
		Logger().Debug("radar: update with suppressed layers", "err", buildErr)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = plan
	return plan.Playback(v.backend)
}

// Plan returns the plan applied by the latest Update, or nil.
func (v *Visual) Plan() *Plan {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}
