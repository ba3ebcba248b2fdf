package radar

// Option configures a Chart during creation.
//
// Example:
//
//	c := radar.New(
//	    radar.WithLevels(5),
//	    radar.WithDegeneratePolicy(radar.SkipSeries),
//	)
type Option func(*chartOptions)

type chartOptions struct {
	levels  int
	markers MarkerConfig
	policy  DegeneratePolicy
	theme   Theme

	// labelMargin overrides the theme's margins regardless of option order.
	labelMargin *[2]float64
}

func defaultOptions() chartOptions {
	return chartOptions{
		levels:  DefaultLevels,
		markers: DefaultMarkerConfig(),
		policy:  CollapseToCenter,
		theme:   DefaultTheme(),
	}
}

// WithLevels sets the number of ring steps. Values below 1 are ignored.
func WithLevels(n int) Option {
	return func(o *chartOptions) {
		if n >= 1 {
			o.levels = n
		}
	}
}

// WithMarkers sets the marker policy used when the data does not carry
// its own. Pass a zero MarkerConfig to disable markers.
func WithMarkers(cfg MarkerConfig) Option {
	return func(o *chartOptions) {
		o.markers = cfg
	}
}

// WithDegeneratePolicy sets how series whose maximum is zero are drawn.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *chartOptions) {
		o.policy = p
	}
}

// WithTheme replaces the grid and label theme.
func WithTheme(t Theme) Option {
	return func(o *chartOptions) {
		o.theme = t
	}
}

// WithLabelMargin sets the category label offset as a fraction of the
// shorter viewport side, capped at limit. It takes precedence over the
// margins of any theme passed with WithTheme, in either order.
func WithLabelMargin(fraction, limit float64) Option {
	return func(o *chartOptions) {
		o.labelMargin = &[2]float64{fraction, limit}
	}
}
