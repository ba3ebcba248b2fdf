package radar

import "errors"

// Data is one snapshot of host data: N category names and series with N
// values each.
type Data struct {
	Categories []string
	Series     []Series

	// Markers overrides the chart's marker policy when non-nil.
	Markers *MarkerConfig
}

// hasValues reports whether at least one series carries values.
func (d *Data) hasValues() bool {
	for _, s := range d.Series {
		if len(s.Values) > 0 {
			return true
		}
	}
	return false
}

// Chart turns data snapshots into drawing plans. A Chart holds only
// configuration and is safe for concurrent use.
type Chart struct {
	opts chartOptions
}

// New creates a Chart with the given options.
func New(opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if m := o.labelMargin; m != nil {
		o.theme.LabelMargin, o.theme.LabelMarginMax = m[0], m[1]
	}
	return &Chart{opts: o}
}

// Theme returns the chart theme.
func (c *Chart) Theme() Theme { return c.opts.theme }

// Build computes the full command list for one update. It is a pure
// function of its arguments: nothing is cached between calls.
//
// Build always returns a non-nil Plan. The error, when not nil, reports
// conditions that suppressed part of the output; it may join several
// errors and is never fatal. Missing data or a degenerate viewport yield
// an empty plan together with ErrMissingData or ErrDegenerateViewport.
// An empty plan keeps the viewport size when it is valid, so replaying it
// clears a surface of that size.
func (c *Chart) Build(vp Viewport, d *Data) (*Plan, error) {
	log := Logger()
	plan := &Plan{}
	if vp.Valid() {
		plan.width, plan.height = vp.Width, vp.Height
	}

	if d == nil || len(d.Categories) == 0 || !d.hasValues() {
		log.Debug("radar: stop update", "reason", "missing data")
		return plan, ErrMissingData
	}
	l, err := NewLayout(vp, len(d.Categories))
	if err != nil {
		log.Debug("radar: stop update", "reason", err, "width", vp.Width, "height", vp.Height)
		return plan, err
	}

	t := c.opts.theme
	levels := c.opts.levels

	plan.commands = append(plan.commands, gridCommands(BuildGrid(l, levels), t)...)
	plan.commands = append(plan.commands, labelCommands(CategoryLabels(l, d.Categories, t), t)...)
	plan.commands = append(plan.commands, labelCommands(PercentLabels(l, levels, t), t)...)

	seriesCmds, errs := c.seriesCommands(l, d.Series)
	plan.commands = append(plan.commands, seriesCmds...)

	markers := c.opts.markers
	if d.Markers != nil {
		markers = *d.Markers
	}
	plan.commands = append(plan.commands, markerCommands(PlaceMarkers(l, markers))...)

	log.Debug("radar: plan built",
		"categories", l.N,
		"radius", l.Radius,
		"commands", len(plan.commands))
	return plan, errors.Join(errs...)
}

func (c *Chart) seriesCommands(l Layout, series []Series) ([]Command, []error) {
	var (
		cmds []Command
		errs []error
	)
	for _, s := range DrawOrder(series) {
		shape, ok, err := ShapeSeries(l, s, c.opts.policy)
		if err != nil {
			errs = append(errs, err)
			if ok {
				Logger().Debug("radar: series collapsed", "series", s.Name, "policy", c.opts.policy)
			} else {
				Logger().Warn("radar: series suppressed", "series", s.Name, "err", err)
			}
		}
		if !ok {
			continue
		}
		width := shape.Style.StrokeWidth
		if width <= 0 {
			width = c.opts.theme.SeriesLineWidth
		}
		cmds = append(cmds, SeriesCommand{
			Name:        shape.Name,
			Role:        shape.Role,
			Points:      shape.Points,
			Stroke:      shape.Style.Stroke,
			StrokeWidth: width,
			Fill:        shape.Style.Fill,
			FillOpacity: shape.Style.FillOpacity,
		})
	}
	return cmds, errs
}

func gridCommands(g Grid, t Theme) []Command {
	cmds := make([]Command, 0, len(g.Rings)+len(g.Bullets)+len(g.Spokes))
	for _, ring := range g.Rings {
		width := t.RingWidth
		if ring.Outer {
			width = t.OuterRingWidth
		}
		cmds = append(cmds, RingCommand{
			Level:       ring.Level,
			Points:      ring.Points,
			Stroke:      t.GridColor,
			StrokeWidth: width,
		})
		if !ring.Outer {
			continue
		}
		for j := range g.Bullets {
			cmds = append(cmds,
				BulletCommand{Center: g.Bullets[j], Radius: t.BulletRadius, Fill: t.BulletColor},
				SpokeCommand{From: g.Spokes[j].From, To: g.Spokes[j].To, Stroke: t.GridColor, StrokeWidth: t.SpokeWidth},
			)
		}
	}
	return cmds
}

func labelCommands(labels []Label, t Theme) []Command {
	cmds := make([]Command, len(labels))
	for i, lb := range labels {
		cmds[i] = LabelCommand{
			Kind:   lb.Kind,
			Pos:    lb.Pos,
			DX:     lb.DX,
			Text:   lb.Text,
			Fill:   t.LabelColor,
			Anchor: lb.Anchor,
		}
	}
	return cmds
}

func markerCommands(markers []Marker) []Command {
	cmds := make([]Command, len(markers))
	for i, m := range markers {
		cmds[i] = IconCommand{
			Layer:  m.Layer,
			Index:  m.Index,
			Icon:   m.Icon,
			Pos:    m.TopLeft(),
			Width:  m.Size,
			Height: m.Size,
		}
	}
	return cmds
}
