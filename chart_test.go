package radar

import (
	"errors"
	"testing"
)

func sampleData(n int) *Data {
	cats := make([]string, n)
	cur := make([]float64, n)
	tot := make([]float64, n)
	for i := 0; i < n; i++ {
		cats[i] = string(rune('A' + i%26))
		cur[i] = float64(i%5 + 1)
		tot[i] = float64(i%7 + 3)
	}
	return &Data{
		Categories: cats,
		Series: []Series{
			{Name: "current", Role: RolePrimary, Values: cur},
			{Name: "total", Role: RoleSecondary, Values: tot},
		},
	}
}

func TestBuild_CommandOrder(t *testing.T) {
	plan, err := New().Build(Viewport{Width: 400, Height: 300}, sampleData(4))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Paint order must be grid → labels → series → icons.
	rank := map[CommandType]int{CmdRing: 0, CmdBullet: 0, CmdSpoke: 0, CmdLabel: 1, CmdSeries: 2, CmdIcon: 3}
	last := 0
	for i, c := range plan.Commands() {
		r := rank[c.Type()]
		if r < last {
			t.Fatalf("command %d (%v) out of paint order", i, c.Type())
		}
		last = r
	}

	if got := plan.Count(CmdRing); got != 11 {
		t.Errorf("rings = %d, want 11", got)
	}
	if got := plan.Count(CmdBullet); got != 4 {
		t.Errorf("bullets = %d, want 4", got)
	}
	if got := plan.Count(CmdSpoke); got != 4 {
		t.Errorf("spokes = %d, want 4", got)
	}
	if got := plan.Count(CmdLabel); got != 4+11 {
		t.Errorf("labels = %d, want 15", got)
	}
	if got := plan.Count(CmdSeries); got != 2 {
		t.Errorf("series = %d, want 2", got)
	}
	if plan.Width() != 400 || plan.Height() != 300 {
		t.Errorf("plan size = %vx%v", plan.Width(), plan.Height())
	}
}

func TestBuild_OuterRingHeavier(t *testing.T) {
	plan, _ := New().Build(Viewport{Width: 300, Height: 300}, sampleData(5))
	var outer, inner float64
	for _, c := range plan.Commands() {
		ring, ok := c.(RingCommand)
		if !ok {
			continue
		}
		if ring.Level == DefaultLevels {
			outer = ring.StrokeWidth
		} else if ring.StrokeWidth > inner {
			inner = ring.StrokeWidth
		}
	}
	if outer <= inner {
		t.Errorf("outer stroke %v not heavier than inner %v", outer, inner)
	}
}

func TestBuild_PrimaryOnTop(t *testing.T) {
	plan, _ := New().Build(Viewport{Width: 300, Height: 300}, sampleData(5))
	var roles []Role
	for _, c := range plan.Commands() {
		if s, ok := c.(SeriesCommand); ok {
			roles = append(roles, s.Role)
		}
	}
	if len(roles) != 2 || roles[0] != RoleSecondary || roles[1] != RolePrimary {
		t.Errorf("series draw order = %v, want [secondary primary]", roles)
	}
}

func TestBuild_MissingData(t *testing.T) {
	tests := []struct {
		name string
		data *Data
	}{
		{"nil", nil},
		{"no categories", &Data{Series: sampleData(3).Series}},
		{"no series", &Data{Categories: []string{"a", "b"}}},
		{"empty values", &Data{Categories: []string{"a"}, Series: []Series{{Name: "x"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := New().Build(Viewport{Width: 100, Height: 100}, tt.data)
			if !errors.Is(err, ErrMissingData) {
				t.Errorf("error = %v, want ErrMissingData", err)
			}
			if plan == nil || !plan.Empty() {
				t.Fatalf("plan = %+v, want empty", plan)
			}
			if plan.Width() != 100 || plan.Height() != 100 {
				t.Errorf("plan size = %vx%v, want the viewport size", plan.Width(), plan.Height())
			}
		})
	}
}

func TestBuild_DegenerateViewport(t *testing.T) {
	plan, err := New().Build(Viewport{Width: 0, Height: 100}, sampleData(3))
	if !errors.Is(err, ErrDegenerateViewport) {
		t.Errorf("error = %v, want ErrDegenerateViewport", err)
	}
	if !plan.Empty() {
		t.Errorf("plan has %d commands, want none", plan.Len())
	}
}

func TestBuild_DegenerateSeriesNoNaN(t *testing.T) {
	d := sampleData(4)
	d.Series[0].Values = []float64{0, 0, 0, 0}

	plan, err := New().Build(Viewport{Width: 400, Height: 300}, d)
	if !errors.Is(err, ErrDegenerateSeries) {
		t.Fatalf("error = %v, want ErrDegenerateSeries", err)
	}
	var seriesErr *SeriesError
	if !errors.As(err, &seriesErr) || seriesErr.Series != "current" {
		t.Errorf("error = %v, want SeriesError for \"current\"", err)
	}
	for _, c := range plan.Commands() {
		s, ok := c.(SeriesCommand)
		if !ok {
			continue
		}
		for _, p := range s.Points {
			if !p.IsFinite() {
				t.Fatalf("series %q has non-finite point %v", s.Name, p)
			}
		}
		if s.Name == "current" {
			for _, p := range s.Points {
				assertPoint(t, "collapsed", p, Pt(200, 150))
			}
		}
	}
	if got := plan.Count(CmdSeries); got != 2 {
		t.Errorf("series = %d, want 2 under CollapseToCenter", got)
	}

	plan, _ = New(WithDegeneratePolicy(SkipSeries)).Build(Viewport{Width: 400, Height: 300}, d)
	if got := plan.Count(CmdSeries); got != 1 {
		t.Errorf("series = %d, want 1 under SkipSeries", got)
	}
}

func TestBuild_InvalidSeriesSuppressesOnlyItsLayer(t *testing.T) {
	d := sampleData(4)
	d.Series[1].Values = []float64{1, 2}

	plan, err := New().Build(Viewport{Width: 400, Height: 300}, d)
	var sle *SeriesLengthError
	if !errors.As(err, &sle) {
		t.Fatalf("error = %v, want *SeriesLengthError", err)
	}
	if plan.Count(CmdSeries) != 1 || plan.Count(CmdRing) != 11 {
		t.Errorf("series = %d, rings = %d", plan.Count(CmdSeries), plan.Count(CmdRing))
	}
}

func TestBuild_MarkersIndependentOfValues(t *testing.T) {
	cfg := MarkerConfig{
		SymbolRatio: DefaultSymbolRatio,
		Layers: []MarkerLayer{
			{Name: "a", Offset: 1, Icons: []MarkerIcon{{0, "A"}, {1, "B"}, {2, "B"}}},
			{Name: "b", Offset: 2.5, Icons: []MarkerIcon{{2, "K"}, {4, "K"}, {9, "K"}, {17, "K"}}},
		},
	}
	chart := New(WithMarkers(cfg))

	var first []IconCommand
	for trial, scale := range []float64{1, 1000} {
		d := sampleData(22)
		for i := range d.Series[0].Values {
			d.Series[0].Values[i] *= scale
		}
		plan, err := chart.Build(Viewport{Width: 800, Height: 600}, d)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		var icons []IconCommand
		for _, c := range plan.Commands() {
			if ic, ok := c.(IconCommand); ok {
				icons = append(icons, ic)
			}
		}
		if len(icons) != 7 {
			t.Fatalf("icons = %d, want 7", len(icons))
		}
		if trial == 0 {
			first = icons
			continue
		}
		for i := range icons {
			if icons[i].Pos != first[i].Pos || icons[i].Icon != first[i].Icon {
				t.Errorf("icon %d changed with series values", i)
			}
		}
	}
}

func TestBuild_DataMarkersOverrideChart(t *testing.T) {
	d := sampleData(5)
	d.Markers = &MarkerConfig{Layers: []MarkerLayer{{Name: "x", Icons: []MarkerIcon{{Index: 4, Icon: "pin"}}}}}
	plan, _ := New().Build(Viewport{Width: 200, Height: 200}, d)
	if got := plan.Count(CmdIcon); got != 1 {
		t.Errorf("icons = %d, want 1", got)
	}

	plan, _ = New(WithMarkers(MarkerConfig{})).Build(Viewport{Width: 200, Height: 200}, sampleData(5))
	if got := plan.Count(CmdIcon); got != 0 {
		t.Errorf("icons = %d, want 0 with markers disabled", got)
	}
}

func TestBuild_SingleCategory(t *testing.T) {
	d := &Data{
		Categories: []string{"solo"},
		Series:     []Series{{Name: "s", Role: RolePrimary, Values: []float64{3}}},
	}
	plan, err := New().Build(Viewport{Width: 100, Height: 100}, d)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if plan.Count(CmdSpoke) != 1 || plan.Count(CmdSeries) != 1 {
		t.Errorf("spokes = %d, series = %d", plan.Count(CmdSpoke), plan.Count(CmdSeries))
	}
}

func TestBuild_Levels(t *testing.T) {
	plan, _ := New(WithLevels(4)).Build(Viewport{Width: 100, Height: 100}, sampleData(3))
	if got := plan.Count(CmdRing); got != 5 {
		t.Errorf("rings = %d, want 5", got)
	}
	if got := plan.Count(CmdLabel); got != 3+5 {
		t.Errorf("labels = %d, want 8", got)
	}
}

func TestPlan_CommandsIsCopy(t *testing.T) {
	plan, _ := New().Build(Viewport{Width: 100, Height: 100}, sampleData(3))
	cmds := plan.Commands()
	cmds[0] = nil
	if plan.Commands()[0] == nil {
		t.Error("Commands() exposed internal slice")
	}
}
