package radar

import (
	"errors"
	"math"
	"testing"
)

func TestNewLayout_Example(t *testing.T) {
	l := mustLayout(t, 400, 300, 4)
	if !approx(l.Radius, 127.5) {
		t.Errorf("Radius = %v, want 127.5", l.Radius)
	}
	assertPoint(t, "Center", l.Center, Pt(200, 150))
	assertPoint(t, "vertex 0", l.OuterVertices()[0], Pt(200, 22.5))
}

func TestNewLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		n    int
		want error
	}{
		{"zero width", Viewport{0, 100}, 3, ErrDegenerateViewport},
		{"negative height", Viewport{100, -1}, 3, ErrDegenerateViewport},
		{"NaN", Viewport{math.NaN(), 100}, 3, ErrDegenerateViewport},
		{"Inf", Viewport{math.Inf(1), 100}, 3, ErrDegenerateViewport},
		{"no categories", Viewport{100, 100}, 0, ErrNoCategories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(tt.vp, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewLayout() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestViewport_Portrait(t *testing.T) {
	vp := Viewport{Width: 200, Height: 800}
	if got := vp.OuterRadius(); !approx(got, 85) {
		t.Errorf("OuterRadius() = %v, want 85", got)
	}
	assertPoint(t, "Center", vp.Center(), Pt(100, 400))
}
