package radar

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func mustLayout(t *testing.T, w, h float64, n int) Layout {
	t.Helper()
	l, err := NewLayout(Viewport{Width: w, Height: h}, n)
	if err != nil {
		t.Fatalf("NewLayout(%v, %v, %d) error = %v", w, h, n, err)
	}
	return l
}
