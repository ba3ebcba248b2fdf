package text

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func defaultFace(t *testing.T, size float64) *Face {
	t.Helper()
	src, err := DefaultSource()
	if err != nil {
		t.Fatalf("DefaultSource() error = %v", err)
	}
	f, err := src.Face(size)
	if err != nil {
		t.Fatalf("Face(%v) error = %v", size, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestNewSource_Empty(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource(garbage) error = nil")
	}
}

func TestDefaultSource_Shared(t *testing.T) {
	a, _ := DefaultSource()
	b, _ := DefaultSource()
	if a != b {
		t.Error("DefaultSource() returned different sources")
	}
}

func TestSource_FaceInvalidSize(t *testing.T) {
	src, _ := DefaultSource()
	if _, err := src.Face(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Face(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestFace_Measure(t *testing.T) {
	f := defaultFace(t, 12)
	if w := f.Measure(""); w != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", w)
	}
	short := f.Measure("ab")
	long := f.Measure("abcdef")
	if short <= 0 || long <= short {
		t.Errorf("Measure: short = %v, long = %v", short, long)
	}

	// Width scales with size.
	big := defaultFace(t, 24)
	if got := big.Measure("abcdef"); got < long*1.8 || got > long*2.2 {
		t.Errorf("24pt width %v not about twice 12pt width %v", got, long)
	}
}

func TestFace_Draw(t *testing.T) {
	f := defaultFace(t, 16)
	img := image.NewRGBA(image.Rect(0, 0, 80, 30))
	f.Draw(img, "Hi", 5, 20, color.Black)

	inked := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("Draw() left the image blank")
	}
	if f.Ascent() <= 0 {
		t.Errorf("Ascent() = %v", f.Ascent())
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Milano", false},
		{"שלום", true},
		{"مرحبا", true},
	}
	for _, tt := range tests {
		if got := IsRTL(tt.in); got != tt.want {
			t.Errorf("IsRTL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVisualOrder(t *testing.T) {
	if got := VisualOrder("Genova"); got != "Genova" {
		t.Errorf("VisualOrder(LTR) = %q", got)
	}
	if got := VisualOrder("אבג"); got != "גבא" {
		t.Errorf("VisualOrder(RTL) = %q, want %q", got, "גבא")
	}
}
