package radar

import "testing"

// BenchmarkBuild measures plan construction for growing category counts.
func BenchmarkBuild(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"5", 5},
		{"22", 22},
		{"100", 100},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			c := New()
			d := sampleData(size.n)
			vp := Viewport{Width: 800, Height: 600}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Build(vp, d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRegularPolygon(b *testing.B) {
	center := Pt(400, 300)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = RegularPolygon(22, 255, center)
	}
}

func BenchmarkNormalize(b *testing.B) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = float64(i * 3 % 17)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Normalize(values)
	}
}
