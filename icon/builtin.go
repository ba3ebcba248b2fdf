package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/radar"
)

// builtinSize is the edge length of the drawn icons. Backends scale them.
const builtinSize = 64

var (
	poleColor = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	blueFlag  = color.NRGBA{R: 0x1f, G: 0x5f, B: 0xd0, A: 0xff}
	yellow    = color.NRGBA{R: 0xf2, G: 0xc2, B: 0x0f, A: 0xff}
	redFlag   = color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
	keyColor  = color.NRGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}
)

// Builtin returns a new set with drawn icons for the identifiers used by
// radar.DefaultMarkerConfig.
func Builtin() *Set {
	s := NewSet()
	s.Add(radar.IconBlueFlag, drawFlag(blueFlag))
	s.Add(radar.IconYellowFlag, drawFlag(yellow))
	s.Add(radar.IconRedFlag, drawFlag(redFlag))
	s.Add(radar.IconKey, drawKey())
	return s
}

// drawFlag draws a pole with a rectangular cloth.
func drawFlag(cloth color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, builtinSize, builtinSize))
	fillPolygon(img, poleColor, [][2]float32{{12, 4}, {17, 4}, {17, 60}, {12, 60}})
	fillPolygon(img, cloth, [][2]float32{{17, 6}, {56, 6}, {48, 19}, {56, 32}, {17, 32}})
	return img
}

// drawKey draws a ring bow, a shaft and two teeth.
func drawKey() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, builtinSize, builtinSize))
	z := vector.NewRasterizer(builtinSize, builtinSize)
	addCircle(z, 18, 32, 13, true)
	addCircle(z, 18, 32, 6, false)
	addPolygon(z, [][2]float32{{30, 29}, {60, 29}, {60, 35}, {30, 35}})
	addPolygon(z, [][2]float32{{46, 35}, {51, 35}, {51, 44}, {46, 44}})
	addPolygon(z, [][2]float32{{54, 35}, {59, 35}, {59, 41}, {54, 41}})
	z.Draw(img, img.Bounds(), image.NewUniform(keyColor), image.Point{})
	return img
}

func fillPolygon(img *image.NRGBA, c color.NRGBA, pts [][2]float32) {
	z := vector.NewRasterizer(builtinSize, builtinSize)
	addPolygon(z, pts)
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func addPolygon(z *vector.Rasterizer, pts [][2]float32) {
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

// addCircle adds a circle with 32 segments. Opposite windings cut holes.
func addCircle(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	const n = 32
	for i := 0; i <= n; i++ {
		k := i
		if !clockwise {
			k = n - i
		}
		a := 2 * math.Pi * float64(k) / n
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
