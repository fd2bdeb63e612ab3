package gencontinent

import (
	"image/color"
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rotate returns v rotated counterclockwise by the given angle.
func rotate(v vectors.Vec2, angle float64) vectors.Vec2 {
	sin, cos := math.Sincos(angle)
	return vectors.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// angleBetween returns the unsigned angle between two vectors.
func angleBetween(a, b vectors.Vec2) float64 {
	cross := a.X*b.Y - a.Y*b.X
	dot := a.X*b.X + a.Y*b.Y
	return math.Abs(math.Atan2(cross, dot))
}

// minMax returns the smallest and largest value in the slice.
func minMax(s []float64) (float64, float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max := s[0], s[0]
	for _, v := range s {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// genBlue returns a blue color of the given intensity.
func genBlue(intensity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(intensity * 255),
		G: uint8(intensity * 255),
		B: 255,
		A: 255,
	}
}
