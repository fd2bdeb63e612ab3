package gencontinent

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// TerrainPoint is one cell of the generated height field. Immutable once
// generation has completed.
type TerrainPoint struct {
	Height  float64      // in [0,1]
	Wetness float64      // base wetness, before hydrology amounts
	Grad    vectors.Vec2 // downhill direction, steeper is longer
}

// sampleTerrain fills the terrain grid from the noise sampler. Heights near
// the grid edge are damped toward zero so the continent is bounded by ocean
// on all sides.
func (c *Continent) sampleTerrain() {
	half := float64(c.size) / 2
	for i := range c.points {
		x, y := c.cellXY(i)
		ex := math.Pow(math.Abs(float64(x)-half)/half, 8)
		ey := math.Pow(math.Abs(float64(y)-half)/half, 8)
		edge := 1 - math.Hypot(ex, ey)

		h, grad := c.smp.Sample2(float64(x)*GridSquareSize, float64(y)*GridSquareSize)
		c.points[i] = TerrainPoint{
			Height:  clamp(h*edge, 0, 1),
			Wetness: 1,
			Grad:    grad.Mul(-1),
		}
	}
}
