package gencontinent

import (
	"math"
	"sort"

	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/go_gens/vectors"
)

// Index returns the terrain cell at the given grid coordinate. The pointer
// is only written during generation; once generation has completed the cell
// must be treated as read-only and may be shared between concurrent readers.
func (c *Continent) Index(x, y int) *TerrainPoint {
	return &c.points[c.cellID(x, y)]
}

// GetHydro returns the hydrology cell at the given grid coordinate.
// Read-only after generation.
func (c *Continent) GetHydro(x, y int) *HydrologyPoint {
	return &c.hydro[c.cellID(x, y)]
}

// ToWorld maps a cell to world space: the grid is centered on the origin,
// heights are scaled by ScaleY and lifted by one unit.
func (c *Continent) ToWorld(id int) vectors.Vec3 {
	x, y := c.cellXY(id)
	return vectors.Vec3{
		X: float64(x-c.size/2) * GridSquareSize,
		Y: c.points[id].Height*ScaleY + 1,
		Z: float64(y-c.size/2) * GridSquareSize,
	}
}

// GetHeight returns the terrain height at a world position, bilinearly
// interpolated between the four surrounding cells. This is the query used by
// chunk meshing; note that chunk-local terrain edits operate on a per-chunk
// copy of these samples and never feed back into the generator.
func (c *Continent) GetHeight(x, z float64) float64 {
	gx := x/GridSquareSize + float64(c.size)/2
	gz := z/GridSquareSize + float64(c.size)/2

	x0 := int(math.Floor(gx))
	z0 := int(math.Floor(gz))
	x0 = int(clamp(float64(x0), 0, float64(c.size-2)))
	z0 = int(clamp(float64(z0), 0, float64(c.size-2)))
	fx := clamp(gx-float64(x0), 0, 1)
	fz := clamp(gz-float64(z0), 0, 1)

	h00 := c.points[c.cellID(x0, z0)].Height
	h10 := c.points[c.cellID(x0+1, z0)].Height
	h01 := c.points[c.cellID(x0, z0+1)].Height
	h11 := c.points[c.cellID(x0+1, z0+1)].Height

	h := h00*(1-fx)*(1-fz) + h10*fx*(1-fz) + h01*(1-fx)*fz + h11*fx*fz
	return h*ScaleY + 1
}

// buildOutletIndex builds the read-only quadtree over the final river mouths
// and lakes, for nearest-outlet queries after generation.
func (c *Continent) buildOutletIndex(groups map[int][]int) {
	cells := make([]int, 0, len(groups)+len(c.Lakes))
	for r := range groups {
		cells = append(cells, r)
	}
	for l := range c.Lakes {
		cells = append(cells, l)
	}
	sort.Ints(cells)

	var pts []geoquad.Point
	for _, id := range cells {
		x, y := c.cellXY(id)
		pts = append(pts, geoquad.Point{
			Lat:  float64(x),
			Lon:  float64(y),
			Data: id,
		})
	}
	if len(pts) == 0 {
		return
	}
	c.outlets = geoquad.NewQuadTree(pts)
}

// NearestOutlet returns the cell of the river mouth or lake closest to the
// given grid coordinate. Returns false if the continent has no outlets.
func (c *Continent) NearestOutlet(x, y int) (int, bool) {
	if c.outlets == nil {
		return 0, false
	}
	res, ok := c.outlets.FindNearestNeighbor(geoquad.Point{Lat: float64(x), Lon: float64(y)})
	if !ok {
		return 0, false
	}
	return res.Data.(int), true
}
