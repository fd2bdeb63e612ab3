package gencontinent

import (
	"testing"

	"github.com/Flokey82/go_gens/vectors"
)

// rampContinent fills the grid with a plane ascending in +x, so every cell's
// downhill direction points to -x and all water drains toward the low edge.
func rampContinent(t *testing.T) *Continent {
	t.Helper()
	c := testContinent(t, 6)
	n := float64(c.size - 1)
	for i := range c.points {
		x, _ := c.cellXY(i)
		c.points[i] = TerrainPoint{
			Height:  float64(x) / n,
			Wetness: 1,
			Grad:    vectors.Vec2{X: -1 / n},
		}
	}
	return c
}

func TestFlowTargetOctants(t *testing.T) {
	c := testContinent(t, 4)
	s := 0.70710678
	tests := []struct {
		grad   vectors.Vec2
		tx, ty int
	}{
		{vectors.Vec2{X: 0, Y: 1}, 5, 6},
		{vectors.Vec2{X: s, Y: s}, 6, 6},
		{vectors.Vec2{X: 1, Y: 0}, 6, 5},
		{vectors.Vec2{X: s, Y: -s}, 6, 4},
		{vectors.Vec2{X: 0, Y: -1}, 5, 4},
		{vectors.Vec2{X: -s, Y: -s}, 4, 4},
		{vectors.Vec2{X: -1, Y: 0}, 4, 5},
		{vectors.Vec2{X: -s, Y: s}, 4, 6},
	}
	for _, tt := range tests {
		c.points[c.cellID(5, 5)].Grad = tt.grad
		tx, ty := c.flowTarget(5, 5)
		if tx != tt.tx || ty != tt.ty {
			t.Errorf("grad %v flows to (%d,%d), want (%d,%d)", tt.grad, tx, ty, tt.tx, tt.ty)
		}
	}
}

func TestFlatFieldHasNoSources(t *testing.T) {
	c := testContinent(t, 6)
	for i := range c.points {
		c.points[i] = TerrainPoint{Height: 0.7, Wetness: 1}
	}
	c.routeFlow()
	if sources := c.chooseSources(); len(sources) != 0 {
		t.Fatalf("flat field produced %d sources, want 0", len(sources))
	}
}

func TestRampFlowsDownhill(t *testing.T) {
	c := rampContinent(t)
	for x := 1; x < c.size-1; x++ {
		for y := 1; y < c.size-1; y++ {
			tx, ty := c.flowTarget(x, y)
			if tx != x-1 || ty != y {
				t.Fatalf("cell (%d,%d) flows to (%d,%d), want (%d,%d)", x, y, tx, ty, x-1, y)
			}
		}
	}
}

func TestRampRouting(t *testing.T) {
	c := rampContinent(t)
	c.routeFlow()

	for x := 1; x < c.size-1; x++ {
		for y := 1; y < c.size-1; y++ {
			if c.hydro[c.cellID(x, y)].DeadEnd {
				t.Fatalf("cell (%d,%d) is a dead end on a monotonic ramp", x, y)
			}
		}
	}

	sources := c.chooseSources()
	if len(sources) == 0 {
		t.Fatal("ramp produced no sources")
	}
	for _, s := range sources {
		x, y := c.cellXY(s)
		if x == 0 || y == 0 || x == c.size-1 || y == c.size-1 {
			t.Fatalf("source (%d,%d) on the grid border", x, y)
		}
		if c.points[s].Height <= c.SourceMinHeight {
			t.Fatalf("source (%d,%d) below minimum source height", x, y)
		}
	}
}

func TestRampTraceChains(t *testing.T) {
	c := rampContinent(t)
	c.routeFlow()
	sources := c.chooseSources()
	if len(sources) == 0 {
		t.Fatal("ramp produced no sources")
	}

	var estuaries []int
	forks := c.Forks
	for _, s := range sources {
		c.tracePath(s, &estuaries, forks)
	}
	for i := len(sources) - 1; i >= 0; i-- {
		c.propagateAmount(sources[i])
	}

	maxHops := 2 * c.size * c.size
	for _, s := range sources {
		if c.hydro[s].Source != s {
			t.Fatalf("source %d not marked as its own origin", s)
		}

		// Walk the chain: every hop is a cardinal neighbor, and the walk
		// either terminates, loops into a lake, or crosses into another
		// river.
		seen := make(map[int]bool)
		node := s
		amount := 0.0
		for hops := 0; ; hops++ {
			if hops > maxHops {
				t.Fatalf("chain from source %d does not terminate", s)
			}
			if c.hydro[node].Source == s {
				if c.hydro[node].Amount < amount {
					t.Fatalf("amount shrinks downstream at cell %d", node)
				}
				amount = c.hydro[node].Amount
			}
			next := c.hydro[node].Next
			if next == 0 {
				break
			}
			if seen[next] {
				if _, ok := c.ToLake[s]; !ok {
					t.Fatalf("chain from source %d revisits cell %d without a lake", s, next)
				}
				break
			}
			seen[node] = true
			x, y := c.cellXY(node)
			nx, ny := c.cellXY(next)
			dx, dy := x-nx, y-ny
			if dx*dx+dy*dy != 1 {
				t.Fatalf("trace hop from (%d,%d) to (%d,%d) is not cardinal", x, y, nx, ny)
			}
			node = next
		}
	}

	for i := range c.hydro {
		if c.hydro[i].Amount < 1 {
			t.Fatalf("amount %f at cell %d below 1", c.hydro[i].Amount, i)
		}
	}

	// A source that reached the sea must record an at-or-below-sea estuary.
	for s, e := range c.ToSea {
		if c.points[e].Height > c.SeaLevel {
			t.Fatalf("estuary %d of source %d above sea level", e, s)
		}
	}
}
