package gencontinent

import (
	"log"
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dhconnelly/rtreego"
)

// Visit epochs for HydrologyPoint.Visit. Each generation phase stamps cells
// with its own value, so a later phase can tell its own progress apart from
// an earlier phase's marks without clearing the whole grid.
const (
	visitNone       uint8 = iota // untouched, candidate river source
	visitInflow                  // receives inflow from a neighbor
	visitCurve                   // consumed by curve building
	visitPropagated              // amount already pushed through this cell
)

// minSourceGrad is the minimum gradient magnitude for a cell to count as a
// river source. A flat field has no meaningful downhill direction and
// therefore no rivers.
const minSourceGrad = 1e-6

// HydrologyPoint is the per-cell river routing state. Mutated heavily during
// generation, read-only afterwards.
//
// Next, Prev and Source hold Hilbert cell ids; 0 means "no link". Next and
// Prev form a singly linked chain per river, and Source identifies the
// originating source cell for amount propagation and merge bookkeeping.
type HydrologyPoint struct {
	Momentum  vectors.Vec2 // flow direction and speed
	Amount    float64      // accumulated flow volume, never below 1
	DeadEnd   bool         // flow target was uphill, water stops here
	Visit     uint8        // phase stamp, see the visit constants
	Source    int          // source cell of the river owning this cell
	Next      int          // downstream cell
	Prev      int          // upstream cell
	CtrlPoint bool         // cell was emitted as a curve control point
}

// makeHydrology derives the drainage network from the terrain grid: route
// flow directions, pick sources, trace each river downhill, accumulate flow
// amounts, merge nearby mouths and build the render curves.
func (c *Continent) makeHydrology() {
	c.routeFlow()

	sources := c.chooseSources()
	log.Println(len(sources), "river sources chosen")

	var estuaries []int
	forks := c.Forks
	for _, s := range sources {
		c.tracePath(s, &estuaries, forks)
	}

	// Reverse discovery order: a tributary merges into a river that was
	// traced before it, so walking the sources backwards propagates every
	// tributary before the trunk it joins.
	for i := len(sources) - 1; i >= 0; i-- {
		c.propagateAmount(sources[i])
	}

	groups := c.groupEstuaries(estuaries, forks)
	c.forkEstuaries(groups, forks)
	c.buildCurves(sources)
	c.buildOutletIndex(groups)
}

// flowTarget returns the 8-neighborhood cell the downhill gradient points
// to, by snapping the gradient angle to one of the eight compass octants.
func (c *Continent) flowTarget(x, y int) (int, int) {
	grad := c.points[c.cellID(x, y)].Grad
	oct := int(math.Round(math.Atan2(grad.X, grad.Y) / (math.Pi / 4)))
	switch oct {
	case -3:
		return x - 1, y - 1
	case -2:
		return x - 1, y
	case -1:
		return x - 1, y + 1
	case 0:
		return x, y + 1
	case 1:
		return x + 1, y + 1
	case 2:
		return x + 1, y
	case 3:
		return x + 1, y - 1
	default:
		return x, y - 1
	}
}

// routeFlow assigns each interior cell its downhill flow target and marks
// the targets as visited. Cells never marked are the source candidates. If
// the target is clearly higher than the cell itself, the cell is a dead end
// instead; water cannot climb.
func (c *Continent) routeFlow() {
	for x := 1; x < c.size-1; x++ {
		for y := 1; y < c.size-1; y++ {
			id := c.cellID(x, y)
			tx, ty := c.flowTarget(x, y)
			tid := c.cellID(tx, ty)
			if c.points[id].Height+c.HeightThreshold < c.points[tid].Height {
				c.hydro[id].DeadEnd = true
			} else {
				c.hydro[tid].Visit = visitInflow
			}
			c.hydro[id].Momentum = c.points[id].Grad
		}
	}
}

// chooseSources filters the unvisited cells down to the kept river sources:
// high enough, with a real downhill direction, and not within culling radius
// of an already kept source flowing in a similar direction.
func (c *Continent) chooseSources() []int {
	tree := rtreego.NewTree(2, 25, 50)
	var chosen []int
	for id := range c.hydro {
		if c.hydro[id].Visit != visitNone {
			continue
		}
		if c.points[id].Height <= c.SourceMinHeight {
			continue
		}
		grad := c.points[id].Grad
		if grad.Len() < minSourceGrad {
			continue
		}
		x, y := c.cellXY(id)
		if x == 0 || y == 0 || x == c.size-1 || y == c.size-1 {
			// Border cells are skipped by flow routing and would trace off
			// the grid immediately.
			continue
		}
		fx, fy := float64(x), float64(y)
		similar := false
		for _, s := range tree.SearchIntersect(pointRect(fx, fy)) {
			if angleBetween(s.(*sourceValue).Grad, grad) < c.SourceSepAngle {
				similar = true
				break
			}
		}
		if similar {
			continue
		}
		tree.Insert(&sourceValue{X: fx, Y: fy, He: c.SourceCullRadius, Grad: grad, Cell: id})
		chosen = append(chosen, id)
	}
	return chosen
}

// tracePath walks one source downhill cell by cell until it reaches the sea,
// merges into an existing river, or loops into a lake. The walk snaps the
// momentum angle to the four cardinal neighbors (coarser than the octant
// routing) and perturbs it with an accumulating random skew seeded from
// seed+source, so every path is deterministic on its own.
func (c *Continent) tracePath(s int, estuaries *[]int, forks map[int]int) {
	node := s
	c.hydro[node].Source = s
	rng := rand.New(rand.NewSource(int64(c.Seed) + int64(s)))
	var skew float64

	maxSteps := c.size * c.size
	for step := 0; c.points[node].Height > c.SeaLevel; step++ {
		if step > maxSteps {
			log.Println("river from", s, "abandoned: path does not terminate")
			return
		}
		skew += rng.NormFloat64() * math.Pi / 20

		m := c.hydro[node].Momentum
		if m.Len() == 0 {
			log.Println("river from", s, "abandoned: momentum vanished")
			return
		}
		var ox, oy int
		switch int(math.Round(math.Atan2(m.X, m.Y) / (math.Pi / 2))) {
		case -1:
			ox, oy = -1, 0
		case 0:
			ox, oy = 0, 1
		case 1:
			ox, oy = 1, 0
		default:
			ox, oy = 0, -1
		}
		x, y := c.cellXY(node)
		tx, ty := x+ox, y+oy
		if tx < 0 || ty < 0 || tx >= c.size || ty >= c.size {
			log.Println("river from", s, "abandoned: flow left the grid")
			return
		}
		next := c.cellID(tx, ty)

		c.hydro[node].Next = next
		c.hydro[next].Prev = node

		if owner := c.hydro[next].Source; owner != 0 {
			if owner == s {
				// The path looped back onto its own chain: the water pools
				// into an enclosed basin instead of merging.
				c.Lakes[next] = true
				c.ToLake[s] = next
				return
			}
			forks[next] = node
			c.inheritFate(s, owner)
			return
		}
		c.hydro[next].Source = s

		// The grid step rarely matches the ideal flow direction, so blend in
		// a corrected vector that compensates for the discretization error.
		actual := vectors.Normalize(vectors.Vec2{X: float64(ox), Y: float64(oy)}).Mul(m.Len())
		corrected := vectors.Normalize(m.Mul(2).Sub(actual)).Mul(m.Len())
		blended := c.hydro[next].Momentum.Add(corrected.Mul(c.Slowdown))
		c.hydro[next].Momentum = rotate(blended, clamp(skew, -0.2, 0.2)).
			Add(vectors.Normalize(m).Mul(1. / 15))

		node = next
	}

	*estuaries = append(*estuaries, node)
	c.ToSea[s] = node
}

// inheritFate records the merged source's eventual destination, so consumers
// can classify every source in O(1). The owner was traced earlier, so its
// own fate is already resolved (or it was an abandoned anomaly, in which
// case the tributary stays unclassified too).
func (c *Continent) inheritFate(s, owner int) {
	if t, ok := c.ToSea[owner]; ok {
		c.ToSea[s] = t
	} else if l, ok := c.ToLake[owner]; ok {
		c.ToLake[s] = l
	}
}

// propagateAmount pushes the accumulated flow volume downstream along the
// next chain. The walk stops when it would enter another river; the junction
// cell still receives the tributary's total, and the trunk's own sweep
// (which runs after all of its tributaries) carries it on from there.
func (c *Continent) propagateAmount(s int) {
	node := s
	next := c.hydro[node].Next
	for next != 0 && c.hydro[node].Visit != visitPropagated {
		c.hydro[next].Amount += c.hydro[node].Amount
		if c.hydro[next].Source != c.hydro[node].Source {
			return
		}
		c.hydro[node].Visit = visitPropagated
		node = next
		next = c.hydro[node].Next
	}
}
