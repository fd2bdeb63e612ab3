package gencontinent

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// groupEstuaries clusters the path termini (sea-reaching estuaries plus all
// fork join points) by proximity. Each group keeps the point with the
// largest flow amount as its representative; the others are folded under it
// and later re-routed by forkEstuaries. Returns representative cell ->
// member cells.
func (c *Continent) groupEstuaries(estuaries []int, forks map[int]int) map[int][]int {
	tree := rtreego.NewTree(2, 25, 50)
	groups := make(map[int][]int)

	candidates := append([]int(nil), estuaries...)
	joins := make([]int, 0, len(forks))
	for j := range forks {
		joins = append(joins, j)
	}
	sort.Ints(joins)
	candidates = append(candidates, joins...)

	for _, p := range candidates {
		px, py := c.cellXY(p)
		fx, fy := float64(px), float64(py)

		// Closest existing representative within merge radius, if any.
		var best *groupValue
		bestDist := math.Inf(1)
		for _, s := range tree.SearchIntersect(pointRect(fx, fy)) {
			g := s.(*groupValue)
			if d := math.Hypot(g.X-fx, g.Y-fy); d < bestDist {
				best, bestDist = g, d
			}
		}
		if best == nil {
			groups[p] = nil
			tree.Insert(&groupValue{X: fx, Y: fy, He: c.MergeRadius, Cell: p})
			continue
		}

		repr := best.Cell
		if c.reprWins(repr, p) {
			groups[repr] = append(groups[repr], p)
			continue
		}

		// The candidate carries more water: it takes over the group and the
		// old representative becomes a member.
		tree.Delete(best)
		tree.Insert(&groupValue{X: fx, Y: fy, He: c.MergeRadius, Cell: p})
		members := append(groups[repr], repr)
		delete(groups, repr)
		groups[p] = members
	}
	return groups
}

// reprWins reports whether the current representative keeps its group when a
// candidate lands within merge radius. Larger flow wins; on equal flow a
// point at or below sea level beats one still inland.
func (c *Continent) reprWins(repr, cand int) bool {
	ra, ca := c.hydro[repr].Amount, c.hydro[cand].Amount
	if ra != ca {
		return ra > ca
	}
	return c.points[repr].Height <= c.SeaLevel || c.points[cand].Height > c.SeaLevel
}

// forkEstuaries decides where each grouped tributary physically joins its
// representative. The representative's chain is walked upstream a few steps
// at a time; each tributary walks upstream as long as that brings it closer.
// Forks that pointed into a walked tributary are re-routed onto the main
// river. A tributary whose closest approach still exceeds the unmerge radius
// is geographically too far away to share a mouth and is split back out as
// an independent fork.
func (c *Continent) forkEstuaries(groups map[int][]int, forks map[int]int) {
	reprs := make([]int, 0, len(groups))
	for r := range groups {
		reprs = append(reprs, r)
	}
	sort.Ints(reprs)

	for _, r := range reprs {
		main := r
		prevs := append([]int(nil), groups[r]...)
		for len(prevs) > 0 {
			prev := main
			for i := 0; i < 5 && main != 0; i++ {
				main = c.hydro[main].Prev
			}
			if main == 0 {
				// Ran out of main river: whatever is still grouped here stays
				// merged at the mouth.
				break
			}
			mx, my := c.cellXY(main)

			var keep []int
			for _, v := range prevs {
				prevDist := math.Inf(1)
				vx, vy := c.cellXY(v)
				newDist := cellDist(mx, my, vx, vy)
				for newDist < prevDist {
					up := c.hydro[v].Prev
					if up == 0 {
						// Reached the tributary's source; cell 0 is the "no
						// link" sentinel, never a river cell.
						break
					}
					v = up
					vx, vy = c.cellXY(v)
					prevDist = newDist
					newDist = cellDist(mx, my, vx, vy)
					if _, ok := forks[v]; ok {
						forks[v] = prev
					}
				}
				if newDist > c.UnmergeRadius {
					forks[prev] = v
					c.hydro[v].Next = prev
				} else {
					keep = append(keep, v)
				}
			}
			prevs = keep
		}
	}
}

func cellDist(ax, ay, bx, by int) float64 {
	return math.Hypot(float64(ax-bx), float64(ay-by))
}
