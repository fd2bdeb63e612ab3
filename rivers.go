package gencontinent

import (
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"gonum.org/v1/gonum/interp"
)

// RiverPath is one retained river as a cubic Hermite spline through its
// world-space control points. Points and Tangents are parallel slices; the
// spline parameter runs from 0 at the source to Domain() at the mouth, one
// unit per control point.
type RiverPath struct {
	ID     int     // index into Continent.RiverPaths
	Name   string  // deterministic per seed and river
	Amount float64 // flow volume at the mouth

	Points   []vectors.Vec3
	Tangents []vectors.Vec3

	sx, sy, sz interp.PiecewiseCubic
}

func newRiverPath(id int, name string, points, tangents []vectors.Vec3) *RiverPath {
	p := &RiverPath{ID: id, Name: name, Points: points, Tangents: tangents}

	n := len(points)
	ts := make([]float64, n)
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	dxs, dys, dzs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range points {
		ts[i] = float64(i)
		xs[i], ys[i], zs[i] = points[i].X, points[i].Y, points[i].Z
		dxs[i], dys[i], dzs[i] = tangents[i].X, tangents[i].Y, tangents[i].Z
	}
	p.sx.FitWithDerivatives(ts, xs, dxs)
	p.sy.FitWithDerivatives(ts, ys, dys)
	p.sz.FitWithDerivatives(ts, zs, dzs)
	return p
}

// At samples the spline at parameter t in [0, Domain()].
func (p *RiverPath) At(t float64) vectors.Vec3 {
	return vectors.Vec3{X: p.sx.Predict(t), Y: p.sy.Predict(t), Z: p.sz.Predict(t)}
}

// Domain returns the upper bound of the spline parameter.
func (p *RiverPath) Domain() float64 {
	return float64(len(p.Points) - 1)
}

// buildCurves converts the flow-significant river chains into splines. Every
// TilesPerPoint cells a control point is emitted with a tangent derived from
// the local momentum (perturbed a little for visual variety) and the local
// slope. A river whose walk crosses another river's curve stops at that
// curve's nearest control point so the two lines meet cleanly on screen.
func (c *Continent) buildCurves(sources []int) {
	rng := rand.New(rand.NewSource(int64(c.Seed)))

	for _, s := range sources {
		var points, tangents []vectors.Vec3

		origin := c.hydro[s].Source
		tile := s
		prev := vectors.Sub3(c.ToWorld(s), vectors.Vec3{X: 1, Z: 1})

		for c.hydro[tile].Source == origin && tile != 0 && c.hydro[tile].Visit != visitCurve {
			dir := momentumDir(c.hydro[tile].Momentum)
			grad := rotate(dir, rng.NormFloat64()*0.5).Mul(float64(c.TilesPerPoint) / 2)
			point := c.ToWorld(tile)
			points = append(points, point)
			tangents = append(tangents, vectors.Vec3{X: grad.X, Y: vertSlope(point, prev), Z: grad.Y})
			c.hydro[tile].CtrlPoint = true
			prev = point

			for i := 0; i < c.TilesPerPoint; i++ {
				if c.hydro[tile].Next == 0 ||
					(c.hydro[tile].Visit == visitCurve && c.hydro[tile].Source == origin) {
					c.hydro[tile].Visit = visitCurve
					break
				}
				if c.hydro[tile].Source == origin {
					c.hydro[tile].Visit = visitCurve
				}
				// Stop on another river's control point.
				if c.hydro[tile].CtrlPoint && c.hydro[tile].Source != origin {
					break
				}
				tile = c.hydro[tile].Next
			}
		}

		// After merging, run forward to the next control point of the river
		// we merged into, so the curves join.
		for c.hydro[tile].Source != origin && c.hydro[tile].Next != 0 && !c.hydro[tile].CtrlPoint {
			tile = c.hydro[tile].Next
		}
		c.hydro[tile].CtrlPoint = true
		grad := momentumDir(c.hydro[tile].Momentum).Mul(10)
		point := c.ToWorld(tile)
		points = append(points, point)
		tangents = append(tangents, vectors.Vec3{X: grad.X, Y: vertSlope(point, prev), Z: grad.Y})

		if c.hydro[tile].Amount < c.MinRiverAmount {
			continue
		}
		// The spline needs at least three control points; pad short paths by
		// repeating the mouth with a zero tangent.
		for len(points) < 3 {
			points = append(points, points[len(points)-1])
			tangents = append(tangents, vectors.Vec3{})
		}
		id := len(c.RiverPaths)
		rp := newRiverPath(id, c.riverName(id), points, tangents)
		rp.Amount = c.hydro[tile].Amount
		c.RiverPaths = append(c.RiverPaths, rp)
	}
}

// momentumDir is the momentum direction, defaulting to north for cells whose
// momentum vanished.
func momentumDir(m vectors.Vec2) vectors.Vec2 {
	if m.Len() == 0 {
		return vectors.Vec2{Y: 1}
	}
	return vectors.Normalize(m)
}

// vertSlope is the vertical component of the tangent: height delta over
// distance to the previous control point.
func vertSlope(point, prev vectors.Vec3) float64 {
	d := vectors.Sub3(point, prev).Len()
	if d == 0 {
		return 0
	}
	return (point.Y - prev.Y) / d
}
