package gencontinent

import (
	"github.com/Flokey82/go_gens/vectors"
	"github.com/dhconnelly/rtreego"
)

// The source culling and estuary grouping phases share the same spatial
// index shape: values with a square bounding box of configurable half-extent
// around a grid point, queried with point lookups. rtreego's Spatial
// interface keeps the tree logic generic over both value types.

// sourceValue marks a kept river source. Its box spans the culling radius,
// so a point query at a candidate source finds every kept source within
// culling range.
type sourceValue struct {
	X, Y float64
	He   float64 // half-extent of the bounding box
	Grad vectors.Vec2
	Cell int
}

func (v *sourceValue) Bounds() rtreego.Rect {
	return boxAround(v.X, v.Y, v.He)
}

// groupValue marks an estuary group representative; the box spans the merge
// radius.
type groupValue struct {
	X, Y float64
	He   float64
	Cell int
}

func (v *groupValue) Bounds() rtreego.Rect {
	return boxAround(v.X, v.Y, v.He)
}

func boxAround(x, y, he float64) rtreego.Rect {
	r, err := rtreego.NewRect(rtreego.Point{x - he, y - he}, []float64{2 * he, 2 * he})
	if err != nil {
		panic(err) // only possible with a non-positive extent
	}
	return r
}

// pointRect is a degenerate query box for point lookups.
func pointRect(x, y float64) rtreego.Rect {
	r, err := rtreego.NewRect(rtreego.Point{x, y}, []float64{1e-9, 1e-9})
	if err != nil {
		panic(err)
	}
	return r
}
