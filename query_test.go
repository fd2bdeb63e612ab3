package gencontinent

import (
	"math"
	"testing"
)

func TestToWorld(t *testing.T) {
	c := testContinent(t, 6)
	center := c.cellID(32, 32)
	c.points[center].Height = 0.25

	w := c.ToWorld(center)
	if w.X != 0 || w.Z != 0 {
		t.Fatalf("grid center maps to (%f, %f), want origin", w.X, w.Z)
	}
	if w.Y != 0.25*ScaleY+1 {
		t.Fatalf("height maps to %f, want %f", w.Y, 0.25*ScaleY+1)
	}

	w = c.ToWorld(c.cellID(33, 40))
	if w.X != GridSquareSize || w.Z != 8*GridSquareSize {
		t.Fatalf("cell (33,40) maps to (%f, %f)", w.X, w.Z)
	}
}

func TestGetHeightUniform(t *testing.T) {
	c := testContinent(t, 6)
	for i := range c.points {
		c.points[i].Height = 0.5
	}
	want := 0.5*ScaleY + 1
	for _, pos := range [][2]float64{{0, 0}, {3.3, -7.1}, {-10.2, 8.8}, {1000, 1000}} {
		if got := c.GetHeight(pos[0], pos[1]); math.Abs(got-want) > 1e-9 {
			t.Fatalf("GetHeight(%f, %f) = %f, want %f", pos[0], pos[1], got, want)
		}
	}
}

func TestGetHeightAtCellCorners(t *testing.T) {
	c := testContinent(t, 6)
	n := float64(c.size - 1)
	for i := range c.points {
		x, _ := c.cellXY(i)
		c.points[i].Height = float64(x) / n
	}

	// At exact cell positions the bilinear interpolation collapses to the
	// cell's own sample.
	for _, cell := range [][2]int{{10, 20}, {1, 1}, {40, 3}} {
		wx := float64(cell[0]-c.size/2) * GridSquareSize
		wz := float64(cell[1]-c.size/2) * GridSquareSize
		want := float64(cell[0])/n*ScaleY + 1
		if got := c.GetHeight(wx, wz); math.Abs(got-want) > 1e-9 {
			t.Fatalf("GetHeight at cell (%d,%d) = %f, want %f", cell[0], cell[1], got, want)
		}
	}
}

func TestIndexAndGetHydro(t *testing.T) {
	c := testContinent(t, 6)
	c.points[c.cellID(5, 9)].Height = 0.42
	c.hydro[c.cellID(5, 9)].Amount = 17

	if h := c.Index(5, 9).Height; h != 0.42 {
		t.Fatalf("Index height = %f, want 0.42", h)
	}
	if a := c.GetHydro(5, 9).Amount; a != 17 {
		t.Fatalf("GetHydro amount = %f, want 17", a)
	}
}

func TestNearestOutlet(t *testing.T) {
	c := testContinent(t, 6)
	if _, ok := c.NearestOutlet(10, 10); ok {
		t.Fatal("outlet reported before any were built")
	}

	lake := c.cellID(10, 10)
	mouth := c.cellID(50, 50)
	c.Lakes[lake] = true
	c.buildOutletIndex(map[int][]int{mouth: nil})

	if got, ok := c.NearestOutlet(12, 12); !ok || got != lake {
		t.Fatalf("NearestOutlet(12,12) = %d (%t), want lake %d", got, ok, lake)
	}
	if got, ok := c.NearestOutlet(48, 52); !ok || got != mouth {
		t.Fatalf("NearestOutlet(48,52) = %d (%t), want mouth %d", got, ok, mouth)
	}
}
