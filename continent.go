// Package gencontinent generates a continent height field with a consistent
// drainage network (rivers, forks, lakes, estuaries) derived from layered
// noise. Generation runs once, synchronously; afterwards the model is
// read-only and safe to share between concurrent readers.
package gencontinent

import (
	"log"
	"time"

	"github.com/Flokey82/geoquad"
	"github.com/Lamakaio/gencontinent/noise"
	"github.com/google/hilbert"
)

const (
	// GridSquareSize is the width of one grid cell in world units.
	GridSquareSize = 0.5

	// ScaleY is the vertical exaggeration applied when mapping heights to
	// world space.
	ScaleY = 100.0
)

// Continent holds the generated terrain and hydrology model.
//
// Cells are addressed by their index on a Hilbert curve over the grid, which
// keeps spatially close cells close in memory. Index 0 doubles as the
// "no link" sentinel in the hydrology chains; cell 0 sits on the grid border,
// which flow routing and source selection skip, so it can never be part of a
// river.
type Continent struct {
	*Config
	Seed uint32

	size int // side length in cells, 1 << SizePo2
	hc   *hilbert.Hilbert
	smp  *noise.Sampler

	points []TerrainPoint
	hydro  []HydrologyPoint

	// RiverPaths are the retained rivers as world-space splines, ordered by
	// discovery.
	RiverPaths []*RiverPath

	// Lakes is the set of cells where a river drains into an enclosed basin.
	Lakes map[int]bool

	// ToLake maps a source cell to the lake cell its water ends up in.
	ToLake map[int]int

	// ToSea maps a source cell to the estuary cell where its water reaches
	// the ocean.
	ToSea map[int]int

	// Forks maps a junction cell to the tributary cell that joins the owning
	// river there.
	Forks map[int]int

	outlets *geoquad.QuadTree
}

// New generates a continent for the given seed with default configuration.
func New(seed uint32) (*Continent, error) {
	return NewFromConfig(seed, nil)
}

// NewWithSize generates a continent with default configuration and the given
// size exponent; the grid is 2^sizePo2 cells on a side.
func NewWithSize(seed uint32, sizePo2 int) (*Continent, error) {
	cfg := NewConfig()
	cfg.SizePo2 = sizePo2
	return NewFromConfig(seed, cfg)
}

// NewFromConfig generates a continent for the given seed and configuration.
// Generation is deterministic: the same seed and config produce an identical
// model.
func NewFromConfig(seed uint32, cfg *Config) (*Continent, error) {
	c, err := newContinent(seed, cfg)
	if err != nil {
		return nil, err
	}
	c.generate()
	return c, nil
}

// newContinent allocates the model without generating it. Tests use this to
// run individual phases on synthetic terrain.
func newContinent(seed uint32, cfg *Config) (*Continent, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	n := 1 << cfg.SizePo2
	hc, err := hilbert.NewHilbert(n)
	if err != nil {
		return nil, err
	}
	c := &Continent{
		Config: cfg,
		Seed:   seed,
		size:   n,
		hc:     hc,
		smp:    noise.NewSampler(seed),
		points: make([]TerrainPoint, n*n),
		hydro:  make([]HydrologyPoint, n*n),
		Lakes:  make(map[int]bool),
		ToLake: make(map[int]int),
		ToSea:  make(map[int]int),
		Forks:  make(map[int]int),
	}
	// Every cell starts with one unit of water.
	for i := range c.hydro {
		c.hydro[i].Amount = 1
	}
	return c, nil
}

func (c *Continent) generate() {
	start := time.Now()
	c.sampleTerrain()
	log.Println("Done terrain in", time.Since(start).String())

	start = time.Now()
	c.makeHydrology()
	log.Println("Done hydrology in", time.Since(start).String())
}

// Size returns the side length of the grid in cells.
func (c *Continent) Size() int {
	return c.size
}

// cellID returns the Hilbert index of a grid coordinate.
func (c *Continent) cellID(x, y int) int {
	id, _ := c.hc.MapInverse(x, y)
	return id
}

// cellXY returns the grid coordinate of a Hilbert index.
func (c *Continent) cellXY(id int) (int, int) {
	x, y, _ := c.hc.Map(id)
	return x, y
}
