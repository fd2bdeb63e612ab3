package gencontinent

import "math"

// Config is a struct that holds all configuration options for continent and
// hydrology generation.
type Config struct {
	SizePo2          int     // Size exponent P, the grid is 2^P x 2^P cells
	SeaLevel         float64 // Height at or below which a cell counts as ocean
	SourceMinHeight  float64 // Minimum height for a river source
	SourceCullRadius float64 // Radius within which similar sources are culled
	SourceSepAngle   float64 // Minimum gradient angle between nearby sources
	HeightThreshold  float64 // Uphill delta that marks a flow dead end
	MergeRadius      float64 // Estuary grouping radius, in grid units
	UnmergeRadius    float64 // Distance above which grouped rivers split again
	TilesPerPoint    int     // Grid steps between river curve control points
	MinRiverAmount   float64 // Materiality threshold for rendered rivers
	Slowdown         float64 // Momentum blend factor while tracing
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SizePo2:          11,
		SeaLevel:         0.534,
		SourceMinHeight:  0.545,
		SourceCullRadius: 10,
		SourceSepAngle:   math.Pi / 4,
		HeightThreshold:  0.05,
		MergeRadius:      20,
		UnmergeRadius:    25,
		TilesPerPoint:    30,
		MinRiverAmount:   80,
		Slowdown:         0.9,
	}
}
