package gencontinent

import (
	"image/color"

	"github.com/Flokey82/genbiome"
)

const (
	minTemp          = genbiome.MinTemperatureC
	maxTemp          = genbiome.MaxTemperatureC
	maxPrecipitation = genbiome.MaxPrecipitationDM
)

// cellTemperature approximates the temperature of a cell from its altitude:
// the coast is warm, peaks are cold.
func (c *Continent) cellTemperature(id int) float64 {
	h := c.points[id].Height
	rel := clamp((h-c.SeaLevel)/(1-c.SeaLevel), 0, 1)
	return float64(maxTemp) - rel*float64(maxTemp-minTemp)
}

// cellPrecipitation approximates precipitation from the cell's wetness and
// accumulated flow: river cells and their surroundings are lush, the rest of
// the land is dry by comparison.
func (c *Continent) cellPrecipitation(id int) float64 {
	moisture := clamp(c.points[id].Wetness*c.hydro[id].Amount/c.MinRiverAmount, 0, 1)
	return moisture * float64(maxPrecipitation)
}

// Biome returns the Whittaker biome for the cell at the given grid
// coordinate.
func (c *Continent) Biome(x, y int) int {
	id := c.cellID(x, y)
	return genbiome.GetWhittakerModBiome(int(c.cellTemperature(id)), int(c.cellPrecipitation(id)))
}

// biomeColor returns the Whittaker biome color for a cell with the given
// shading intensity.
func (c *Continent) biomeColor(id int, intensity float64) color.NRGBA {
	return genbiome.GetWhittakerModBiomeColor(int(c.cellTemperature(id)), int(c.cellPrecipitation(id)), intensity)
}
