package gencontinent

import (
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
	geojson "github.com/paulmach/go.geojson"
)

// Display modes for ExportImage.
const (
	DisplayHeight = iota // elevation gradient
	DisplayBiomes        // Whittaker biomes
	DisplayFlux          // accumulated flow amounts
)

// ExportImage renders the continent to a single image, one pixel per cell,
// with the retained rivers and the lake / estuary markers drawn on top.
// Diagnostic output; the game's own rendering does not go through this.
func (c *Continent) ExportImage(displayMode int) image.Image {
	colorFunc := c.getColorFunc(displayMode)

	dest := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.size; y++ {
			dest.Set(x, y, colorFunc(c.cellID(x, y)))
		}
	}

	c.drawRivers(dest)
	c.drawMarkers(dest)
	return dest
}

// getColorFunc returns the per-cell color function for a display mode.
func (c *Continent) getColorFunc(displayMode int) func(id int) color.Color {
	switch displayMode {
	case DisplayBiomes:
		return func(id int) color.Color {
			h := c.points[id].Height
			if h <= c.SeaLevel {
				return genBlue(h / c.SeaLevel)
			}
			return c.biomeColor(id, 0.8+0.2*h)
		}
	case DisplayFlux:
		amounts := make([]float64, len(c.hydro))
		for i := range c.hydro {
			amounts[i] = c.hydro[i].Amount
		}
		_, max := minMax(amounts)
		return func(id int) color.Color {
			return genBlue(1 - c.hydro[id].Amount/max)
		}
	default:
		// Blue to white elevation gradient.
		colorGrad := colorgrad.NewGradient()
		colorGrad.Colors(
			color.RGBA{0, 0, 128, 255},
			color.RGBA{0, 128, 255, 255},
			color.RGBA{80, 160, 80, 255},
			color.RGBA{160, 160, 80, 255},
			color.RGBA{255, 255, 255, 255},
		)
		cb, err := colorGrad.Build()
		if err != nil {
			log.Fatal(err)
		}
		return func(id int) color.Color {
			return cb.At(c.points[id].Height)
		}
	}
}

// worldToPixel converts a world position to image coordinates (one pixel per
// grid cell).
func (c *Continent) worldToPixel(wx, wz float64) (float64, float64) {
	return wx/GridSquareSize + float64(c.size)/2, wz/GridSquareSize + float64(c.size)/2
}

// drawRivers strokes each retained river spline.
func (c *Continent) drawRivers(dest *image.RGBA) {
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetStrokeColor(color.NRGBA{0, 64, 192, 255})
	gc.SetLineWidth(1)
	for _, p := range c.RiverPaths {
		gc.BeginPath()
		start := p.At(0)
		x, y := c.worldToPixel(start.X, start.Z)
		gc.MoveTo(x, y)
		for t := 0.25; t <= p.Domain(); t += 0.25 {
			pt := p.At(t)
			x, y = c.worldToPixel(pt.X, pt.Z)
			gc.LineTo(x, y)
		}
		gc.Stroke()
	}
}

// drawMarkers draws a small cross on every lake and river mouth.
func (c *Continent) drawMarkers(dest *image.RGBA) {
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)

	cross := func(id int, col color.Color) {
		x, y := c.cellXY(id)
		fx, fy := float64(x), float64(y)
		gc.SetStrokeColor(col)
		gc.BeginPath()
		gc.MoveTo(fx-3, fy)
		gc.LineTo(fx+3, fy)
		gc.Stroke()
		gc.BeginPath()
		gc.MoveTo(fx, fy-3)
		gc.LineTo(fx, fy+3)
		gc.Stroke()
	}

	seen := make(map[int]bool)
	for _, e := range c.ToSea {
		if !seen[e] {
			seen[e] = true
			cross(e, color.NRGBA{255, 255, 0, 255})
		}
	}
	for l := range c.Lakes {
		cross(l, color.NRGBA{255, 0, 255, 255})
	}
}

// ExportGeoJSON returns the retained rivers as a GeoJSON feature collection
// of line strings in world coordinates, plus point features for lakes.
func (c *Continent) ExportGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, p := range c.RiverPaths {
		coords := make([][]float64, len(p.Points))
		for i, pt := range p.Points {
			coords[i] = []float64{pt.X, pt.Z}
		}
		f := geojson.NewLineStringFeature(coords)
		f.SetProperty("id", p.ID)
		f.SetProperty("name", p.Name)
		f.SetProperty("amount", p.Amount)
		fc.AddFeature(f)
	}
	lakes := make([]int, 0, len(c.Lakes))
	for l := range c.Lakes {
		lakes = append(lakes, l)
	}
	sort.Ints(lakes)
	for _, l := range lakes {
		w := c.ToWorld(l)
		f := geojson.NewPointFeature([]float64{w.X, w.Z})
		f.SetProperty("lake", l)
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}
