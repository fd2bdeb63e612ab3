// Command mapexport generates a continent and writes the rendered map and
// river data to disk.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/Lamakaio/gencontinent"
)

var (
	seed    uint   = 1082
	sizePo2 int    = 11
	outDir  string = "."
)

func init() {
	flag.UintVar(&seed, "seed", seed, "the world seed")
	flag.IntVar(&sizePo2, "size_po2", sizePo2, "size exponent, grid is 2^p x 2^p cells")
	flag.StringVar(&outDir, "out", outDir, "output directory")
}

func main() {
	flag.Parse()

	c, err := gencontinent.NewWithSize(uint32(seed), sizePo2)
	if err != nil {
		log.Fatal(err)
	}

	if err := writePNG(filepath.Join(outDir, "map.png"), c.ExportImage(gencontinent.DisplayHeight)); err != nil {
		log.Fatal(err)
	}
	if err := writePNG(filepath.Join(outDir, "biomes.png"), c.ExportImage(gencontinent.DisplayBiomes)); err != nil {
		log.Fatal(err)
	}

	data, err := c.ExportGeoJSON()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "rivers.geojson"), data, 0644); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", len(c.RiverPaths), "rivers and", len(c.Lakes), "lakes to", outDir)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
