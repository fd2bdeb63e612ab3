// Command mapserver generates a continent and serves a rendered preview of
// it over HTTP.
package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"net/http"

	"github.com/Lamakaio/gencontinent"
	"github.com/gorilla/mux"
)

var continent *gencontinent.Continent

var (
	seed    uint   = 1082
	sizePo2 int    = 11
	addr    string = ":3333"
)

func init() {
	flag.UintVar(&seed, "seed", seed, "the world seed")
	flag.IntVar(&sizePo2, "size_po2", sizePo2, "size exponent, grid is 2^p x 2^p cells")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	c, err := gencontinent.NewWithSize(uint32(seed), sizePo2)
	if err != nil {
		log.Fatal(err)
	}
	continent = c

	router := mux.NewRouter()
	router.HandleFunc("/map.png", mapHandler(gencontinent.DisplayHeight))
	router.HandleFunc("/biomes.png", mapHandler(gencontinent.DisplayBiomes))
	router.HandleFunc("/flux.png", mapHandler(gencontinent.DisplayFlux))
	router.HandleFunc("/rivers.geojson", riversHandler)
	router.HandleFunc("/info", infoHandler)
	log.Println("listening on", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func mapHandler(displayMode int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "image/png")
		if err := png.Encode(res, continent.ExportImage(displayMode)); err != nil {
			log.Println(err)
		}
	}
}

func riversHandler(res http.ResponseWriter, req *http.Request) {
	data, err := continent.ExportGeoJSON()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/geo+json")
	res.Write(data)
}

func infoHandler(res http.ResponseWriter, req *http.Request) {
	info := map[string]any{
		"seed":   seed,
		"size":   continent.Size(),
		"rivers": len(continent.RiverPaths),
		"lakes":  len(continent.Lakes),
		"to_sea": len(continent.ToSea),
	}
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(info); err != nil {
		log.Println(err)
	}
}
