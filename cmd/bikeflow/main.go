package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/urban-mobility-tools/bikeflow/config"
	"github.com/urban-mobility-tools/bikeflow/dashboard"
	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/formatter"
	"github.com/urban-mobility-tools/bikeflow/internal"
	"github.com/urban-mobility-tools/bikeflow/projection"
	"github.com/urban-mobility-tools/bikeflow/server"
	"github.com/urban-mobility-tools/bikeflow/traffic"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	format := flag.String("format", "json", "json|geojson (oneshot)")
	cfgPath := flag.String("config", "", "config file path (default config.yml)")
	filter := flag.Int("filter", traffic.NoFilter, "minute-of-day filter, -1 for all trips")
	stations := flag.String("stations", "", "stations dataset URL or path (overrides config)")
	trips := flag.String("trips", "", "trips dataset URL or path (overrides config)")
	centerLon := flag.Float64("centerLon", 0, "viewport center longitude (0 = dataset centroid)")
	centerLat := flag.Float64("centerLat", 0, "viewport center latitude (0 = dataset centroid)")
	zoom := flag.Float64("zoom", 12, "viewport zoom level")
	width := flag.Int("width", 1200, "viewport width in pixels")
	height := flag.Int("height", 800, "viewport height in pixels")
	flag.Parse()

	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	internal.InitLogging()
	path := *cfgPath
	if path == "" {
		path = os.Getenv("BIKEFLOW_CONFIG")
	}
	if err := config.LoadAppConfig(path); err != nil {
		log.Fatalf("config: %v", err)
	}
	dataCfg := config.Config.Data
	if *stations != "" {
		dataCfg.StationsURL = *stations
	}
	if *trips != "" {
		dataCfg.TripsURL = *trips
	}

	idx, err := feed.NewIndexFromConfig(context.Background(), dataCfg)
	if err != nil {
		// Terminal for the session: nothing is rendered on a failed load.
		log.Fatalf("dataset load failed, not rendering: %v", err)
	}
	log.Printf("loaded %d stations, %d trips", len(idx.Stations), len(idx.Trips))

	vp := projection.Viewport{
		CenterLon: *centerLon,
		CenterLat: *centerLat,
		Zoom:      *zoom,
		Width:     *width,
		Height:    *height,
	}
	if vp.CenterLon == 0 && vp.CenterLat == 0 {
		vp.CenterLon, vp.CenterLat = datasetCentroid(idx.Stations)
	}
	merc := projection.NewMercator(vp)
	orch := dashboard.New(idx, merc)

	switch *mode {
	case "oneshot":
		if err := orch.SetTimeFilter(*filter); err != nil {
			log.Fatalf("filter: %v", err)
		}
		rb := formatter.NewResponseBuilder()
		snap := orch.Snapshot()
		if *format == "geojson" {
			fmt.Println(string(rb.BuildGeoJSON(snap)))
		} else {
			fmt.Println(string(rb.BuildJSON(snap)))
		}
	case "serve":
		server.Start(server.New(orch, merc, idx), config.Config.Server)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func datasetCentroid(stations []feed.Station) (lon, lat float64) {
	if len(stations) == 0 {
		return 0, 0
	}
	for _, s := range stations {
		lon += s.Lon
		lat += s.Lat
	}
	n := float64(len(stations))
	return lon / n, lat / n
}
