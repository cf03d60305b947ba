package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/urban-mobility-tools/bikeflow/config"
)

// NewIndexFromConfig loads both datasets from the configured source. Any
// failure is terminal: the caller gets no Index and must not render.
func NewIndexFromConfig(ctx context.Context, cfg config.DataConfig) (*Index, error) {
	switch cfg.Source {
	case "", "http", "file":
		return loadFromRefs(cfg.StationsURL, cfg.TripsURL)
	case "sqlite":
		return LoadFromSQLite(ctx, cfg.SQLitePath)
	case "postgres":
		return LoadFromPostgres(ctx, cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

func loadFromRefs(stationsRef, tripsRef string) (*Index, error) {
	stationData, err := fetch(stationsRef)
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	var stations []Station
	if looksLikeJSON(stationsRef, stationData) {
		stations, err = ParseStationsJSON(stationData)
	} else {
		stations, err = ParseStationsCSV(bytes.NewReader(stationData))
	}
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}

	tripData, err := fetch(tripsRef)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	trips, err := ParseTripsCSV(bytes.NewReader(tripData))
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	return &Index{Stations: stations, Trips: trips}, nil
}

// fetch reads a dataset from an http(s) URL or a local path.
func fetch(ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("no dataset reference configured")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		resp, err := http.Get(ref)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", ref, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(ref)
}

func looksLikeJSON(ref string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(ref), ".json") {
		return true
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
