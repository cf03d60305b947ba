package formatter

import (
	"encoding/json"

	"github.com/urban-mobility-tools/bikeflow/dashboard"
)

type geoJSONFeature struct {
	Type       string         `json:"type"`
	Geometry   geoJSONPoint   `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type geoJSONCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

// BuildGeoJSON serializes a snapshot as a GeoJSON FeatureCollection of point
// features, one per marker, carrying the visual attributes as properties.
func (rb *responseBuilder) BuildGeoJSON(snap dashboard.Snapshot) []byte {
	fc := geoJSONCollection{
		Type:     "FeatureCollection",
		Features: make([]geoJSONFeature, 0, len(snap.Markers)),
	}
	for _, m := range snap.Markers {
		fc.Features = append(fc.Features, geoJSONFeature{
			Type: "Feature",
			Geometry: geoJSONPoint{
				Type:        "Point",
				Coordinates: [2]float64{m.Lon, m.Lat},
			},
			Properties: map[string]any{
				"stationId":  m.StationID,
				"radius":     m.Radius,
				"flowBucket": m.FlowBucket,
				"opacity":    m.Opacity,
				"tooltip":    m.Tooltip,
				"x":          m.X,
				"y":          m.Y,
				"label":      snap.Label,
			},
		})
	}
	b, _ := json.Marshal(fc)
	return b
}
