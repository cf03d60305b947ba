package markers

import (
	"fmt"

	"github.com/urban-mobility-tools/bikeflow/feed"
)

// markerOpacity is the fill opacity every marker is created with.
const markerOpacity = 0.6

// Marker is the visual element for one station. StationID is stable across
// redraws; X and Y are only valid for the viewport they were last projected
// under.
type Marker struct {
	StationID  string  `json:"stationId"`
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	Radius     float64 `json:"radius"`
	FlowBucket float64 `json:"flowBucket"`
	Opacity    float64 `json:"opacity"`
	Tooltip    string  `json:"tooltip"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Tooltip renders the hover text for a station's current traffic numbers.
func Tooltip(s feed.Station) string {
	return fmt.Sprintf("%d trips (%d departures, %d arrivals)",
		s.TotalTraffic, s.Departures, s.Arrivals)
}
