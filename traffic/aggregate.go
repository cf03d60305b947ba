package traffic

import (
	"github.com/urban-mobility-tools/bikeflow/feed"
)

// ComputeStationTraffic counts departures and arrivals per station over the
// given trip subset and returns a new station slice, preserving input order,
// with the derived fields set. Every input station appears in the output;
// stations untouched by any trip get zero counts. Trip station ids with no
// matching station are ignored.
func ComputeStationTraffic(stations []feed.Station, trips []feed.Trip) []feed.Station {
	departures := make(map[string]int, len(stations))
	arrivals := make(map[string]int, len(stations))
	for _, t := range trips {
		departures[t.StartStationID]++
		arrivals[t.EndStationID]++
	}
	out := make([]feed.Station, len(stations))
	for i, s := range stations {
		s.Departures = departures[s.ShortName]
		s.Arrivals = arrivals[s.ShortName]
		s.TotalTraffic = s.Departures + s.Arrivals
		out[i] = s
	}
	return out
}

// MaxTotalTraffic returns the largest TotalTraffic across the stations, or 0
// for an empty set.
func MaxTotalTraffic(stations []feed.Station) int {
	max := 0
	for _, s := range stations {
		if s.TotalTraffic > max {
			max = s.TotalTraffic
		}
	}
	return max
}
