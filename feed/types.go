package feed

import "time"

// Station is one bike-share station. ShortName is the stable identity used
// to join trips to stations and to key markers across redraws.
//
// Arrivals, Departures and TotalTraffic are derived per aggregation pass and
// only meaningful as the current snapshot; TotalTraffic is always the sum of
// the other two.
type Station struct {
	ShortName    string  `json:"short_name"`
	Name         string  `json:"name"`
	Lon          float64 `json:"lon"`
	Lat          float64 `json:"lat"`
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	TotalTraffic int     `json:"totalTraffic"`
}

// Trip is one ride from the trip log. Trips are immutable once loaded.
// Station ids are not required to resolve to a loaded Station; unmatched ids
// simply never contribute to any station's counts.
type Trip struct {
	StartStationID string    `json:"start_station_id"`
	EndStationID   string    `json:"end_station_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
}

// Index holds the canonical unfiltered datasets for a session.
type Index struct {
	Stations []Station
	Trips    []Trip
}
