package scale

import (
	"math"

	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/traffic"
)

// Radius ranges. Filtered views show fewer trips, so the range widens and
// the floor raises to keep small-but-nonzero stations visible.
const (
	radiusMaxUnfiltered = 25.0
	radiusMinFiltered   = 3.0
	radiusMaxFiltered   = 50.0
)

// RadiusScale maps a station's total traffic to a marker radius. Area, not
// radius, grows linearly with traffic, so the mapping takes a square root.
type RadiusScale struct {
	maxTraffic int
	rMin, rMax float64
}

// NewRadiusScale builds the radius scale for the current station snapshot.
// The domain is [0, max total traffic]; the range depends on whether a time
// filter is active.
func NewRadiusScale(stations []feed.Station, filtered bool) RadiusScale {
	s := RadiusScale{maxTraffic: traffic.MaxTotalTraffic(stations)}
	if filtered {
		s.rMin, s.rMax = radiusMinFiltered, radiusMaxFiltered
	} else {
		s.rMin, s.rMax = 0, radiusMaxUnfiltered
	}
	return s
}

// Radius maps a total-traffic value into the configured range. With an empty
// domain (max 0) everything maps to the range minimum.
func (s RadiusScale) Radius(totalTraffic int) float64 {
	if s.maxTraffic <= 0 || totalTraffic <= 0 {
		return s.rMin
	}
	frac := float64(totalTraffic) / float64(s.maxTraffic)
	if frac > 1 {
		frac = 1
	}
	return s.rMin + (s.rMax-s.rMin)*math.Sqrt(frac)
}

// MaxTraffic reports the current domain maximum.
func (s RadiusScale) MaxTraffic() int { return s.maxTraffic }

// FlowBucket quantizes a station's departure ratio into {0, 0.5, 1} by equal
// thirds of [0,1]. A station with no traffic has no defined ratio and is
// pinned to the balanced bucket 0.5.
func FlowBucket(departures, totalTraffic int) float64 {
	if totalTraffic <= 0 {
		return 0.5
	}
	ratio := float64(departures) / float64(totalTraffic)
	switch {
	case ratio < 1.0/3.0:
		return 0
	case ratio < 2.0/3.0:
		return 0.5
	default:
		return 1
	}
}
