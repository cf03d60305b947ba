package traffic

import (
	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/utils"
)

// NoFilter is the sentinel time-filter value meaning "all trips".
const NoFilter = -1

// WindowRadiusMinutes is the half-width of the closed inclusion window
// around the selected minute-of-day.
const WindowRadiusMinutes = 60

// FilterTrips selects the trips relevant to a minute-of-day filter. With
// NoFilter the input slice is returned as is. Otherwise a trip qualifies if
// either its start or its end time-of-day lies within WindowRadiusMinutes of
// filterMinutes (closed window, plain absolute difference on
// minutes-since-midnight). The input is never mutated.
func FilterTrips(trips []feed.Trip, filterMinutes int) []feed.Trip {
	if filterMinutes == NoFilter {
		return trips
	}
	out := make([]feed.Trip, 0, len(trips))
	for _, t := range trips {
		started := utils.MinutesSinceMidnight(t.StartedAt)
		ended := utils.MinutesSinceMidnight(t.EndedAt)
		if withinWindow(started, filterMinutes) || withinWindow(ended, filterMinutes) {
			out = append(out, t)
		}
	}
	return out
}

func withinWindow(minuteOfDay, filterMinutes int) bool {
	d := minuteOfDay - filterMinutes
	if d < 0 {
		d = -d
	}
	return d <= WindowRadiusMinutes
}
