package markers

import (
	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/projection"
	"github.com/urban-mobility-tools/bikeflow/scale"
)

// Diff lists the station ids touched by one reconciliation pass.
type Diff struct {
	Created  []string
	Retained []string
	Removed  []string
}

// Set is the live marker collection. Iteration order follows the station
// order of the most recent reconciliation.
type Set struct {
	byID  map[string]*Marker
	order []string
}

// NewSet creates an empty marker set.
func NewSet() *Set {
	return &Set{byID: map[string]*Marker{}}
}

// Len returns the number of live markers.
func (s *Set) Len() int { return len(s.byID) }

// Get returns the live marker for a station id, or nil.
func (s *Set) Get(stationID string) *Marker { return s.byID[stationID] }

// Markers returns a copy of the live markers in set order.
func (s *Set) Markers() []Marker {
	out := make([]Marker, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// DiffKeys computes the keyed set difference between the live markers and a
// station snapshot without applying it.
func (s *Set) DiffKeys(stations []feed.Station) Diff {
	var d Diff
	seen := make(map[string]struct{}, len(stations))
	for _, st := range stations {
		seen[st.ShortName] = struct{}{}
		if _, ok := s.byID[st.ShortName]; ok {
			d.Retained = append(d.Retained, st.ShortName)
		} else {
			d.Created = append(d.Created, st.ShortName)
		}
	}
	for id := range s.byID {
		if _, ok := seen[id]; !ok {
			d.Removed = append(d.Removed, id)
		}
	}
	return d
}

// Reconcile applies a freshly aggregated station snapshot to the live set.
// Retained markers are mutated in place; only stations absent from the
// snapshot lose their marker. Screen positions are untouched here, callers
// follow up with Reposition.
func (s *Set) Reconcile(stations []feed.Station, radius scale.RadiusScale) Diff {
	d := s.DiffKeys(stations)
	for _, id := range d.Removed {
		delete(s.byID, id)
	}
	order := make([]string, 0, len(stations))
	for _, st := range stations {
		m, ok := s.byID[st.ShortName]
		if !ok {
			m = &Marker{
				StationID: st.ShortName,
				Opacity:   markerOpacity,
			}
			s.byID[st.ShortName] = m
		}
		m.Lon = st.Lon
		m.Lat = st.Lat
		m.Radius = radius.Radius(st.TotalTraffic)
		m.FlowBucket = scale.FlowBucket(st.Departures, st.TotalTraffic)
		m.Tooltip = Tooltip(st)
		order = append(order, st.ShortName)
	}
	s.order = order
	return d
}

// Reposition projects every live marker through the current projector.
// Previous X/Y values are overwritten unconditionally; they are invalid the
// moment the viewport moves.
func (s *Set) Reposition(proj projection.Projector) {
	for _, id := range s.order {
		m := s.byID[id]
		m.X, m.Y = proj.Project(m.Lon, m.Lat)
	}
}
