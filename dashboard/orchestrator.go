package dashboard

import (
	"fmt"
	"sync"

	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/markers"
	"github.com/urban-mobility-tools/bikeflow/projection"
	"github.com/urban-mobility-tools/bikeflow/scale"
	"github.com/urban-mobility-tools/bikeflow/traffic"
	"github.com/urban-mobility-tools/bikeflow/utils"
)

// AnyTimeLabel is shown while no time filter is active.
const AnyTimeLabel = "(any time)"

// Snapshot is one rendered state of the dashboard, safe to serialize after
// the orchestrator lock is released.
type Snapshot struct {
	Filter     int              `json:"filter"`
	Label      string           `json:"label"`
	MaxTraffic int              `json:"maxTraffic"`
	Markers    []markers.Marker `json:"markers"`
}

// Orchestrator owns the session state and is its sole mutator.
type Orchestrator struct {
	mu       sync.Mutex
	stations []feed.Station
	trips    []feed.Trip
	filter   int
	radius   scale.RadiusScale
	set      *markers.Set
	proj     projection.Projector
}

// New builds an orchestrator over loaded datasets and renders the initial
// unfiltered state.
func New(idx *feed.Index, proj projection.Projector) *Orchestrator {
	o := &Orchestrator{
		stations: idx.Stations,
		trips:    idx.Trips,
		filter:   traffic.NoFilter,
		set:      markers.NewSet(),
		proj:     proj,
	}
	o.mu.Lock()
	o.redrawLocked()
	o.mu.Unlock()
	return o
}

// SetTimeFilter applies a new minute-of-day filter (or traffic.NoFilter) and
// runs the full redraw pipeline.
func (o *Orchestrator) SetTimeFilter(minutes int) error {
	if minutes != traffic.NoFilter && (minutes < 0 || minutes >= utils.MinutesPerDay) {
		return fmt.Errorf("time filter must be -1 or 0..%d, got %d", utils.MinutesPerDay-1, minutes)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.filter = minutes
	o.redrawLocked()
	return nil
}

// TimeFilter returns the current filter value.
func (o *Orchestrator) TimeFilter() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.filter
}

// OnViewportChange re-projects the existing marker set. Traffic numbers,
// scales and tooltips are left untouched.
func (o *Orchestrator) OnViewportChange() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.set.Reposition(o.proj)
}

// ReplaceDatasets swaps the canonical station and trip data and redraws
// under the current filter. Stations missing from the new data lose their
// markers via reconciliation.
func (o *Orchestrator) ReplaceDatasets(idx *feed.Index) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stations = idx.Stations
	o.trips = idx.Trips
	o.redrawLocked()
}

// FilterLabel renders the current filter as a 12-hour clock string, or the
// any-time indicator when no filter is active.
func (o *Orchestrator) FilterLabel() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return filterLabel(o.filter)
}

// Snapshot copies the current rendered state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		Filter:     o.filter,
		Label:      filterLabel(o.filter),
		MaxTraffic: o.radius.MaxTraffic(),
		Markers:    o.set.Markers(),
	}
}

func (o *Orchestrator) redrawLocked() {
	filtered := traffic.FilterTrips(o.trips, o.filter)
	snapshot := traffic.ComputeStationTraffic(o.stations, filtered)
	o.radius = scale.NewRadiusScale(snapshot, o.filter != traffic.NoFilter)
	o.set.Reconcile(snapshot, o.radius)
	o.set.Reposition(o.proj)
}

func filterLabel(filter int) string {
	if filter == traffic.NoFilter {
		return AnyTimeLabel
	}
	return utils.FormatMinutesAsClock(filter)
}
