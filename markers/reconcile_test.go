package markers

import (
	"testing"

	"github.com/urban-mobility-tools/bikeflow/feed"
	"github.com/urban-mobility-tools/bikeflow/projection"
	"github.com/urban-mobility-tools/bikeflow/scale"
)

func station(id string, departures, arrivals int) feed.Station {
	return feed.Station{
		ShortName:    id,
		Departures:   departures,
		Arrivals:     arrivals,
		TotalTraffic: departures + arrivals,
	}
}

func TestReconcileCreatesMarkers(t *testing.T) {
	set := NewSet()
	stations := []feed.Station{station("A", 1, 0), station("B", 0, 1)}
	d := set.Reconcile(stations, scale.NewRadiusScale(stations, false))
	if len(d.Created) != 2 || len(d.Retained) != 0 || len(d.Removed) != 0 {
		t.Fatalf("diff = %+v, want 2 created only", d)
	}
	if set.Len() != 2 {
		t.Fatalf("set size %d, want 2", set.Len())
	}
	m := set.Get("A")
	if m == nil {
		t.Fatal("marker A missing")
	}
	if m.Opacity != markerOpacity {
		t.Errorf("opacity %v, want %v", m.Opacity, markerOpacity)
	}
}

func TestReconcileUpdatesInPlace(t *testing.T) {
	set := NewSet()
	first := []feed.Station{station("A", 1, 0), station("B", 0, 1)}
	set.Reconcile(first, scale.NewRadiusScale(first, false))
	beforeA := set.Get("A")
	beforeB := set.Get("B")

	// Same identities, different traffic: nothing may be recreated.
	second := []feed.Station{station("A", 5, 3), station("B", 2, 2)}
	d := set.Reconcile(second, scale.NewRadiusScale(second, false))
	if len(d.Created) != 0 || len(d.Removed) != 0 {
		t.Fatalf("diff = %+v, want retained only", d)
	}
	if set.Get("A") != beforeA || set.Get("B") != beforeB {
		t.Fatal("markers were recreated instead of updated in place")
	}
	if got := beforeA.Tooltip; got != "8 trips (5 departures, 3 arrivals)" {
		t.Errorf("tooltip not refreshed: %q", got)
	}
}

func TestReconcileRemovesAbsentStations(t *testing.T) {
	set := NewSet()
	first := []feed.Station{station("A", 1, 0), station("B", 0, 1)}
	set.Reconcile(first, scale.NewRadiusScale(first, false))

	second := []feed.Station{station("B", 0, 1)}
	d := set.Reconcile(second, scale.NewRadiusScale(second, false))
	if len(d.Removed) != 1 || d.Removed[0] != "A" {
		t.Fatalf("removed = %v, want [A]", d.Removed)
	}
	if set.Get("A") != nil {
		t.Fatal("marker A still present after removal")
	}
	if set.Len() != 1 {
		t.Fatalf("set size %d, want 1", set.Len())
	}
}

func TestTooltipFormat(t *testing.T) {
	tests := []struct {
		name    string
		station feed.Station
		want    string
	}{
		{"mixed", station("A", 1, 0), "1 trips (1 departures, 0 arrivals)"},
		{"zero", station("C", 0, 0), "0 trips (0 departures, 0 arrivals)"},
		{"large", station("B", 120, 80), "200 trips (120 departures, 80 arrivals)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tooltip(tt.station); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepositionProjectsEveryMarker(t *testing.T) {
	set := NewSet()
	stations := []feed.Station{
		{ShortName: "A", Lon: 10, Lat: 20},
		{ShortName: "B", Lon: 30, Lat: 40},
	}
	set.Reconcile(stations, scale.NewRadiusScale(stations, false))

	set.Reposition(projection.ProjectorFunc(func(lon, lat float64) (float64, float64) {
		return lon * 2, lat * 2
	}))
	if m := set.Get("A"); m.X != 20 || m.Y != 40 {
		t.Errorf("A projected to (%v,%v), want (20,40)", m.X, m.Y)
	}
	if m := set.Get("B"); m.X != 60 || m.Y != 80 {
		t.Errorf("B projected to (%v,%v), want (60,80)", m.X, m.Y)
	}

	// A new projection overwrites stale coordinates unconditionally.
	set.Reposition(projection.ProjectorFunc(func(lon, lat float64) (float64, float64) {
		return lon, lat
	}))
	if m := set.Get("A"); m.X != 10 || m.Y != 20 {
		t.Errorf("A reprojected to (%v,%v), want (10,20)", m.X, m.Y)
	}
}

func TestMarkersSnapshotFollowsStationOrder(t *testing.T) {
	set := NewSet()
	stations := []feed.Station{station("B", 0, 0), station("A", 0, 0), station("C", 0, 0)}
	set.Reconcile(stations, scale.NewRadiusScale(stations, false))
	got := set.Markers()
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("snapshot size %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].StationID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].StationID, id)
		}
	}
}
