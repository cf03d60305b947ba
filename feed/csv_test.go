package feed

import (
	"strings"
	"testing"
	"time"
)

func TestParseStationsCSVCanonicalHeaders(t *testing.T) {
	csv := "short_name,name,lon,lat\nA32000,Central Sq,-71.10,42.36\nB32001,Kendall,-71.08,42.36\n"
	stations, err := ParseStationsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseStationsCSV: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("got %d stations, want 2", len(stations))
	}
	if stations[0].ShortName != "A32000" || stations[0].Name != "Central Sq" {
		t.Errorf("first station = %+v", stations[0])
	}
	if stations[0].Lon != -71.10 || stations[0].Lat != 42.36 {
		t.Errorf("first station coords = (%v,%v)", stations[0].Lon, stations[0].Lat)
	}
}

func TestParseStationsCSVAlternateHeaders(t *testing.T) {
	csv := "Number,NAME,Lat,Long\nA32000,Central Sq,42.36,-71.10\n"
	stations, err := ParseStationsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseStationsCSV: %v", err)
	}
	s := stations[0]
	if s.ShortName != "A32000" || s.Lon != -71.10 || s.Lat != 42.36 {
		t.Errorf("normalized station = %+v", s)
	}
}

func TestParseStationsCSVMissingIdentity(t *testing.T) {
	csv := "name,lon,lat\nCentral Sq,-71.10,42.36\n"
	if _, err := ParseStationsCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing identity column")
	}
}

func TestParseTripsCSV(t *testing.T) {
	csv := "ride_id,started_at,ended_at,start_station_id,end_station_id\n" +
		"r1,2024-03-05 08:00:00,2024-03-05 08:15:00,A,B\n" +
		"r2,2024-03-05T17:30:00,2024-03-05T17:55:00,B,A\n"
	trips, err := ParseTripsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseTripsCSV: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2", len(trips))
	}
	if trips[0].StartStationID != "A" || trips[0].EndStationID != "B" {
		t.Errorf("first trip stations = %+v", trips[0])
	}
	want := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	if !trips[0].StartedAt.Equal(want) {
		t.Errorf("first trip started at %v, want %v", trips[0].StartedAt, want)
	}
}

func TestParseTripsCSVBadTimestamp(t *testing.T) {
	csv := "started_at,ended_at,start_station_id,end_station_id\nnot-a-time,2024-03-05 08:15:00,A,B\n"
	if _, err := ParseTripsCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestParseTripsCSVEmpty(t *testing.T) {
	if _, err := ParseTripsCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
