package scale

import (
	"math"
	"testing"

	"github.com/urban-mobility-tools/bikeflow/feed"
)

func TestFlowBucketQuantization(t *testing.T) {
	tests := []struct {
		name       string
		departures int
		total      int
		want       float64
	}{
		{"all arrivals", 0, 100, 0},
		{"ratio 0.33", 33, 100, 0},
		{"ratio 0.34", 34, 100, 0.5},
		{"balanced", 50, 100, 0.5},
		{"ratio 0.66", 66, 100, 0.5},
		{"ratio 0.67", 67, 100, 1},
		{"all departures", 100, 100, 1},
		{"zero traffic pins to balanced", 0, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlowBucket(tt.departures, tt.total); got != tt.want {
				t.Errorf("FlowBucket(%d, %d) = %v, want %v", tt.departures, tt.total, got, tt.want)
			}
		})
	}
}

func stationsWithTraffic(totals ...int) []feed.Station {
	out := make([]feed.Station, len(totals))
	for i, tot := range totals {
		out[i] = feed.Station{ShortName: string(rune('A' + i)), TotalTraffic: tot}
	}
	return out
}

func TestRadiusScaleUnfiltered(t *testing.T) {
	s := NewRadiusScale(stationsWithTraffic(0, 4, 16), false)
	if got := s.Radius(16); got != 25 {
		t.Errorf("max traffic radius: got %v, want 25", got)
	}
	if got := s.Radius(0); got != 0 {
		t.Errorf("zero traffic radius: got %v, want 0", got)
	}
	// Area grows linearly with traffic: quarter of the max traffic gives
	// half the max radius.
	if got := s.Radius(4); math.Abs(got-12.5) > 1e-9 {
		t.Errorf("quarter traffic radius: got %v, want 12.5", got)
	}
}

func TestRadiusScaleFiltered(t *testing.T) {
	s := NewRadiusScale(stationsWithTraffic(0, 9), true)
	if got := s.Radius(9); got != 50 {
		t.Errorf("max traffic radius: got %v, want 50", got)
	}
	if got := s.Radius(0); got != 3 {
		t.Errorf("zero traffic radius: got %v, want 3 (raised floor)", got)
	}
}

func TestRadiusScaleZeroMaxDomain(t *testing.T) {
	tests := []struct {
		name     string
		filtered bool
		want     float64
	}{
		{"unfiltered empty domain", false, 0},
		{"filtered empty domain", true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRadiusScale(stationsWithTraffic(0, 0), tt.filtered)
			for _, total := range []int{0, 1, 100} {
				if got := s.Radius(total); got != tt.want {
					t.Errorf("Radius(%d) = %v, want %v", total, got, tt.want)
				}
			}
		})
	}
}
