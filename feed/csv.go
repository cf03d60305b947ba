package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts seen across published trip logs.
var tripTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func parseTripTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range tripTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable trip timestamp %q", s)
}

// headerIndex builds a column lookup that tolerates alternate header names.
func headerIndex(head []string) func(cols ...string) int {
	return func(cols ...string) int {
		for _, col := range cols {
			for i, h := range head {
				if strings.EqualFold(strings.TrimSpace(h), col) {
					return i
				}
			}
		}
		return -1
	}
}

// ParseStationsCSV reads station records from CSV. Both the short_name/lon/lat
// and the Number/Long/Lat header conventions are accepted.
func ParseStationsCSV(r io.Reader) ([]Station, error) {
	rec, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read stations csv: %w", err)
	}
	if len(rec) == 0 {
		return nil, errors.New("stations csv is empty")
	}
	idx := headerIndex(rec[0])
	sID := idx("short_name", "number")
	sName := idx("name", "station_name")
	sLon := idx("lon", "long", "longitude")
	sLat := idx("lat", "latitude")
	if sID < 0 || sLon < 0 || sLat < 0 {
		return nil, errors.New("stations csv missing identity or coordinate columns")
	}
	out := make([]Station, 0, len(rec)-1)
	for _, row := range rec[1:] {
		lon, _ := strconv.ParseFloat(strings.TrimSpace(row[sLon]), 64)
		lat, _ := strconv.ParseFloat(strings.TrimSpace(row[sLat]), 64)
		st := Station{ShortName: row[sID], Lon: lon, Lat: lat}
		if sName >= 0 && sName < len(row) {
			st.Name = row[sName]
		}
		out = append(out, st)
	}
	return out, nil
}

// ParseTripsCSV reads trip records from CSV. Column names follow the
// start_station_id/end_station_id/started_at/ended_at convention with a few
// accepted aliases.
func ParseTripsCSV(r io.Reader) ([]Trip, error) {
	rec, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read trips csv: %w", err)
	}
	if len(rec) == 0 {
		return nil, errors.New("trips csv is empty")
	}
	idx := headerIndex(rec[0])
	startID := idx("start_station_id", "start_station")
	endID := idx("end_station_id", "end_station")
	startT := idx("started_at", "start_time", "starttime")
	endT := idx("ended_at", "end_time", "stoptime")
	if startID < 0 || endID < 0 || startT < 0 || endT < 0 {
		return nil, errors.New("trips csv missing required columns")
	}
	out := make([]Trip, 0, len(rec)-1)
	for i, row := range rec[1:] {
		started, err := parseTripTime(row[startT])
		if err != nil {
			return nil, fmt.Errorf("trips csv row %d: %w", i+1, err)
		}
		ended, err := parseTripTime(row[endT])
		if err != nil {
			return nil, fmt.Errorf("trips csv row %d: %w", i+1, err)
		}
		out = append(out, Trip{
			StartStationID: row[startID],
			EndStationID:   row[endID],
			StartedAt:      started,
			EndedAt:        ended,
		})
	}
	return out, nil
}
