package feed

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadFromSQLite reads both datasets from a local SQLite database with
// `stations` and `trips` tables matching the canonical column names.
func LoadFromSQLite(ctx context.Context, path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite source selected but no path configured")
	}
	db, err := sql.Open("sqlite", path+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(2)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	stations, err := sqliteStations(ctx, db)
	if err != nil {
		return nil, err
	}
	trips, err := sqliteTrips(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Index{Stations: stations, Trips: trips}, nil
}

func sqliteStations(ctx context.Context, db *sql.DB) ([]Station, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT short_name, name, lon, lat
		FROM stations
		ORDER BY short_name
	`)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	var stations []Station
	for rows.Next() {
		var s Station
		var name sql.NullString
		if err := rows.Scan(&s.ShortName, &name, &s.Lon, &s.Lat); err != nil {
			return nil, fmt.Errorf("scan station row: %w", err)
		}
		s.Name = name.String
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate station rows: %w", err)
	}
	return stations, nil
}

func sqliteTrips(ctx context.Context, db *sql.DB) ([]Trip, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT start_station_id, end_station_id, started_at, ended_at
		FROM trips
	`)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		var started, ended string
		if err := rows.Scan(&t.StartStationID, &t.EndStationID, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		if t.StartedAt, err = parseTripTime(started); err != nil {
			return nil, fmt.Errorf("trip started_at: %w", err)
		}
		if t.EndedAt, err = parseTripTime(ended); err != nil {
			return nil, fmt.Errorf("trip ended_at: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trip rows: %w", err)
	}
	return trips, nil
}
