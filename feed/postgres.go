package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadFromPostgres reads both datasets from a Postgres database with
// `stations` and `trips` tables matching the canonical column names.
func LoadFromPostgres(ctx context.Context, databaseURL string) (*Index, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("postgres source selected but no URL configured")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	stations, err := postgresStations(ctx, pool)
	if err != nil {
		return nil, err
	}
	trips, err := postgresTrips(ctx, pool)
	if err != nil {
		return nil, err
	}
	return &Index{Stations: stations, Trips: trips}, nil
}

func postgresStations(ctx context.Context, pool *pgxpool.Pool) ([]Station, error) {
	rows, err := pool.Query(ctx, `
		SELECT short_name, COALESCE(name, ''), lon, lat
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
		if err := rows.Scan(&s.ShortName, &s.Name, &s.Lon, &s.Lat); err != nil {
			return nil, fmt.Errorf("scan station row: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate station rows: %w", err)
	}
	return stations, nil
}

func postgresTrips(ctx context.Context, pool *pgxpool.Pool) ([]Trip, error) {
	rows, err := pool.Query(ctx, `
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
		var started, ended time.Time
		if err := rows.Scan(&t.StartStationID, &t.EndStationID, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		t.StartedAt = started
		t.EndedAt = ended
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trip rows: %w", err)
	}
	return trips, nil
}
