package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/ridelog/internal/ride"
)

// Report is the summary printed after a ride is recorded.
type Report struct {
	Total  int               `json:"total"`
	Recent []ride.StoredRide `json:"recent"`
}

// CountRides returns the number of stored rides.
func (s *Store) CountRides(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM data`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rides: %w", err)
	}
	return count, nil
}

// RecentRides returns up to limit rides, most recent first.
func (s *Store) RecentRides(ctx context.Context, limit int) ([]ride.StoredRide, error) {
	// ts is cast to text so the driver hands back the stored local wall time
	// instead of reinterpreting it as UTC.
	rows, err := s.db.QueryContext(ctx, `
		SELECT CAST(ts AS TEXT), meters, seconds, meanspeed, maxspeed, cadence, ts_dist, ts_time
		FROM data
		ORDER BY ts DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent rides: %w", err)
	}
	defer rows.Close()

	var rides []ride.StoredRide
	for rows.Next() {
		var (
			r  ride.StoredRide
			ts string
		)
		if err := rows.Scan(
			&ts,
			&r.DistanceMeters,
			&r.DurationSeconds,
			&r.MeanSpeed,
			&r.MaxSpeed,
			&r.Cadence,
			&r.LifetimeDistance,
			&r.LifetimeDuration,
		); err != nil {
			return nil, fmt.Errorf("recent rides: scan: %w", err)
		}
		if r.Timestamp, err = time.ParseInLocation(ride.TimestampLayout, ts, time.Local); err != nil {
			return nil, fmt.Errorf("recent rides: timestamp %q: %w", ts, err)
		}
		rides = append(rides, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent rides: %w", err)
	}

	return rides, nil
}

// BuildReport gathers the row count and the limit most recent rides.
func (s *Store) BuildReport(ctx context.Context, limit int) (Report, error) {
	total, err := s.CountRides(ctx)
	if err != nil {
		return Report{}, err
	}
	recent, err := s.RecentRides(ctx, limit)
	if err != nil {
		return Report{}, err
	}
	return Report{Total: total, Recent: recent}, nil
}
