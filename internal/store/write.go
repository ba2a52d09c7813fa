package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/ridelog/internal/ride"
)

var (
	// ErrDuplicateRide means a ride with the same distance, duration and mean
	// speed is already stored.
	ErrDuplicateRide = errors.New("ride already recorded")

	// ErrTimestampTaken means another ride was stored in the same second.
	ErrTimestampTaken = errors.New("a ride is already recorded at this timestamp")
)

// InsertRide stores rec under the current local time, truncated to seconds.
//
// There is no retry: a constraint violation or a busy database is returned
// to the caller as is, wrapped with ErrDuplicateRide or ErrTimestampTaken
// when it can be classified.
func (s *Store) InsertRide(ctx context.Context, rec ride.Record) (ride.StoredRide, error) {
	ts := s.clock.Now().Local().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO data
		(ts, meters, seconds, meanspeed, maxspeed, cadence, ts_dist, ts_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ts.Format(ride.TimestampLayout),
		rec.DistanceMeters,
		rec.DurationSeconds,
		rec.MeanSpeed,
		rec.MaxSpeed,
		rec.Cadence,
		rec.LifetimeDistance,
		rec.LifetimeDuration,
	)
	if err != nil {
		switch constraintKind(err) {
		case sqlite3.ErrConstraintUnique:
			return ride.StoredRide{}, fmt.Errorf("insert ride: %w: %w", ErrDuplicateRide, err)
		case sqlite3.ErrConstraintPrimaryKey:
			return ride.StoredRide{}, fmt.Errorf("insert ride: %w: %w", ErrTimestampTaken, err)
		}
		return ride.StoredRide{}, fmt.Errorf("insert ride: %w", err)
	}

	return ride.StoredRide{Timestamp: ts, Record: rec}, nil
}

// constraintKind returns the extended constraint code of a SQLite error, or
// 0 if err is not a constraint violation.
func constraintKind(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return 0
	}
	return sqliteErr.ExtendedCode
}
