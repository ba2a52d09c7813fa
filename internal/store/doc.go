// Package store provides SQLite-backed storage for ride summaries.
//
// All rides live in a single table, data, keyed by the local time they were
// stored at:
//
//	ts         timestamp primary key
//	meters     integer
//	seconds    integer
//	meanspeed  float
//	maxspeed   float
//	cadence    integer
//	ts_dist    integer
//	ts_time    integer
//	constraint ride unique (meters, seconds, meanspeed)
//
// The ride constraint keeps a ride from being stored twice when the same
// cradle reading is processed again. A violation surfaces as ErrDuplicateRide.
//
// # Database Configuration
//
//   - Rollback journal (no WAL): the database stays a single file
//   - synchronous=NORMAL
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - One open connection; the recorder is the only writer
//
// Values are always bound as statement parameters, never spliced into SQL.
package store
