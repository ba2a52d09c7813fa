package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/ridelog/internal/ride"
	"github.com/roach88/ridelog/internal/testutil"
)

// createTestStore creates a new store in a temp dir with a stepping clock.
func createTestStore(t *testing.T) (*Store, *testutil.StepClock) {
	t.Helper()
	clock := testutil.NewStepClock(testutil.DefaultStart)
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithClock(clock))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, clock
}

// createTestRecord creates a ride record distinguished by meters.
func createTestRecord(meters int64) ride.Record {
	return ride.Record{
		DistanceMeters:   meters,
		DurationSeconds:  752,
		MeanSpeed:        15.27,
		MaxSpeed:         23.19,
		Cadence:          63,
		LifetimeDistance: 97080,
		LifetimeDuration: 22313,
	}
}
