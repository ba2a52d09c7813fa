package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ridelog/internal/testutil"
)

func TestCountRides_Empty(t *testing.T) {
	s, _ := createTestStore(t)

	count, err := s.CountRides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecentRides_NewestFirstAndLimited(t *testing.T) {
	s, _ := createTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 6; i++ {
		_, err := s.InsertRide(ctx, createTestRecord(i*1000))
		require.NoError(t, err)
	}

	recent, err := s.RecentRides(ctx, 4)
	require.NoError(t, err)
	require.Len(t, recent, 4)

	meters := make([]int64, len(recent))
	for i, r := range recent {
		meters[i] = r.DistanceMeters
	}
	assert.Equal(t, []int64{6000, 5000, 4000, 3000}, meters)
	assert.True(t, recent[0].Timestamp.After(recent[1].Timestamp))
}

func TestRecentRides_Empty(t *testing.T) {
	s, _ := createTestStore(t)

	recent, err := s.RecentRides(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestBuildReport(t *testing.T) {
	s, _ := createTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 2; i++ {
		_, err := s.InsertRide(ctx, createTestRecord(i*1000))
		require.NoError(t, err)
	}

	report, err := s.BuildReport(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Recent, 2)
	assert.Equal(t, int64(2000), report.Recent[0].DistanceMeters)
	assert.WithinDuration(t, testutil.DefaultStart, report.Recent[1].Timestamp, 0)
}
