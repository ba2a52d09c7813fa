package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecord = Record{
	DistanceMeters:   3064,
	DurationSeconds:  752,
	MeanSpeed:        15.27,
	MaxSpeed:         23.19,
	Cadence:          63,
	LifetimeDistance: 97080,
	LifetimeDuration: 22313,
}

func TestFormatSummary_Default(t *testing.T) {
	assert.Equal(t, sampleLines, FormatSummary(sampleRecord, SummaryOptions{}))
}

func TestFormatSummary_FeedsBuildStatus(t *testing.T) {
	status, err := BuildStatus(ParsePairs(FormatSummary(sampleRecord, SummaryOptions{})))
	require.NoError(t, err)
	assert.Equal(t,
		"Today's #cycling stats: 3.06 km in 0:12:32 (mean: 15.27 km/hr, max: 23.19 km/hr); cadence: 63/min. Grand total: 97.08 km in 6:11:53",
		status)
}

func TestFormatSummary_Miles(t *testing.T) {
	lines := FormatSummary(sampleRecord, SummaryOptions{Miles: true})

	assert.Equal(t, []string{
		"distance: 1.90 mi",
		"time: 0:12:32",
		"meanspeed: 9.48 mph",
		"maxspeed: 14.40 mph",
		"cadence: 63/min",
		"ts_dist: 60.32 mi",
		"ts_time: 6:11:53",
	}, lines)
}

func TestFormatSummary_NoLifetime(t *testing.T) {
	lines := FormatSummary(sampleRecord, SummaryOptions{NoLifetime: true})
	assert.Equal(t, sampleLines[:5], lines)
}

func TestFormatSummary_NoZeros(t *testing.T) {
	rec := sampleRecord
	rec.Cadence = 0

	withZeros := FormatSummary(rec, SummaryOptions{})
	assert.Contains(t, withZeros, "cadence: 0/min")

	lines := FormatSummary(rec, SummaryOptions{NoZeros: true})
	assert.NotContains(t, lines, "cadence: 0/min")
	assert.Len(t, lines, 6)

	status, err := BuildStatus(ParsePairs(lines))
	require.NoError(t, err)
	assert.NotContains(t, status, "cadence")
}

func TestFormatSummary_LongRide(t *testing.T) {
	rec := Record{DistanceMeters: 123456, DurationSeconds: 3*3600 + 5*60 + 7, MeanSpeed: 40, MaxSpeed: 55.5}
	lines := FormatSummary(rec, SummaryOptions{NoLifetime: true})
	assert.Equal(t, "distance: 123.45 km", lines[0])
	assert.Equal(t, "time: 3:05:07", lines[1])
	assert.Equal(t, "meanspeed: 40.00 km/hr", lines[2])
	assert.Equal(t, "maxspeed: 55.50 km/hr", lines[3])
}
