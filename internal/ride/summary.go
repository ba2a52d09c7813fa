package ride

import (
	"fmt"
	"math"
)

// MilesPerKilometre converts kilometres (and km/hr) to miles (and mph).
const MilesPerKilometre = 1.609344

// SummaryOptions controls FormatSummary output.
type SummaryOptions struct {
	// Miles reports distances in miles and speeds in mph.
	Miles bool

	// NoLifetime drops the ts_dist and ts_time lines.
	NoLifetime bool

	// NoZeros drops fields whose value is zero.
	NoZeros bool
}

// FormatSummary renders rec as labelled "label: value" lines, the input shape
// BuildStatus consumes.
//
// Distances print as kilometres (or miles) truncated to two decimals, times
// as H:MM:SS and speeds with two decimals.
func FormatSummary(rec Record, opts SummaryOptions) []string {
	distUnit, speedUnit := "km", "km/hr"
	dist, lifetimeDist := rec.DistanceMeters, rec.LifetimeDistance
	mean, maxSpeed := centi(rec.MeanSpeed), centi(rec.MaxSpeed)
	if opts.Miles {
		distUnit, speedUnit = "mi", "mph"
		dist = int64(float64(dist) / MilesPerKilometre)
		lifetimeDist = int64(float64(lifetimeDist) / MilesPerKilometre)
		mean = int64(float64(mean) / MilesPerKilometre)
		maxSpeed = int64(float64(maxSpeed) / MilesPerKilometre)
	}

	var lines []string
	add := func(value int64, line string) {
		if value > 0 || !opts.NoZeros {
			lines = append(lines, line)
		}
	}

	add(dist, "distance: "+formatDistance(dist, distUnit))
	add(rec.DurationSeconds, "time: "+formatDuration(rec.DurationSeconds))
	add(mean, "meanspeed: "+formatCenti(mean, speedUnit))
	add(maxSpeed, "maxspeed: "+formatCenti(maxSpeed, speedUnit))
	add(rec.Cadence, fmt.Sprintf("cadence: %d/min", rec.Cadence))
	if !opts.NoLifetime {
		add(lifetimeDist, "ts_dist: "+formatDistance(lifetimeDist, distUnit))
		add(rec.LifetimeDuration, "ts_time: "+formatDuration(rec.LifetimeDuration))
	}
	return lines
}

func centi(v float64) int64 {
	return int64(math.Round(v * 100))
}

func formatDistance(meters int64, unit string) string {
	return fmt.Sprintf("%d.%02d %s", meters/1000, (meters%1000)/10, unit)
}

func formatDuration(seconds int64) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func formatCenti(v int64, unit string) string {
	return fmt.Sprintf("%d.%02d %s", v/100, v%100, unit)
}
