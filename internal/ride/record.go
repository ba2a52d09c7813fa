package ride

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is how ride timestamps are written to and read from the
// database. It matches SQLite's datetime() output.
const TimestampLayout = "2006-01-02 15:04:05"

// recordFields lists the comma-separated raw fields in input order.
var recordFields = []string{
	"distanceMeters",
	"durationSeconds",
	"meanSpeed",
	"maxSpeed",
	"cadence",
	"lifetimeDistance",
	"lifetimeDuration",
}

// Record is one ride summary as produced by the cradle reader.
//
// Lifetime* fields are the unit's cumulative trip-section counters at the
// time the ride was read, not per-ride values.
type Record struct {
	DistanceMeters   int64   `json:"meters"`
	DurationSeconds  int64   `json:"seconds"`
	MeanSpeed        float64 `json:"meanspeed"`
	MaxSpeed         float64 `json:"maxspeed"`
	Cadence          int64   `json:"cadence"`
	LifetimeDistance int64   `json:"ts_dist"`
	LifetimeDuration int64   `json:"ts_time"`
}

// StoredRide is a Record together with the timestamp it was stored under.
type StoredRide struct {
	Timestamp time.Time `json:"ts"`
	Record
}

// ParseRecordLine parses one raw comma-separated line.
//
// The trailing line terminator is stripped. Exactly seven fields are
// required, in the order: distanceMeters, durationSeconds, meanSpeed,
// maxSpeed, cadence, lifetimeDistance, lifetimeDuration.
// An empty line returns ErrMissingInput.
func ParseRecordLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Record{}, ErrMissingInput
	}

	parts := strings.Split(line, ",")
	if len(parts) != len(recordFields) {
		return Record{}, &MalformedInputError{
			Field:  "record",
			Value:  line,
			Reason: "expected " + strconv.Itoa(len(recordFields)) + " comma-separated fields, got " + strconv.Itoa(len(parts)),
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var (
		rec Record
		err error
	)
	ints := []struct {
		idx int
		dst *int64
	}{
		{0, &rec.DistanceMeters},
		{1, &rec.DurationSeconds},
		{4, &rec.Cadence},
		{5, &rec.LifetimeDistance},
		{6, &rec.LifetimeDuration},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.ParseInt(parts[f.idx], 10, 64); err != nil {
			return Record{}, &MalformedInputError{Field: recordFields[f.idx], Value: parts[f.idx], Reason: "not an integer"}
		}
	}
	floats := []struct {
		idx int
		dst *float64
	}{
		{2, &rec.MeanSpeed},
		{3, &rec.MaxSpeed},
	}
	for _, f := range floats {
		if *f.dst, err = strconv.ParseFloat(parts[f.idx], 64); err != nil {
			return Record{}, &MalformedInputError{Field: recordFields[f.idx], Value: parts[f.idx], Reason: "not a number"}
		}
	}

	return rec, nil
}
