package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/roach88/ridelog/internal/ride"
	"github.com/roach88/ridelog/internal/store"
)

// reportColumns are the data table columns in storage order.
var reportColumns = []string{"ts", "meters", "seconds", "meanspeed", "maxspeed", "cadence", "ts_dist", "ts_time"}

// writeReport prints the row count and the recent rides as aligned columns.
func writeReport(w io.Writer, report store.Report) error {
	if _, err := fmt.Fprintf(w, "total records: %d\nlast records:\n", report.Total); err != nil {
		return err
	}
	if len(report.Recent) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, reportColumns)
	for _, r := range report.Recent {
		writeRow(tw, rideRow(r))
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func rideRow(r ride.StoredRide) []string {
	return []string{
		r.Timestamp.Format(ride.TimestampLayout),
		strconv.FormatInt(r.DistanceMeters, 10),
		strconv.FormatInt(r.DurationSeconds, 10),
		strconv.FormatFloat(r.MeanSpeed, 'f', -1, 64),
		strconv.FormatFloat(r.MaxSpeed, 'f', -1, 64),
		strconv.FormatInt(r.Cadence, 10),
		strconv.FormatInt(r.LifetimeDistance, 10),
		strconv.FormatInt(r.LifetimeDuration, 10),
	}
}
