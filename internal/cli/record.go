package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/ridelog/internal/ride"
	"github.com/roach88/ridelog/internal/store"
)

// RecentLimit is how many rides the report lists.
const RecentLimit = 4

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	Quiet bool

	// Clock overrides the wall clock used to stamp rides (for testing).
	Clock store.Clock
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	return newRecordCommand(&RecordOptions{RootOptions: rootOpts})
}

func newRecordCommand(opts *RecordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Store one raw ride line from stdin",
		Long: `Read one comma-separated ride line from stdin and store it in the
data table, creating the table if needed.

Fields, in order:
  meters,seconds,meanspeed,maxspeed,cadence,ts_dist,ts_time

Unless --quiet is given, the total number of rides and the four most
recent ones are printed afterwards.

Exit status is 1 when stdin is empty and 2 when the line is malformed or
cannot be stored (including a ride that was already recorded).

Example:
  echo 3064,752,15.27,23.19,63,97080,22313 | ridelog record
  sds-data --raw --clear | ridelog record --quiet --db ~/rides.sqlite3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordRide(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print the report")

	return cmd
}

func recordRide(opts *RecordOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	// Nothing touches the database until the input is known to be usable.
	line, err := readFirstLine(cmd.InOrStdin())
	if err != nil {
		return failMissingInput(formatter, err)
	}
	rec, err := ride.ParseRecordLine(line)
	if err != nil {
		return failMalformed(formatter, err)
	}

	cfg, logger, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("opening database", zap.String("path", cfg.Database))
	st, err := store.Open(cfg.Database, store.WithClock(opts.Clock))
	if err != nil {
		return fail(formatter, ErrCodeStorage, WrapExitError(ExitCommandError, "failed to open database", err))
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", zap.Error(closeErr))
		}
	}()

	ctx := cmd.Context()
	stored, err := st.InsertRide(ctx, rec)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRide) {
			logger.Warn("ride already recorded", zap.Int64("meters", rec.DistanceMeters),
				zap.Int64("seconds", rec.DurationSeconds), zap.Float64("meanspeed", rec.MeanSpeed))
			return fail(formatter, ErrCodeDuplicateRide, WrapExitError(ExitCommandError, "failed to record ride", err))
		}
		return fail(formatter, ErrCodeStorage, WrapExitError(ExitCommandError, "failed to record ride", err))
	}
	logger.Info("ride recorded",
		zap.String("db", cfg.Database),
		zap.String("ts", stored.Timestamp.Format(ride.TimestampLayout)),
		zap.Int64("meters", rec.DistanceMeters),
	)

	formatter.VerboseLog("stored ride at %s in %s", stored.Timestamp.Format(ride.TimestampLayout), cfg.Database)

	if opts.Quiet {
		return nil
	}

	report, err := st.BuildReport(ctx, RecentLimit)
	if err != nil {
		return fail(formatter, ErrCodeStorage, WrapExitError(ExitCommandError, "failed to build report", err))
	}
	if formatter.JSON() {
		return formatter.Success(report)
	}
	return writeReport(formatter.Writer, report)
}
