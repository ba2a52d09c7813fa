package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/ridelog/internal/pacing"
	"github.com/roach88/ridelog/internal/poster"
	"github.com/roach88/ridelog/internal/ride"
)

// AnnounceOptions holds flags for the announce command.
type AnnounceOptions struct {
	*RootOptions
	DryRun bool

	// Poster, Clock and Sleeper override the configured client and real time
	// (for testing).
	Poster  poster.Poster
	Clock   pacing.Clock
	Sleeper pacing.Sleeper
}

// NewAnnounceCommand creates the announce command.
func NewAnnounceCommand(rootOpts *RootOptions) *cobra.Command {
	return newAnnounceCommand(&AnnounceOptions{RootOptions: rootOpts})
}

func newAnnounceCommand(opts *AnnounceOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Post a ride summary from stdin as a status update",
		Long: `Read "label: value" lines from stdin, build a status update and post
it through the configured client (default: oysttyer -silent -ssl).

Expected lines, in order:
  distance, time, meanspeed, maxspeed, [cadence], ts_dist, ts_time

The cadence clause is added only when the fifth line is labelled
"cadence". The grand total always comes from the last two lines.

Before posting, the status and its length are printed and the command
pauses for post_delay (default 3s).

Example:
  sds-data --clear | ridelog announce
  ridelog summary < ride.csv | ridelog announce --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return announceRide(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "print the status without posting it")

	return cmd
}

func announceRide(opts *AnnounceOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	lines, err := readAllLines(cmd.InOrStdin())
	if err != nil {
		return failMissingInput(formatter, err)
	}
	status, err := ride.BuildStatus(ride.ParsePairs(lines))
	if err != nil {
		return failMalformed(formatter, err)
	}

	cfg, logger, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fmt.Fprintf(cmd.OutOrStdout(), "!--tweeting[%d]: %s\n", ride.StatusLength(status), status)

	if opts.DryRun {
		logger.Info("dry run, status not posted")
		return nil
	}

	var pacerOpts []pacing.Option
	if opts.Clock != nil {
		pacerOpts = append(pacerOpts, pacing.WithClock(opts.Clock))
	}
	if opts.Sleeper != nil {
		pacerOpts = append(pacerOpts, pacing.WithSleeper(opts.Sleeper))
	}
	pacer := pacing.New(cfg.PostDelay, pacerOpts...)

	ctx := cmd.Context()
	pause, err := pacer.Wait(ctx)
	if err != nil {
		return fail(formatter, ErrCodeGeneric, WrapExitError(ExitCommandError, "interrupted before posting", err))
	}
	logger.Debug("paced before posting", zap.Duration("pause", pause))
	formatter.VerboseLog("paused %s before posting", pause)

	p := opts.Poster
	if p == nil {
		p = poster.NewCommandPoster(cfg.PostCommand, cfg.PostArgs, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	if err := p.PostStatus(ctx, status); err != nil {
		var exitErr *poster.ExitStatusError
		if errors.As(err, &exitErr) {
			return fail(formatter, ErrCodePostFailed, WrapExitError(exitErr.Code, "posting client failed", err))
		}
		return fail(formatter, ErrCodePostFailed, WrapExitError(ExitCommandError, "posting client failed", err))
	}
	logger.Info("status posted", zap.Int("length", ride.StatusLength(status)))

	return nil
}
