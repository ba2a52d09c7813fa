package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ridelog/internal/ride"
)

// SummaryOptions holds flags for the summary command.
type SummaryOptions struct {
	*RootOptions
	ride.SummaryOptions
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SummaryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Turn a raw ride line into labelled lines",
		Long: `Read one comma-separated ride line (the record input format) and print
it as "label: value" lines suitable for announce.

Example:
  echo 3064,752,15.27,23.19,63,97080,22313 | ridelog summary
  echo 3064,752,15.27,23.19,0,97080,22313 | ridelog summary --no-zeros | ridelog announce`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeRide(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Miles, "miles", false, "report miles and mph")
	cmd.Flags().BoolVar(&opts.NoLifetime, "no-ts", false, "omit the ts_dist and ts_time lines")
	cmd.Flags().BoolVar(&opts.NoZeros, "no-zeros", false, "omit zero-valued fields")

	return cmd
}

func summarizeRide(opts *SummaryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	line, err := readFirstLine(cmd.InOrStdin())
	if err != nil {
		return failMissingInput(formatter, err)
	}
	rec, err := ride.ParseRecordLine(line)
	if err != nil {
		return failMalformed(formatter, err)
	}

	lines := ride.FormatSummary(rec, opts.SummaryOptions)
	if formatter.JSON() {
		return formatter.Success(ride.ParsePairs(lines))
	}
	for _, l := range lines {
		fmt.Fprintln(formatter.Writer, l)
	}
	return nil
}
