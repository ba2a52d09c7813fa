package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/roach88/ridelog/internal/poster"
	"github.com/roach88/ridelog/internal/testutil"
)

var sampleSummary = strings.Join([]string{
	"distance: 3.06 km",
	"time: 0:12:32",
	"meanspeed: 15.27 km/hr",
	"maxspeed: 23.19 km/hr",
	"cadence: 63/min",
	"ts_dist: 97.08 km",
	"ts_time: 6:11:53",
}, "\n") + "\n"

const sampleStatus = "Today's #cycling stats: 3.06 km in 0:12:32 (mean: 15.27 km/hr, max: 23.19 km/hr); cadence: 63/min. Grand total: 97.08 km in 6:11:53"

// testDB returns a database path inside a fresh temp dir.
func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "trips.sqlite3")
}

func newTestRootOptions(dbPath string) *RootOptions {
	return &RootOptions{Format: "text", Database: dbPath, Logger: zap.NewNop()}
}

// runRecord executes the record command once and returns stdout and stderr.
func runRecord(t *testing.T, root *RootOptions, clock *testutil.StepClock, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	opts := &RecordOptions{RootOptions: root}
	if clock != nil {
		opts.Clock = clock
	}
	cmd := newRecordCommand(opts)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

type announceHarness struct {
	root    *RootOptions
	poster  *poster.Recorder
	clock   *testutil.StepClock
	sleeper *testutil.RecordingSleeper
}

func newAnnounceHarness(t *testing.T) *announceHarness {
	t.Helper()
	clock := testutil.NewStepClock(testutil.DefaultStart)
	clock.Step = 0
	return &announceHarness{
		root:    newTestRootOptions(testDB(t)),
		poster:  &poster.Recorder{},
		clock:   clock,
		sleeper: &testutil.RecordingSleeper{Clock: clock},
	}
}

func (h *announceHarness) run(stdin string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := newAnnounceCommand(&AnnounceOptions{
		RootOptions: h.root,
		Poster:      h.poster,
		Clock:       h.clock,
		Sleeper:     h.sleeper,
	})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
