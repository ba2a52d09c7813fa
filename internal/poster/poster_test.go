package poster

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatus = "Today's #cycling stats: 3.06 km in 0:12:32 (mean: 15.27 km/hr, max: 23.19 km/hr); cadence: 63/min. Grand total: 97.08 km in 6:11:53"

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestNewCommandPoster_Defaults(t *testing.T) {
	p := NewCommandPoster("", nil, nil, nil)

	assert.Equal(t, "oysttyer", p.Command)
	assert.Equal(t, []string{"-silent", "-status=" + sampleStatus, "-ssl"}, p.Argv(sampleStatus))
}

func TestArgv_NoShellQuoting(t *testing.T) {
	p := NewCommandPoster("client", []string{"--text", StatusPlaceholder}, nil, nil)

	text := `it's "quoted" $HOME; rm -rf /`
	assert.Equal(t, []string{"--text", text}, p.Argv(text))
}

func TestPostStatus_PassesStatusAsSingleArgument(t *testing.T) {
	requireShell(t)
	out := &bytes.Buffer{}
	// $# must be 1 and $1 the untouched status
	p := NewCommandPoster("sh", []string{"-c", `printf '%s|%s' "$#" "$1"`, "sh", StatusPlaceholder}, out, out)

	require.NoError(t, p.PostStatus(context.Background(), sampleStatus))
	assert.Equal(t, "1|"+sampleStatus, out.String())
}

func TestPostStatus_NonZeroExit(t *testing.T) {
	requireShell(t)
	p := NewCommandPoster("sh", []string{"-c", "exit 3"}, nil, nil)

	err := p.PostStatus(context.Background(), sampleStatus)
	var exitErr *ExitStatusError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "sh exited with status 3", exitErr.Error())
}

func TestPostStatus_MissingClient(t *testing.T) {
	p := NewCommandPoster("ridelog-no-such-client", nil, nil, nil)

	err := p.PostStatus(context.Background(), sampleStatus)
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))

	var exitErr *ExitStatusError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.PostStatus(context.Background(), "one"))
	require.NoError(t, r.PostStatus(context.Background(), "two"))
	assert.Equal(t, []string{"one", "two"}, r.Posts())

	boom := errors.New("boom")
	r.Err = boom
	assert.ErrorIs(t, r.PostStatus(context.Background(), "three"), boom)
	assert.Len(t, r.Posts(), 3)
}
