package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Success(map[string]int{"total": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"total": float64(3)}, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeDuplicateRide, "ride already recorded", map[string]int{"meters": 3064}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E005", resp.Error.Code)
	assert.Equal(t, "ride already recorded", resp.Error.Message)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_JSON(t *testing.T) {
	assert.True(t, (&OutputFormatter{Format: "json"}).JSON())
	assert.False(t, (&OutputFormatter{Format: "text"}).JSON())
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	formatter.VerboseLog("paused %s before posting", "3s")

	assert.Empty(t, out.String())
	assert.Equal(t, "paused 3s before posting\n", errOut.String())

	formatter.Verbose = false
	formatter.VerboseLog("hidden")
	assert.NotContains(t, errOut.String(), "hidden")
}

func TestGetExitCode(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitMissingInput, GetExitCode(&ExitError{Code: ExitMissingInput, Message: "no input on stdin"}))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "failed to record ride", cause)))
	assert.Equal(t, 7, GetExitCode(fmt.Errorf("outer: %w", &ExitError{Code: 7, Message: "child failed"})))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("unknown flag: --loud")))
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	err := WrapExitError(ExitCommandError, "failed to record ride", cause)

	assert.Equal(t, "failed to record ride: UNIQUE constraint failed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no input on stdin", (&ExitError{Code: ExitMissingInput, Message: "no input on stdin"}).Error())
}
