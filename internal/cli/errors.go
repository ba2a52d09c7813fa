package cli

import (
	"errors"

	"github.com/roach88/ridelog/internal/ride"
)

// fail reports exitErr through the formatter in JSON mode and returns it.
// In text mode the caller's main prints the error to stderr.
func fail(f *OutputFormatter, code string, exitErr *ExitError) error {
	if f.JSON() {
		_ = f.Error(code, exitErr.Error(), nil)
	}
	return exitErr
}

// failMissingInput maps a stdin read result to the missing-input exit.
func failMissingInput(f *OutputFormatter, err error) error {
	if errors.Is(err, ride.ErrMissingInput) {
		return fail(f, ErrCodeMissingInput, WrapExitError(ExitMissingInput, "no input on stdin", err))
	}
	return fail(f, ErrCodeGeneric, WrapExitError(ExitCommandError, "failed to read stdin", err))
}

// failMalformed maps a parse failure to its exit.
func failMalformed(f *OutputFormatter, err error) error {
	if errors.Is(err, ride.ErrMissingInput) {
		return failMissingInput(f, err)
	}
	return fail(f, ErrCodeMalformedInput, WrapExitError(ExitCommandError, "malformed input", err))
}
