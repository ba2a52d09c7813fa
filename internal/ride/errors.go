package ride

import (
	"errors"
	"fmt"
)

// ErrMissingInput reports that stdin carried nothing to work on.
var ErrMissingInput = errors.New("missing input")

// MalformedInputError describes input that cannot be read positionally.
type MalformedInputError struct {
	// Field names the offending field or position (e.g. "meanSpeed", "pairs").
	Field string

	// Value is the raw text that failed, if any.
	Value string

	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("malformed input: %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("malformed input: %s: %s", e.Field, e.Reason)
}

// IsMalformedInput reports whether err is (or wraps) a MalformedInputError.
func IsMalformedInput(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}
