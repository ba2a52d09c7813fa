// Package poster delivers a status update through an external command-line
// client. Authentication and transport are the client's business; this
// package only builds the argument list and reports how the client exited.
package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// StatusPlaceholder is replaced by the status text in each client argument.
const StatusPlaceholder = "{status}"

// DefaultCommand is the posting client invoked when none is configured.
const DefaultCommand = "oysttyer"

// DefaultArgs runs the client non-interactively over TLS.
var DefaultArgs = []string{"-silent", "-status=" + StatusPlaceholder, "-ssl"}

// Poster publishes a status update.
type Poster interface {
	PostStatus(ctx context.Context, text string) error
}

// ExitStatusError reports a client that ran but exited non-zero.
type ExitStatusError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// CommandPoster runs an external client once per status.
//
// Arguments are passed directly to the process (no shell), so the status
// text needs no quoting or escaping.
type CommandPoster struct {
	Command string
	Args    []string // StatusPlaceholder is substituted in every element
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewCommandPoster creates a poster for command. Empty command or args fall
// back to DefaultCommand and DefaultArgs.
func NewCommandPoster(command string, args []string, stdout, stderr io.Writer) *CommandPoster {
	if command == "" {
		command = DefaultCommand
	}
	if len(args) == 0 {
		args = DefaultArgs
	}
	return &CommandPoster{Command: command, Args: args, Stdout: stdout, Stderr: stderr}
}

// Argv returns the client arguments for text.
func (p *CommandPoster) Argv(text string) []string {
	argv := make([]string, len(p.Args))
	for i, arg := range p.Args {
		argv[i] = strings.ReplaceAll(arg, StatusPlaceholder, text)
	}
	return argv
}

// PostStatus runs the client and waits for it to exit.
func (p *CommandPoster) PostStatus(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, p.Command, p.Argv(text)...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return &ExitStatusError{Command: p.Command, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("run %s: %w", p.Command, err)
	}
	return nil
}
