package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/ridelog/internal/ride"
)

// readFirstLine returns the first line of r without its terminator.
// A blank or absent line is ride.ErrMissingInput.
func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return "", ride.ErrMissingInput
	}
	return line, nil
}

// readAllLines returns every line of r without terminators. Zero lines is
// ride.ErrMissingInput; blank lines in between are kept.
func readAllLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, ride.ErrMissingInput
	}
	return lines, nil
}
