package tournament

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedOutput means the agent's stdout did not end with two
	// lines carrying integer win counts.
	ErrMalformedOutput = errors.New("malformed agent output")

	// ErrLaunch means the agent binary could not be started at all.
	ErrLaunch = errors.New("failed to launch agent")
)

// MatchError reports which pairing failed and what the agent printed.
type MatchError struct {
	Pairing   Pairing
	Execution Execution
	Err       error
}

func (e *MatchError) Error() string {
	msg := fmt.Sprintf("match %d (%q vs %q): %v",
		e.Pairing.Number, e.Pairing.Black.Name, e.Pairing.White.Name, e.Err)
	if e.Execution.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit code %d)", e.Execution.ExitCode)
	}
	if tail := e.Execution.StderrTail(3); tail != "" {
		msg += ": " + tail
	}
	return msg
}

func (e *MatchError) Unwrap() error {
	return e.Err
}
