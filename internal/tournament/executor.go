package tournament

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 2 * time.Second

// Executor runs the agent binary for a single pairing.
type Executor interface {
	Execute(ctx context.Context, binary string, args []string) (Execution, error)
}

// Execution is what one agent invocation left behind.
type Execution struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// StderrTail returns the last n non-empty stderr lines joined by "; ".
func (e Execution) StderrTail(n int) string {
	var lines []string
	for line := range strings.SplitSeq(e.Stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "; ")
}

// CommandExecutor runs the agent as a subprocess and waits for it to exit.
// A non-zero exit status is recorded but not treated as an error: only the
// captured stdout decides whether the pairing produced a result.
type CommandExecutor struct {
	// Dir is the working directory for the agent; empty means the current one.
	Dir string
}

// Execute implements Executor.
func (x CommandExecutor) Execute(ctx context.Context, binary string, args []string) (Execution, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = x.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children of the agent can keep the output pipes open after it is killed.
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	result := Execution{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// Reported through ExitCode only.
	default:
		return result, fmt.Errorf("%w %s: %w", ErrLaunch, binary, err)
	}

	return result, nil
}
