// Package toolexec runs short-lived external command-line tools and captures
// their output.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Func runs name with args and returns captured stdout and stderr.
type Func func(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)

type ExecError struct {
	Cmd      string
	Args     []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ExecError) Error() string {
	cmdline := strings.TrimSpace(e.Cmd + " " + strings.Join(e.Args, " "))
	if e.ExitCode != 0 {
		return fmt.Sprintf("toolexec: command failed (exit %d): %s", e.ExitCode, cmdline)
	}
	if e.Cause != nil {
		return fmt.Sprintf("toolexec: command failed: %s: %v", cmdline, e.Cause)
	}
	return fmt.Sprintf("toolexec: command failed: %s", cmdline)
}

func (e *ExecError) Unwrap() error { return e.Cause }

// waitDelay bounds how long Wait blocks on output pipes after the process
// is killed by a context deadline.
const waitDelay = time.Second

// Run spawns name, waits for it and collects its output. A non-zero exit,
// spawn failure or context expiry is reported as *ExecError.
func Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		ee := &ExecError{
			Cmd:    name,
			Args:   args,
			Stderr: stderr.String(),
			Cause:  err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ee.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			ee.Cause = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return stdout.Bytes(), stderr.Bytes(), ee
	}

	return stdout.Bytes(), stderr.Bytes(), nil
}

// WithTimeout derives a context bounded by d. A zero d means no bound.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
