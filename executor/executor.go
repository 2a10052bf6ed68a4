package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Executor runs a shell command string and reports its outcome.
//
// Run must never panic on a spawn failure; an implementation failure
// (the command could not even start) is reported as a non-zero exit
// code with a descriptive message, either in shortError or in a non-nil
// err. Shell uses shortError and a nil err, exactly like any other
// command failure.
type Executor interface {

	// Run executes command, blocking until it exits or timeout elapses
	// (a zero timeout means unbounded, the engine's default). exitCode
	// == 0 means success. shortError is a
	// stderr-like string, possibly empty, which the caller truncates
	// to 512 characters before persisting. A non-nil err indicates the
	// command could not be run at all (for example, the shell itself
	// failed to start); exitCode is still non-zero in that case.
	Run(ctx context.Context, command string, timeout time.Duration) (exitCode int, shortError string, err error)
}

// Shell runs commands through "sh -c <command>".
type Shell struct{}

// NewShell returns a Shell executor.
func NewShell() Shell {
	return Shell{}
}

// Run implements Executor.
func (Shell) Run(ctx context.Context, command string, timeout time.Duration) (int, string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return 0, "", nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == 0 {
			code = 1
		}
		return code, stderr.String(), nil
	}

	// The process never ran at all (bad shell, permissions, context
	// deadline...). Synthesize a failing exit code rather than letting
	// the caller mistake this for success.
	return 1, "exec: " + err.Error(), nil
}
