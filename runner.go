package md2html

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
// Run blocks until the command exits and returns its exit status. A non-nil
// error means the command could not be run at all.
type CommandRunner interface {
	Run(name string, args ...string) (exitCode int, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// The child shares the given streams directly; nil streams fall back to the
// process's own stdin, stdout and stderr.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner attached to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name with args, waits for it to exit and returns its exit status.
// A process killed by a signal reports FallbackExitCode. The error wraps
// ErrConverterStart when the process could not be started.
func (r *ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- args are built by BuildArgs, not a shell string
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			return FallbackExitCode, nil
		}
		return code, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrConverterStart, err)
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
