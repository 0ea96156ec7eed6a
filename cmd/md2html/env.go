package main

import (
	"io"
	"log/slog"
	"os"
	"os/exec"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Environment holds injectable dependencies for testability.
// Includes I/O streams, the converter runner and filesystem access.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	Runner   md2html.CommandRunner
	LookPath md2html.LookPathFunc
	MkdirAll md2html.DirCreator

	// CommandOutput runs a command and captures its stdout (doctor only).
	CommandOutput func(name string, args ...string) ([]byte, error)
	// Getwd returns the directory conversions write into by default.
	Getwd func() (string, error)
}

// DefaultEnv returns the production environment: real streams, Pandoc from
// PATH with inherited stdio, real filesystem.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   md2html.NewExecRunner(),
		LookPath: exec.LookPath,
		MkdirAll: fileutil.EnsureDir,
		CommandOutput: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output() // #nosec G204 -- fixed diagnostic arguments
		},
		Getwd: os.Getwd,
	}
}

// newLogger returns a text logger on w at debug level when verbose,
// and a logger that discards everything otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
