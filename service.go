package md2html

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Compile-time interface implementation check.
var _ CommandRunner = (*ExecRunner)(nil)

// Service orchestrates the markdown-to-HTML pipeline:
// validate → locate converter → resolve paths → create output directory →
// build arguments → invoke converter.
//
// Each stage runs at most once per Convert call and nothing is retried.
type Service struct {
	executable string
	runner     CommandRunner
	lookPath   LookPathFunc
	mkdirAll   DirCreator
	logger     *slog.Logger
}

// New creates a Service that runs Pandoc from PATH with inherited streams.
// Use options to customize behavior (e.g., WithRunner in tests).
func New(opts ...Option) *Service {
	s := &Service{
		executable: DefaultExecutable,
		runner:     NewExecRunner(),
		lookPath:   exec.LookPath,
		mkdirAll:   fileutil.EnsureDir,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Executable returns the configured converter name or path.
func (s *Service) Executable() string {
	return s.executable
}

// Convert runs the pipeline for opts and blocks until the converter exits.
//
// Errors:
//   - ErrMissingInput: opts.Input is empty; nothing else happened
//   - ErrConverterNotFound: the converter is not on PATH; no filesystem changes
//   - ErrOutputDirectory: the output directory could not be created
//   - ErrConverterStart: the converter could not be started
//   - *ConverterExitError (errors.Is ErrConverterFailed): non-zero exit status
//
// A directory created before a later failure is left in place.
func (s *Service) Convert(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	executable, err := s.locate()
	if err != nil {
		return nil, err
	}

	paths := ResolvePaths(opts)
	s.logger.Debug("resolved paths", "input", paths.Input, "output", paths.Output, "dir", paths.OutputDir)

	if err := s.mkdirAll(paths.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %s: %v%s", ErrOutputDirectory, paths.OutputDir, err, hints.ForOutputDirectory())
	}

	inv := Invocation{Executable: executable, Args: BuildArgs(opts, paths)}
	s.logger.Debug("invoking converter", "executable", inv.Executable, "args", inv.Args)

	code, err := s.runner.Run(inv.Executable, inv.Args...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("converter exited", "status", code)

	if code != 0 {
		return nil, &ConverterExitError{Executable: s.executable, Code: code}
	}

	return &Result{Paths: paths, Invocation: inv}, nil
}

// locate resolves the converter executable through the platform search path.
func (s *Service) locate() (string, error) {
	path, err := s.lookPath(s.executable)
	if err != nil {
		s.logger.Debug("converter lookup failed", "executable", s.executable, "error", err)
		return "", fmt.Errorf("%w: %s%s", ErrConverterNotFound, s.executable, hints.ForConverterNotFound())
	}
	s.logger.Debug("converter located", "path", path)
	return path, nil
}
