package md2html

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrMissingInput = errors.New("input markdown path is required")

	// Converter errors.
	ErrConverterNotFound = errors.New("converter not found in PATH")
	ErrConverterStart    = errors.New("failed to start converter")
	ErrConverterFailed   = errors.New("converter failed")

	// Filesystem errors.
	ErrOutputDirectory = errors.New("failed to create output directory")
)

// ConverterExitError reports a converter process that exited with a non-zero
// status. Code is the child's status, or FallbackExitCode when the process
// did not exit normally.
type ConverterExitError struct {
	Executable string
	Code       int
}

func (e *ConverterExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Executable, e.Code)
}

// Is lets errors.Is(err, ErrConverterFailed) match any exit error.
func (e *ConverterExitError) Is(target error) bool {
	return target == ErrConverterFailed
}
