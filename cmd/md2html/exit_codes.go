package main

import (
	"errors"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Exit codes for md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage. A failing
// converter's own status is passed through unchanged.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Converter not found, filesystem fault, unexpected error
	ExitUsage   = 2 // Missing --in, invalid flags or config
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter ran and failed: propagate its status
	var exitErr *md2html.ConverterExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, md2html.ErrMissingInput) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrMissingFlagValue) ||
		errors.Is(err, ErrUnexpectedArgument) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidLang) {
		return ExitUsage
	}

	return ExitGeneral
}
