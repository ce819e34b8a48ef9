package entities

import (
	"errors"
	"fmt"
)

// Process exit codes. Install failures reuse the package manager's own
// exit code when it is known, otherwise ExitCodeFailure.
const (
	ExitCodeSuccess           = 0
	ExitCodeFailure           = 1
	ExitCodeUsage             = 2
	ExitCodeFetch             = 3
	ExitCodeMissingDependency = 4
	ExitCodeTempFile          = 5
)

// ExitError is an error carrying the process exit code it should map to.
type ExitError struct {
	code int
	err  error
}

// NewExitError wraps err with an explicit exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{code: code, err: err}
}

// NewUsageError creates an error for bad or missing arguments (exit 2).
func NewUsageError(format string, args ...any) *ExitError {
	return NewExitError(ExitCodeUsage, fmt.Errorf(format, args...))
}

// NewFetchError creates an error for download or content failures (exit 3).
func NewFetchError(format string, args ...any) *ExitError {
	return NewExitError(ExitCodeFetch, fmt.Errorf(format, args...))
}

// NewDependencyError creates an error for a missing external tool (exit 4).
func NewDependencyError(format string, args ...any) *ExitError {
	return NewExitError(ExitCodeMissingDependency, fmt.Errorf(format, args...))
}

// NewTempFileError creates an error for temporary file failures (exit 5).
func NewTempFileError(format string, args ...any) *ExitError {
	return NewExitError(ExitCodeTempFile, fmt.Errorf(format, args...))
}

func (e *ExitError) Error() string { return e.err.Error() }

func (e *ExitError) Unwrap() error { return e.err }

// Code returns the process exit code for this error.
func (e *ExitError) Code() int { return e.code }

// ExitCodeFor maps an error to the process exit code. Errors that do not
// carry an explicit code map to ExitCodeFailure.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}
	return ExitCodeFailure
}
