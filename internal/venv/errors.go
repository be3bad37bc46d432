// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is the sentinel error wrapped by UsageError.
	ErrUsage = errors.New("invalid usage")
	// ErrInterpreterResolution is the sentinel error wrapped by InterpreterResolutionError.
	ErrInterpreterResolution = errors.New("can't resolve python interpreter")
	// ErrLocationConflict is the sentinel error wrapped by LocationConflictError.
	ErrLocationConflict = errors.New("location is not empty")
	// ErrCreation is the sentinel error wrapped by CreationError.
	// LocationConflictError matches it too.
	ErrCreation = errors.New("virtualenv creation failed")
)

type (
	// UsageError reports contradictory or malformed caller input.
	// No side effect has happened when it is returned.
	UsageError struct {
		Reason string
	}

	// InterpreterResolutionError is returned when no interpreter satisfies
	// the request.
	InterpreterResolutionError struct {
		// Spec is the requested interpreter, "" when none was given.
		Spec string
	}

	// LocationConflictError is returned when the target location is
	// occupied and force was not requested.
	LocationConflictError struct {
		Location string
	}

	// CreationError wraps a failed tool run or a failed filesystem step.
	CreationError struct {
		// Command is the argv of the failed tool run, nil for filesystem failures.
		Command []string
		// Path is the filesystem path involved, if any.
		Path string
		// Stderr is the tail of the tool's standard error.
		Stderr string
		// Err is the underlying cause.
		Err error
	}
)

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Reason }

// Unwrap returns ErrUsage for errors.Is() compatibility.
func (e *UsageError) Unwrap() error { return ErrUsage }

// Error implements the error interface.
func (e *InterpreterResolutionError) Error() string {
	if e.Spec == "" {
		return ErrInterpreterResolution.Error()
	}
	return fmt.Sprintf("%s %s", ErrInterpreterResolution, e.Spec)
}

// Unwrap returns ErrInterpreterResolution for errors.Is() compatibility.
func (e *InterpreterResolutionError) Unwrap() error { return ErrInterpreterResolution }

// Error implements the error interface.
func (e *LocationConflictError) Error() string {
	return fmt.Sprintf("the location %s is not empty, add --force to overwrite it", e.Location)
}

// Unwrap returns both ErrLocationConflict and ErrCreation.
func (e *LocationConflictError) Unwrap() []error {
	return []error{ErrLocationConflict, ErrCreation}
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	switch {
	case len(e.Command) > 0:
		return fmt.Sprintf("%s: %s: %v", ErrCreation, quoteCommand(e.Command), e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %v", ErrCreation, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", ErrCreation, e.Err)
	}
}

// Unwrap returns ErrCreation and the cause.
func (e *CreationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCreation}
	}
	return []error{ErrCreation, e.Err}
}
