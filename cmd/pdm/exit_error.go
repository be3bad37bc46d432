// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/venv"
	"github.com/monchin/pdm/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + e.Code.String()
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error to the process exit code. A non-nil error never
// exits 0, and an ExitError code outside 0-255 becomes ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code.IsSuccess() || exitErr.Code.Validate() != nil {
			return types.ExitFailure
		}
		return exitErr.Code
	}
	if errors.Is(err, venv.ErrUsage) || errors.Is(err, config.ErrInvalidBackendName) {
		return types.ExitUsage
	}
	return types.ExitFailure
}
