// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/issue"
	"github.com/monchin/pdm/internal/venv"

	"github.com/charmbracelet/log"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. When the CLI layer receives a ServiceError, it renders the
// styled error message (if present) before formatting the underlying error.
// Always create via newServiceError, which rejects a nil Err.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyVenvError attaches the catalog entry matching a venv failure.
// A location conflict is also a creation error, so it is checked first.
func classifyVenvError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	switch {
	case errors.Is(err, venv.ErrUsage):
		return newServiceError(err, issue.InvalidUsageId, "")
	case errors.Is(err, config.ErrInvalidBackendName):
		return newServiceError(err, issue.UnknownBackendId, "")
	case errors.Is(err, venv.ErrInterpreterResolution):
		return newServiceError(err, issue.InterpreterNotFoundId, "")
	case errors.Is(err, venv.ErrLocationConflict):
		var conflict *venv.LocationConflictError
		msg := ""
		if errors.As(err, &conflict) {
			msg = WarningStyle.Render("Occupied: ") + CmdStyle.Render(conflict.Location) + "\n"
		}
		return newServiceError(err, issue.LocationOccupiedId, msg)
	case errors.Is(err, venv.ErrCreation):
		return newServiceError(err, issue.CreationFailedId, "")
	default:
		return newServiceError(err, 0, "")
	}
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(scheme config.ColorScheme) string {
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// renderServiceError renders a ServiceError in the CLI layer.
// It prints any styled message first, then the optional issue help section.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, style string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(style)
		if renderErr != nil {
			log.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}
