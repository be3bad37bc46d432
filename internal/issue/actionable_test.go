// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "create virtualenv"},
			expected: "failed to create virtualenv",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "read project",
				Resource:  "./pyproject.toml",
			},
			expected: "failed to read project: ./pyproject.toml",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "read project",
				Resource:  "./pyproject.toml",
				Cause:     errors.New("toml: expected '='"),
			},
			expected: "failed to read project: ./pyproject.toml: toml: expected '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions",
			err: &ActionableError{
				Operation:   "create virtualenv",
				Resource:    "/proj/.venv",
				Suggestions: []string{"Pass --force to overwrite", "Use --name"},
			},
			contains: []string{
				"failed to create virtualenv: /proj/.venv",
				"• Pass --force to overwrite",
				"• Use --name",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to load configuration: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "create virtualenv",
				Cause: &ActionableError{
					Operation: "run uv",
					Cause:     errors.New("exit status 2"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to run uv: exit status 2",
				"2. exit status 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/pdm/config.cue").
		WithSuggestion("Check the syntax").
		WithSuggestion("Run 'pdm config init'").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "load configuration" || ae.Resource != "/etc/pdm/config.cue" {
		t.Errorf("unexpected context: %+v", ae)
	}
	if len(ae.Suggestions) != 2 || !ae.HasSuggestions() {
		t.Errorf("Suggestions = %v, want 2", ae.Suggestions)
	}
	if !errors.Is(ae, cause) {
		t.Error("built error should wrap cause")
	}

	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	err := NewErrorContext().WithOperation("test").BuildError()
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() should return *ActionableError, got %T", err)
	}

	if err := NewErrorContext().BuildError(); err != nil {
		t.Error("BuildError() should return nil when operation missing")
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	ctx := NewErrorContext().
		WithOperation("probe interpreter").
		WithSuggestion("Check the path")

	err1 := ctx.Wrap(errors.New("error 1")).Build()
	err2 := ctx.WithSuggestion("Another").Wrap(errors.New("error 2")).Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("reused context should allow different causes")
	}
	if len(err1.Suggestions) != 1 {
		t.Errorf("earlier build should not see later suggestions, got %v", err1.Suggestions)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("original error")
	err := WrapWithContext(cause, "read project", "/proj")

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ActionableError, got %T", err)
	}
	if ae.Operation != "read project" || ae.Resource != "/proj" {
		t.Errorf("unexpected context: %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be preserved")
	}

	if WrapWithContext(nil, "test", "resource") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}
