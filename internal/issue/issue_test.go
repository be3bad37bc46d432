// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func allIds() []Id {
	return []Id{
		InterpreterNotFoundId,
		LocationOccupiedId,
		CreationFailedId,
		ConfigLoadFailedId,
		UnknownBackendId,
		InvalidUsageId,
		ProjectLoadFailedId,
	}
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, id := range allIds() {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if InterpreterNotFoundId != 1 {
		t.Errorf("InterpreterNotFoundId = %d, want 1", InterpreterNotFoundId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{InterpreterNotFoundId, false, "No Python interpreter found"},
		{LocationOccupiedId, false, "not empty"},
		{CreationFailedId, false, "creation failed"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{UnknownBackendId, false, "Unknown venv backend"},
		{InvalidUsageId, false, "Invalid arguments"},
		{ProjectLoadFailedId, false, "pyproject.toml"},
		{Id(9999), true, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Get(%d).Id() = %d", tt.id, issue.Id())
			}
			if !strings.Contains(string(issue.mdMsg), tt.contains) {
				t.Errorf("Get(%d) markdown should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestCatalog_CoversEveryId(t *testing.T) {
	if len(issues) != len(allIds()) {
		t.Fatalf("catalog has %d issues, want %d", len(issues), len(allIds()))
	}
	for _, id := range allIds() {
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}
	rendered, err := withLinks.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	for _, want := range []string{"See also", "https://docs.example.com", "https://external.example.com"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() output missing %q:\n%s", want, rendered)
		}
	}

	noLinks := &Issue{id: Id(9998), mdMsg: "# Test Issue"}
	rendered, err = noLinks.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, id := range allIds() {
		issue := Get(id)
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}
