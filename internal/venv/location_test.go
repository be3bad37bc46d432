// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/monchin/pdm/internal/config"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		argName  string
		venvName string
		want     string
	}{
		{"identity", "", "", "MyApp-abcdefgh-3.11"},
		{"name", "dev", "", "MyApp-abcdefgh-dev"},
		{"venv name", "", "shared", "shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newFakeProject(t)
			b, _, _ := newTestBackend(t, config.BackendVirtualenv, p, "")

			got, err := Locate(t.Context(), b, tt.argName, tt.venvName)
			if err != nil {
				t.Fatalf("Locate() error: %v", err)
			}
			if want := filepath.Join(p.venvRoot, tt.want); got != want {
				t.Errorf("Locate() = %q, want %q", got, want)
			}
			if info, err := os.Stat(p.venvRoot); err != nil || !info.IsDir() {
				t.Errorf("venv root should be created: %v", err)
			}
		})
	}
}

func TestLocate_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		argName  string
		venvName string
	}{
		{"both names", "dev", "shared"},
		{"separator", "a/b", ""},
		{"parent", "", ".."},
		{"reserved device name", "", "NUL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newFakeProject(t)
			b, _, _ := newTestBackend(t, config.BackendUv, p, "")

			if _, err := Locate(t.Context(), b, tt.argName, tt.venvName); !errors.Is(err, ErrUsage) {
				t.Errorf("Locate() error = %v, want ErrUsage", err)
			}
			if _, err := os.Stat(p.venvRoot); !os.IsNotExist(err) {
				t.Error("venv root must not be created on a usage error")
			}
		})
	}
}

func TestInProjectLocation(t *testing.T) {
	t.Parallel()

	p := newFakeProject(t)
	b, _, _ := newTestBackend(t, config.BackendVenv, p, "")
	if got, want := InProjectLocation(b), filepath.Join(p.root, ".venv"); got != want {
		t.Errorf("InProjectLocation() = %q, want %q", got, want)
	}
}
