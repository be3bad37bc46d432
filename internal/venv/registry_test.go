// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"slices"
	"testing"

	"github.com/monchin/pdm/internal/config"
)

func TestNames(t *testing.T) {
	t.Parallel()

	want := []config.BackendName{config.BackendConda, config.BackendUv, config.BackendVenv, config.BackendVirtualenv}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		b, err := New(name, newFakeProject(t), Options{})
		if err != nil {
			t.Fatalf("New(%s) error: %v", name, err)
		}
		if b.Name() != name {
			t.Errorf("New(%s).Name() = %s", name, b.Name())
		}
		if b.Runner() == nil {
			t.Errorf("New(%s) has no runner", name)
		}
	}

	if _, err := New("pyenv", newFakeProject(t), Options{}); !errors.Is(err, config.ErrInvalidBackendName) {
		t.Errorf("New(pyenv) error = %v, want ErrInvalidBackendName", err)
	}
}
