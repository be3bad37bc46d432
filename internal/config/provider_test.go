// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/monchin/pdm/internal/issue"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestProvider_Load_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, source, err := NewProvider().LoadWithSource(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithSource() returned error: %v", err)
	}
	if source != "" {
		t.Errorf("source = %q, want empty", source)
	}
	if cfg.Venv.Backend != BackendVirtualenv || !cfg.Venv.InProject {
		t.Errorf("expected defaults, got %+v", cfg.Venv)
	}
}

func TestProvider_Load_MergesFileOverDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
venv: {
	backend: "uv"
	in_project: false
}
`)

	cfg, source, err := NewProvider().LoadWithSource(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithSource() returned error: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Venv.Backend != BackendUv {
		t.Errorf("backend = %s, want uv", cfg.Venv.Backend)
	}
	if cfg.Venv.InProject {
		t.Error("in_project should be false")
	}
	if cfg.Venv.Prompt != DefaultPrompt {
		t.Errorf("prompt = %q, want default", cfg.Venv.Prompt)
	}
	if cfg.Uv.Command != "uv" {
		t.Errorf("uv.command = %q, want default", cfg.Uv.Command)
	}
}

func TestProvider_Load_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `venv: backend: "uv"`)

	t.Setenv("PDM_VENV_BACKEND", "conda")
	t.Setenv("PDM_VENV_WITH_PIP", "true")
	t.Setenv("PDM_UI_VERBOSE", "1")

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Venv.Backend != BackendConda {
		t.Errorf("backend = %s, want conda from env", cfg.Venv.Backend)
	}
	if !cfg.Venv.WithPip {
		t.Error("with_pip should be true from env")
	}
	if !cfg.UI.Verbose {
		t.Error("ui.verbose should be true from env")
	}
}

func TestProvider_Load_InvalidEnvOverride(t *testing.T) {
	t.Setenv("PDM_VENV_BACKEND", "pyenv")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for invalid backend override")
	}
	if !errors.Is(err, ErrInvalidBackendName) {
		t.Errorf("expected ErrInvalidBackendName, got: %v", err)
	}
}

func TestProvider_Load_InvalidCUE(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `venv: backend: 123`)

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected Load() to fail for invalid config")
	}

	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Fatalf("expected *issue.ActionableError, got %T", err)
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain operation, got: %s", errStr)
	}
	if !strings.Contains(errStr, path) {
		t.Errorf("error should contain resource path, got: %s", errStr)
	}
}

func TestProvider_Load_CustomPathNotFound(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProvider_Load_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
