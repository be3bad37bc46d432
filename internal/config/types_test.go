// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestBackendName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		backend BackendName
		want    bool
	}{
		{BackendVirtualenv, true},
		{BackendVenv, true},
		{BackendConda, true},
		{BackendUv, true},
		{"", false},
		{"pyenv", false},
		{"UV", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.backend.IsValid()
			if isValid != tt.want {
				t.Errorf("BackendName(%q).IsValid() = %v, want %v", tt.backend, isValid, tt.want)
			}
			if tt.want {
				if len(errs) > 0 {
					t.Errorf("BackendName(%q).IsValid() returned unexpected errors: %v", tt.backend, errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatalf("BackendName(%q).IsValid() returned no errors, want error", tt.backend)
			}
			if !errors.Is(errs[0], ErrInvalidBackendName) {
				t.Errorf("error should wrap ErrInvalidBackendName, got: %v", errs[0])
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"garbage", false, true},
		{"AUTO", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestToolCommand_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  ToolCommand
		want bool
	}{
		{"empty means default", "", true},
		{"plain", "uv", true},
		{"with args", "python3 -m uv", true},
		{"spaces only", "   ", false},
		{"tab only", "\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.cmd.IsValid()
			if isValid != tt.want {
				t.Errorf("ToolCommand(%q).IsValid() = %v, want %v", tt.cmd, isValid, tt.want)
			}
			if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidToolCommand)) {
				t.Errorf("expected ErrInvalidToolCommand, got %v", errs)
			}
		})
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("DefaultConfig().IsValid() = false: %v", errs)
	}

	cfg := DefaultConfig()
	cfg.Venv.Backend = "pyenv"
	cfg.UI.ColorScheme = "neon"
	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected invalid config")
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got: %v", errs[0])
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %d, want 2", len(cfgErr.FieldErrors))
	}
}
