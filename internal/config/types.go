// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BackendVirtualenv creates environments with the virtualenv package.
	// Defined locally to avoid coupling config to internal/venv.
	BackendVirtualenv BackendName = "virtualenv"
	// BackendVenv creates environments with the interpreter's built-in venv module.
	BackendVenv BackendName = "venv"
	// BackendConda creates environments with conda.
	BackendConda BackendName = "conda"
	// BackendUv creates environments with uv.
	BackendUv BackendName = "uv"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultPrompt is the prompt template applied to new environments.
	DefaultPrompt = "{project_name}-{python_version}"
)

var (
	// ErrInvalidBackendName is returned when a BackendName value is not recognized.
	ErrInvalidBackendName = errors.New("invalid venv backend")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidToolCommand is returned when a ToolCommand value is whitespace-only.
	ErrInvalidToolCommand = errors.New("invalid tool command")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// BackendName selects the tool used to create virtual environments.
	BackendName string

	// InvalidBackendNameError is returned when a BackendName value is not recognized.
	// It wraps ErrInvalidBackendName for errors.Is() compatibility.
	InvalidBackendNameError struct {
		Value BackendName
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ToolCommand is a shell-style command line used to launch an external tool,
	// e.g. "uv" or "python3 -m uv". The zero value means "use the default".
	ToolCommand string

	// InvalidToolCommandError is returned when a ToolCommand value is
	// non-empty but whitespace-only.
	InvalidToolCommandError struct {
		Value ToolCommand
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Venv configures virtual environment creation.
		Venv VenvConfig `json:"venv" mapstructure:"venv"`
		// Python configures interpreter selection.
		Python PythonConfig `json:"python" mapstructure:"python"`
		// Uv configures the uv tool.
		Uv ToolConfig `json:"uv" mapstructure:"uv"`
		// Conda configures the conda tool.
		Conda ToolConfig `json:"conda" mapstructure:"conda"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// VenvConfig configures virtual environment creation.
	VenvConfig struct {
		// Location is the parent directory of centrally stored environments.
		// A leading "~" is expanded to the user's home directory.
		Location string `json:"location" mapstructure:"location"`
		// Backend is the default creation tool.
		Backend BackendName `json:"backend" mapstructure:"backend"`
		// InProject places unnamed environments at <project>/.venv.
		InProject bool `json:"in_project" mapstructure:"in_project"`
		// WithPip installs pip into new environments.
		WithPip bool `json:"with_pip" mapstructure:"with_pip"`
		// Prompt is the prompt template; {project_name} and {python_version} are substituted.
		Prompt string `json:"prompt" mapstructure:"prompt"`
		// Launcher is the interpreter that runs "-m virtualenv".
		Launcher ToolCommand `json:"launcher" mapstructure:"launcher"`
	}

	// PythonConfig configures interpreter selection.
	PythonConfig struct {
		// UsePythonVersion honors a .python-version file in the project root.
		UsePythonVersion bool `json:"use_python_version" mapstructure:"use_python_version"`
	}

	// ToolConfig configures how an external tool is launched.
	ToolConfig struct {
		// Command is the command line that invokes the tool.
		Command ToolCommand `json:"command" mapstructure:"command"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose streams tool output and logs executed commands
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface for InvalidBackendNameError.
func (e *InvalidBackendNameError) Error() string {
	return fmt.Sprintf("invalid venv backend %q (valid: virtualenv, venv, conda, uv)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidBackendNameError) Unwrap() error { return ErrInvalidBackendName }

// String returns the string representation of the BackendName.
func (b BackendName) String() string { return string(b) }

// IsValid returns whether the BackendName is one of the supported backends,
// and a list of validation errors if it is not.
func (b BackendName) IsValid() (bool, []error) {
	switch b {
	case BackendVirtualenv, BackendVenv, BackendConda, BackendUv:
		return true, nil
	default:
		return false, []error{&InvalidBackendNameError{Value: b}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidToolCommandError.
func (e *InvalidToolCommandError) Error() string {
	return fmt.Sprintf("invalid tool command %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidToolCommand for errors.Is() compatibility.
func (e *InvalidToolCommandError) Unwrap() error { return ErrInvalidToolCommand }

// String returns the string representation of the ToolCommand.
func (c ToolCommand) String() string { return string(c) }

// IsValid returns whether the ToolCommand is valid.
// The zero value ("") is valid (means "use the default command").
func (c ToolCommand) IsValid() (bool, []error) {
	if c == "" {
		return true, nil
	}
	if strings.TrimSpace(string(c)) == "" {
		return false, []error{&InvalidToolCommandError{Value: c}}
	}
	return true, nil
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Venv.Backend.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, cmd := range []ToolCommand{c.Venv.Launcher, c.Uv.Command, c.Conda.Command} {
		if valid, fieldErrs := cmd.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Venv: VenvConfig{
			Location:  DefaultVenvLocation(),
			Backend:   BackendVirtualenv,
			InProject: true,
			WithPip:   false,
			Prompt:    DefaultPrompt,
			Launcher:  "python3",
		},
		Python: PythonConfig{
			UsePythonVersion: false,
		},
		Uv: ToolConfig{
			Command: "uv",
		},
		Conda: ToolConfig{
			Command: "conda",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
