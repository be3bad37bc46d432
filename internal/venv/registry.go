// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/monchin/pdm/internal/config"

	"mvdan.cc/sh/v3/shell"
)

type (
	// Options configures a backend built by New.
	Options struct {
		// Spec is the explicit interpreter spec, "" to let the project decide.
		Spec string
		// Config supplies tool commands; nil means config.DefaultConfig().
		Config *config.Config
		// Runner spawns the tool; nil means NewRunner().
		Runner *Runner
	}

	factory func(project Project, opts Options) (Backend, error)
)

var backends = map[config.BackendName]factory{
	config.BackendVirtualenv: newVirtualenvBackend,
	config.BackendVenv:       newVenvBackend,
	config.BackendConda:      newCondaBackend,
	config.BackendUv:         newUvBackend,
}

// New builds the named backend for project.
func New(name config.BackendName, project Project, opts Options) (Backend, error) {
	newBackend, ok := backends[name]
	if !ok {
		return nil, &config.InvalidBackendNameError{Value: name}
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	return newBackend(project, opts)
}

// Names returns the supported backend names in sorted order.
func Names() []config.BackendName {
	return slices.Sorted(maps.Keys(backends))
}

// toolArgv splits a configured command line such as "python3 -m uv" into
// argv, expanding environment variables. An empty command yields fallback.
func toolArgv(command config.ToolCommand, fallback string) ([]string, error) {
	if strings.TrimSpace(command.String()) == "" {
		return []string{fallback}, nil
	}
	argv, err := shell.Fields(command.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("parse tool command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return []string{fallback}, nil
	}
	return argv, nil
}
