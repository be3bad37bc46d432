// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"strings"

	"github.com/monchin/pdm/internal/config"
)

// CondaBackend runs "conda create". Conda installs its own Python, so an
// explicit spec is passed through as a version and never resolved locally.
type CondaBackend struct {
	base
	conda []string
}

// PipArgs returns the pip package when withPip is true.
func (b *CondaBackend) PipArgs(withPip bool) []string {
	if withPip {
		return []string{"pip"}
	}
	return nil
}

// Ident returns the explicit spec verbatim, or the resolved identifier.
func (b *CondaBackend) Ident(ctx context.Context) (string, error) {
	if spec := b.resolver.Spec(); spec != "" {
		return spec, nil
	}
	return b.base.Ident(ctx)
}

// ValidateArgs rejects a python= package; the backend supplies its own.
func (b *CondaBackend) ValidateArgs(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "python=") {
			return &UsageError{Reason: "python version specifier is not allowed in conda create arguments: " + arg}
		}
	}
	return nil
}

// Command returns "<conda> create --yes --prefix <location> python=<ver> <args>".
// Conda has no prompt option; the prompt is ignored.
func (b *CondaBackend) Command(ctx context.Context, location string, args []string, _ string) ([]string, error) {
	if err := b.ValidateArgs(args); err != nil {
		return nil, err
	}
	version := b.resolver.Spec()
	if version == "" {
		interp, err := b.resolver.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		version = interp.MajorMinor()
	}
	argv := append([]string{}, b.conda...)
	argv = append(argv, "create", "--yes", "--prefix", location, "python="+version)
	return append(argv, args...), nil
}

// PerformCreate runs conda create.
func (b *CondaBackend) PerformCreate(ctx context.Context, location string, args []string, prompt string) error {
	argv, err := b.Command(ctx, location, args, prompt)
	return b.run(ctx, argv, err)
}

func newCondaBackend(project Project, opts Options) (Backend, error) {
	conda, err := toolArgv(opts.Config.Conda.Command, "conda")
	if err != nil {
		return nil, err
	}
	return &CondaBackend{base: newBase(config.BackendConda, project, opts), conda: conda}, nil
}
