// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"

	"github.com/monchin/pdm/internal/config"
)

// UvBackend runs "uv venv".
type UvBackend struct {
	base
	uv []string
}

// PipArgs returns --seed when withPip is true; uv installs nothing by default.
func (b *UvBackend) PipArgs(withPip bool) []string {
	if withPip {
		return []string{"--seed"}
	}
	return nil
}

// Command returns "<uv> venv -p <exe> [--prompt=P] <args> <location>".
func (b *UvBackend) Command(ctx context.Context, location string, args []string, prompt string) ([]string, error) {
	interp, err := b.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	argv := append([]string{}, b.uv...)
	argv = append(argv, "venv", "-p", interp.Executable)
	argv = append(argv, promptArgs(prompt)...)
	argv = append(argv, args...)
	return append(argv, location), nil
}

// PerformCreate runs uv venv.
func (b *UvBackend) PerformCreate(ctx context.Context, location string, args []string, prompt string) error {
	argv, err := b.Command(ctx, location, args, prompt)
	return b.run(ctx, argv, err)
}

func newUvBackend(project Project, opts Options) (Backend, error) {
	uv, err := toolArgv(opts.Config.Uv.Command, "uv")
	if err != nil {
		return nil, err
	}
	return &UvBackend{base: newBase(config.BackendUv, project, opts), uv: uv}, nil
}
