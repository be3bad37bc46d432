// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"

	"github.com/monchin/pdm/internal/config"
)

// VenvBackend runs the target interpreter's built-in venv module.
type VenvBackend struct {
	base
}

// PipArgs returns --without-pip when withPip is false.
func (b *VenvBackend) PipArgs(withPip bool) []string {
	if withPip {
		return nil
	}
	return []string{"--without-pip"}
}

// Command returns "<exe> -m venv <location> [--prompt=P] <args>".
func (b *VenvBackend) Command(ctx context.Context, location string, args []string, prompt string) ([]string, error) {
	interp, err := b.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	argv := []string{interp.Executable, "-m", "venv", location}
	argv = append(argv, promptArgs(prompt)...)
	return append(argv, args...), nil
}

// PerformCreate runs python -m venv.
func (b *VenvBackend) PerformCreate(ctx context.Context, location string, args []string, prompt string) error {
	argv, err := b.Command(ctx, location, args, prompt)
	return b.run(ctx, argv, err)
}

func newVenvBackend(project Project, opts Options) (Backend, error) {
	return &VenvBackend{base: newBase(config.BackendVenv, project, opts)}, nil
}
