// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"

	"github.com/monchin/pdm/internal/config"
)

// VirtualenvBackend runs "<launcher> -m virtualenv". The launcher is the
// interpreter that has virtualenv installed; -p points at the target.
type VirtualenvBackend struct {
	base
	launcher []string
}

// PipArgs returns the flags that skip the seed packages when withPip is false.
func (b *VirtualenvBackend) PipArgs(withPip bool) []string {
	if withPip {
		return nil
	}
	return []string{"--no-pip", "--no-setuptools", "--no-wheel"}
}

// Command returns "<launcher> -m virtualenv <location> -p <exe> [--prompt=P] <args>".
func (b *VirtualenvBackend) Command(ctx context.Context, location string, args []string, prompt string) ([]string, error) {
	interp, err := b.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	argv := append([]string{}, b.launcher...)
	argv = append(argv, "-m", "virtualenv", location, "-p", interp.Executable)
	argv = append(argv, promptArgs(prompt)...)
	return append(argv, args...), nil
}

// PerformCreate runs virtualenv.
func (b *VirtualenvBackend) PerformCreate(ctx context.Context, location string, args []string, prompt string) error {
	argv, err := b.Command(ctx, location, args, prompt)
	return b.run(ctx, argv, err)
}

func newVirtualenvBackend(project Project, opts Options) (Backend, error) {
	launcher, err := toolArgv(opts.Config.Venv.Launcher, "python3")
	if err != nil {
		return nil, err
	}
	return &VirtualenvBackend{base: newBase(config.BackendVirtualenv, project, opts), launcher: launcher}, nil
}
