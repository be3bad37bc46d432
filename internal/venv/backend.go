// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"iter"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/python"
)

type (
	// Project is what backends need to know about the project they serve.
	Project interface {
		// Root is the absolute project root.
		Root() string
		// VenvRoot is the absolute directory holding named environments.
		VenvRoot() string
		// VenvPrefix is prepended to generated environment names.
		VenvPrefix() string
		// RequiresPython is the declared interpreter constraint.
		RequiresPython() python.SpecifierSet
		// UsePythonVersionFile reports whether .python-version is honored.
		UsePythonVersionFile() bool
		// PinnedInterpreter returns the interpreter pinned for the project.
		PinnedInterpreter(ctx context.Context) (*python.Interpreter, bool)
		// IterInterpreters yields discovery candidates for spec.
		IterInterpreters(ctx context.Context, spec string, respectVersionFile bool) iter.Seq[*python.Interpreter]
	}

	// Backend is one virtual environment creation tool bound to a project
	// and an optional interpreter spec. A Backend serves a single request.
	Backend interface {
		// Name returns the backend's registry name.
		Name() config.BackendName
		// Project returns the project the backend is bound to.
		Project() Project
		// Runner returns the process runner used for the tool.
		Runner() *Runner
		// PipArgs returns the extra arguments selecting whether pip is installed.
		PipArgs(withPip bool) []string
		// Ident returns the interpreter identity used for default names.
		Ident(ctx context.Context) (string, error)
		// Command builds the tool's argv.
		Command(ctx context.Context, location string, args []string, prompt string) ([]string, error)
		// PerformCreate runs the tool.
		PerformCreate(ctx context.Context, location string, args []string, prompt string) error
	}

	// ArgsValidator is implemented by backends that reject some caller
	// arguments. Create calls it before touching the filesystem.
	ArgsValidator interface {
		ValidateArgs(args []string) error
	}

	// base holds what every backend shares.
	base struct {
		name     config.BackendName
		project  Project
		resolver *Resolver
		runner   *Runner
	}
)

func newBase(name config.BackendName, project Project, opts Options) base {
	runner := opts.Runner
	if runner == nil {
		runner = NewRunner()
	}
	return base{
		name:     name,
		project:  project,
		resolver: NewResolver(project, opts.Spec),
		runner:   runner,
	}
}

func (b *base) Name() config.BackendName { return b.name }

func (b *base) Project() Project { return b.project }

func (b *base) Runner() *Runner { return b.runner }

// Ident returns the resolved interpreter's identifier.
func (b *base) Ident(ctx context.Context) (string, error) {
	interp, err := b.resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return interp.Identifier(), nil
}

// promptArgs returns "--prompt=<prompt>" or nothing.
func promptArgs(prompt string) []string {
	if prompt == "" {
		return nil
	}
	return []string{"--prompt=" + prompt}
}

// run executes argv unless building it failed.
func (b *base) run(ctx context.Context, argv []string, err error) error {
	if err != nil {
		return err
	}
	return b.runner.Run(ctx, argv)
}
