// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"

	"github.com/monchin/pdm/internal/python"
)

const (
	statePending resolveState = iota
	stateResolved
	stateFailed
)

type (
	resolveState int

	// Resolver picks the interpreter for one request and remembers the
	// outcome, success or failure, for the rest of that request.
	Resolver struct {
		project Project
		spec    string

		state  resolveState
		interp *python.Interpreter
		err    error
	}
)

// NewResolver creates a Resolver for spec, which may be empty.
func NewResolver(project Project, spec string) *Resolver {
	return &Resolver{project: project, spec: spec}
}

// Spec returns the requested interpreter spec.
func (r *Resolver) Spec() string { return r.spec }

// Resolve returns the interpreter to use:
//   - no spec and a pinned interpreter: the pin, without discovery
//   - an explicit spec: the first discovered candidate, valid or not
//   - no spec: the first valid candidate satisfying requires-python
func (r *Resolver) Resolve(ctx context.Context) (*python.Interpreter, error) {
	switch r.state {
	case stateResolved:
		return r.interp, nil
	case stateFailed:
		return nil, r.err
	}

	interp, err := r.resolve(ctx)
	if err != nil {
		r.state, r.err = stateFailed, err
		return nil, err
	}
	r.state, r.interp = stateResolved, interp
	return interp, nil
}

func (r *Resolver) resolve(ctx context.Context) (*python.Interpreter, error) {
	if r.spec == "" {
		if pinned, ok := r.project.PinnedInterpreter(ctx); ok {
			return pinned, nil
		}
	}

	requires := r.project.RequiresPython()
	for candidate := range r.project.IterInterpreters(ctx, r.spec, r.project.UsePythonVersionFile()) {
		if r.spec != "" {
			return candidate, nil
		}
		if candidate.Valid && requires.Contains(candidate.Version) {
			return candidate, nil
		}
	}
	return nil, &InterpreterResolutionError{Spec: r.spec}
}
