// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/monchin/pdm/internal/platform"
)

// InProjectDir is the environment directory used in in-project mode.
const InProjectDir = ".venv"

// validateNames rejects a name together with an explicit venv name, names
// that would escape the venv root, and verbatim names Windows cannot create.
func validateNames(name, venvName string) error {
	if name != "" && venvName != "" {
		return &UsageError{Reason: "--name and --venv-name cannot be used together"}
	}
	for _, n := range []string{name, venvName} {
		if n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
			return &UsageError{Reason: "invalid environment name " + n + ": must be a single path segment"}
		}
	}
	if platform.IsWindowsReservedName(venvName) {
		return &UsageError{Reason: "invalid environment name " + venvName + ": reserved device name"}
	}
	return nil
}

// Locate returns <venv root>/<venvName>, or <venv root>/<prefix><name> where
// name defaults to the backend's interpreter identity. The venv root is
// created if missing.
func Locate(ctx context.Context, b Backend, name, venvName string) (string, error) {
	if err := validateNames(name, venvName); err != nil {
		return "", err
	}

	root := b.Project().VenvRoot()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", &CreationError{Path: root, Err: err}
	}

	if venvName != "" {
		return filepath.Join(root, venvName), nil
	}
	if name == "" {
		ident, err := b.Ident(ctx)
		if err != nil {
			return "", err
		}
		name = ident
	}
	return filepath.Join(root, b.Project().VenvPrefix()+name), nil
}

// InProjectLocation returns <project root>/.venv.
func InProjectLocation(b Backend) string {
	return filepath.Join(b.Project().Root(), InProjectDir)
}
