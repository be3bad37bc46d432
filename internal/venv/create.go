// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"path/filepath"
	"strings"
)

const (
	// PromptProjectName is replaced by the lowercased project folder name.
	PromptProjectName = "{project_name}"
	// PromptPythonVersion is replaced by the backend's interpreter identity.
	PromptPythonVersion = "{python_version}"

	defaultPromptProjectName = "virtualenv"
)

// CreateOptions describes one creation request.
type CreateOptions struct {
	// Name is appended to the project prefix to form the directory name.
	Name string
	// Args are forwarded to the tool after the pip arguments.
	Args []string
	// Force empties an occupied location.
	Force bool
	// InProject creates <project root>/.venv.
	InProject bool
	// Prompt is a template; see FormatPrompt.
	Prompt string
	// WithPip installs pip into the environment.
	WithPip bool
	// VenvName is used verbatim as the directory name. Excludes Name.
	VenvName string
}

// Create makes a virtual environment with b and returns its location.
// Validation and interpreter resolution run first. Nothing on disk changes
// before both succeed, apart from creating the venv root.
func Create(ctx context.Context, b Backend, opts CreateOptions) (string, error) {
	if err := validateNames(opts.Name, opts.VenvName); err != nil {
		return "", err
	}

	var location string
	if opts.InProject {
		location = InProjectLocation(b)
	} else {
		var err error
		if location, err = Locate(ctx, b, opts.Name, opts.VenvName); err != nil {
			return "", err
		}
	}

	args := append(b.PipArgs(opts.WithPip), opts.Args...)
	if v, ok := b.(ArgsValidator); ok {
		if err := v.ValidateArgs(args); err != nil {
			return "", err
		}
	}

	// Resolution must succeed before EnsureClean touches location.
	ident, err := b.Ident(ctx)
	if err != nil {
		return "", err
	}

	prompt := opts.Prompt
	if prompt != "" {
		prompt = FormatPrompt(prompt, b.Project().Root(), ident)
	}

	if err := EnsureClean(b.Runner().Logger(), location, opts.Force); err != nil {
		return "", err
	}
	if err := b.PerformCreate(ctx, location, args, prompt); err != nil {
		return "", err
	}
	return location, nil
}

// FormatPrompt substitutes {project_name} with the lowercased base name of
// projectRoot ("virtualenv" when empty) and {python_version} with ident.
// Other braces are left as written.
func FormatPrompt(template, projectRoot, ident string) string {
	name := ""
	if projectRoot != "" {
		name = strings.ToLower(filepath.Base(projectRoot))
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = defaultPromptProjectName
	}
	return strings.NewReplacer(PromptProjectName, name, PromptPythonVersion, ident).Replace(template)
}
