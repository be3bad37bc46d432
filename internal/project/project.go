// SPDX-License-Identifier: MPL-2.0

package project

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/python"

	"github.com/pelletier/go-toml/v2"
)

const (
	// PyprojectFile holds the [project] table.
	PyprojectFile = "pyproject.toml"
	// PinFile stores the interpreter pinned with "pdm use".
	PinFile = ".pdm-python"
	// PythonVersionFile is the pyenv-style version file.
	PythonVersionFile = ".python-version"
	// PinEnvVar overrides PinFile.
	PinEnvVar = "PDM_PYTHON"
)

type (
	// Project is a loaded project. It is immutable after Load.
	Project struct {
		root           string
		name           string
		requiresPython python.SpecifierSet
		venvRoot       string
		usePyVersion   bool

		finder *python.Finder
		prober *python.Prober
		getenv func(string) string
	}

	// Option configures Load.
	Option func(*Project)

	pyproject struct {
		Project struct {
			Name           string `toml:"name"`
			RequiresPython string `toml:"requires-python"`
		} `toml:"project"`
	}
)

// WithFinder sets the interpreter finder.
func WithFinder(f *python.Finder) Option {
	return func(p *Project) {
		p.finder = f
	}
}

// WithProber sets the prober used for the pinned interpreter.
func WithProber(pr *python.Prober) Option {
	return func(p *Project) {
		p.prober = pr
	}
}

// WithGetenv replaces os.Getenv, for tests.
func WithGetenv(fn func(string) string) Option {
	return func(p *Project) {
		p.getenv = fn
	}
}

// Load reads the project at root. A missing pyproject.toml is not an error;
// the project then has no name and accepts any Python version.
func Load(root string, cfg *config.Config, opts ...Option) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}

	p := &Project{
		root:         abs,
		usePyVersion: cfg.Python.UsePythonVersion,
		prober:       python.NewProber(),
		getenv:       os.Getenv,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.finder == nil {
		p.finder = python.NewFinder(python.WithProber(p.prober))
	}

	meta, err := readPyproject(filepath.Join(abs, PyprojectFile))
	if err != nil {
		return nil, err
	}
	p.name = meta.Project.Name
	p.requiresPython, err = python.ParseSpecifierSet(meta.Project.RequiresPython)
	if err != nil {
		return nil, fmt.Errorf("%s: requires-python: %w", PyprojectFile, err)
	}

	venvRoot, err := config.ExpandHome(cfg.Venv.Location)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(venvRoot) {
		venvRoot = filepath.Join(abs, venvRoot)
	}
	p.venvRoot = filepath.Clean(venvRoot)

	return p, nil
}

func readPyproject(path string) (*pyproject, error) {
	var meta pyproject
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &meta, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, &meta); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &meta, nil
}

// Root returns the absolute project root.
func (p *Project) Root() string { return p.root }

// Name returns [project].name, or "" when undeclared.
func (p *Project) Name() string { return p.name }

// RequiresPython returns the declared constraint; empty accepts everything.
func (p *Project) RequiresPython() python.SpecifierSet { return p.requiresPython }

// VenvRoot returns the absolute directory holding centrally stored environments.
func (p *Project) VenvRoot() string { return p.venvRoot }

// UsePythonVersionFile reports whether .python-version is honored.
func (p *Project) UsePythonVersionFile() bool { return p.usePyVersion }

// VenvPrefix returns "<root name>-<hash>-", where hash is the URL-safe
// base64 of the first six bytes of sha256(root). Distinct projects sharing
// a folder name get distinct prefixes.
func (p *Project) VenvPrefix() string {
	sum := sha256.Sum256([]byte(p.root))
	return filepath.Base(p.root) + "-" + base64.URLEncoding.EncodeToString(sum[:6]) + "-"
}

// PinnedInterpreter returns the interpreter recorded in $PDM_PYTHON or
// .pdm-python. A pin that no longer probes as valid counts as no pin.
func (p *Project) PinnedInterpreter(ctx context.Context) (*python.Interpreter, bool) {
	path := strings.TrimSpace(p.getenv(PinEnvVar))
	if path == "" {
		data, err := os.ReadFile(filepath.Join(p.root, PinFile))
		if err != nil {
			return nil, false
		}
		path = strings.TrimSpace(string(data))
	}
	if path == "" {
		return nil, false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, path)
	}

	interp := p.prober.Probe(ctx, path)
	if !interp.Valid {
		return nil, false
	}
	return interp, true
}

// IterInterpreters yields discovery candidates for spec. With no spec and
// respectVersionFile set, the first line of .python-version becomes the spec.
func (p *Project) IterInterpreters(ctx context.Context, spec string, respectVersionFile bool) iter.Seq[*python.Interpreter] {
	if spec == "" && respectVersionFile {
		spec = p.readVersionFile()
	}
	return p.finder.Iter(ctx, spec)
}

func (p *Project) readVersionFile() string {
	f, err := os.Open(filepath.Join(p.root, PythonVersionFile))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}
