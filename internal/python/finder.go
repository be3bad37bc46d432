// SPDX-License-Identifier: MPL-2.0

package python

import (
	"context"
	"iter"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
)

var (
	// executableName matches python, python3, python3.11 (and .exe on Windows).
	executableName = regexp.MustCompile(`^python(\d+(\.\d+)?)?(\.exe)?$`)
	// versionSpec matches specs that select by version rather than by name.
	versionSpec = regexp.MustCompile(`^\d+(\.\d+)*$`)
)

type (
	// Finder enumerates interpreters matching an optional spec.
	Finder struct {
		prober   *Prober
		lookPath func(file string) (string, error)
		pathEnv  func() string
	}

	// FinderOption configures a Finder.
	FinderOption func(*Finder)
)

// WithProber sets the prober used for candidates.
func WithProber(p *Prober) FinderOption {
	return func(f *Finder) {
		f.prober = p
	}
}

// WithSearchPath replaces $PATH as the list of directories to scan.
func WithSearchPath(path string) FinderOption {
	return func(f *Finder) {
		f.pathEnv = func() string { return path }
		f.lookPath = func(file string) (string, error) {
			return lookPathIn(path, file)
		}
	}
}

// NewFinder creates a Finder over $PATH.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{
		prober:   NewProber(),
		lookPath: exec.LookPath,
		pathEnv:  func() string { return os.Getenv("PATH") },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Iter yields interpreters for spec:
//   - "" yields every interpreter found on the search path, newest first
//   - a version ("3", "3.11", "3.11.2") yields search-path interpreters with that prefix
//   - a path yields that executable, or the interpreter of the virtualenv at that directory
//   - anything else is looked up as an executable name
//
// The search-path forms probe every candidate before the first yield so the
// results can be ordered. Invalid candidates are yielded too; filtering on
// validity is the caller's decision.
func (f *Finder) Iter(ctx context.Context, spec string) iter.Seq[*Interpreter] {
	spec = strings.TrimSpace(spec)
	return func(yield func(*Interpreter) bool) {
		switch {
		case spec == "":
			for _, interp := range f.scan(ctx) {
				if !yield(interp) {
					return
				}
			}
		case versionSpec.MatchString(spec):
			want, err := ParseVersion(spec)
			if err != nil {
				return
			}
			for _, interp := range f.scan(ctx) {
				if interp.Valid && interp.Version.HasPrefix(want) {
					if !yield(interp) {
						return
					}
				}
			}
		case isPathSpec(spec):
			exe := executableInPath(spec)
			if exe == "" {
				return
			}
			yield(f.prober.Probe(ctx, exe))
		default:
			exe, err := f.lookPath(spec)
			if err != nil {
				return
			}
			if abs, err := filepath.Abs(exe); err == nil {
				exe = abs
			}
			yield(f.prober.Probe(ctx, exe))
		}
	}
}

// scan probes every python executable on the search path, deduplicated by
// real path and sorted by version descending.
func (f *Finder) scan(ctx context.Context) []*Interpreter {
	seen := make(map[string]bool)
	var found []*Interpreter

	for _, dir := range filepath.SplitList(f.pathEnv()) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !executableName.MatchString(entry.Name()) {
				continue
			}
			exe := filepath.Join(dir, entry.Name())
			if !isExecutable(exe) {
				continue
			}
			real, err := filepath.EvalSymlinks(exe)
			if err != nil {
				real = exe
			}
			if seen[real] {
				continue
			}
			seen[real] = true
			found = append(found, f.prober.Probe(ctx, exe))
		}
	}

	slices.SortStableFunc(found, func(a, b *Interpreter) int {
		if a.Valid != b.Valid {
			if a.Valid {
				return -1
			}
			return 1
		}
		return b.Version.Compare(a.Version)
	})
	return found
}

func isPathSpec(spec string) bool {
	return filepath.IsAbs(spec) || strings.ContainsRune(spec, '/') || strings.ContainsRune(spec, filepath.Separator)
}

// executableInPath resolves a path spec to an executable. Directories are
// treated as environment roots.
func executableInPath(spec string) string {
	abs, err := filepath.Abs(spec)
	if err != nil {
		return ""
	}
	info, err := os.Stat(abs)
	if err != nil {
		return ""
	}
	if !info.IsDir() {
		return abs
	}
	for _, rel := range envExecutables() {
		candidate := filepath.Join(abs, rel)
		if isExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

func envExecutables() []string {
	if runtime.GOOS == "windows" {
		return []string{filepath.Join("Scripts", "python.exe"), "python.exe"}
	}
	return []string{filepath.Join("bin", "python3"), filepath.Join("bin", "python")}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}

func lookPathIn(path, file string) (string, error) {
	for _, dir := range filepath.SplitList(path) {
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}
