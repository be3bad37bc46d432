// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// EnsureClean prepares location for a new environment. A missing path or
// an empty directory is left alone. Anything else needs force: a file is
// deleted, a directory is emptied but kept. Symlinked entries are removed
// as links and never followed.
func EnsureClean(logger *log.Logger, location string, force bool) error {
	info, err := os.Stat(location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &CreationError{Path: location, Err: err}
	}

	var entries []os.DirEntry
	if info.IsDir() {
		entries, err = os.ReadDir(location)
		if err != nil {
			return &CreationError{Path: location, Err: err}
		}
		if len(entries) == 0 {
			return nil
		}
	}

	if !force {
		return &LocationConflictError{Location: location}
	}

	if !info.IsDir() {
		logger.Debug("Removing existing file", "path", location)
		if err := os.Remove(location); err != nil {
			return &CreationError{Path: location, Err: err}
		}
		return nil
	}

	logger.Debug("Cleaning existing target directory", "path", location)
	for _, entry := range entries {
		path := filepath.Join(location, entry.Name())
		if entry.IsDir() {
			err = os.RemoveAll(path)
		} else {
			// Regular files and symlinks, including links to directories.
			err = os.Remove(path)
		}
		if err != nil {
			return &CreationError{Path: path, Err: err}
		}
	}
	return nil
}
