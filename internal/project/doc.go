// SPDX-License-Identifier: MPL-2.0

// Package project describes a Python project rooted at a directory: its
// pyproject.toml metadata, its pinned interpreter and where its virtual
// environments live.
package project
