// SPDX-License-Identifier: MPL-2.0

// Package python discovers and describes Python interpreters on the host.
//
// An Interpreter is produced by probing an executable: the executable is run with
// a tiny inline script that prints its version triple and pointer width. Probing
// never fails hard; an executable that cannot be run yields an Interpreter with
// Valid set to false so callers can decide whether to accept it anyway.
//
// Finder enumerates candidates for an optional interpreter spec (a version such
// as "3.11", a path, or an executable name such as "python3.8"). Version and
// SpecifierSet wrap PEP 440 parsing for requires-python checks.
package python
