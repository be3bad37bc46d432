// SPDX-License-Identifier: MPL-2.0

// Package venv creates Python virtual environments through one of four
// backend tools: virtualenv, the interpreter's built-in venv module, uv and
// conda.
//
// A Backend is built per request by New and bound to one project and one
// optional interpreter spec. Create validates the request, computes the
// target location, empties it when forced and hands over to the backend.
// Every external tool runs through a Runner, which owns verbosity and
// command logging.
package venv
