// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for pdm.
//
// This package implements the Cobra command hierarchy: the root command,
// `venv create` and `venv backends` for virtual environment management,
// and `config` subcommands. Command handlers delegate to services held by
// App and translate domain errors into exit codes and issue help text.
package cmd
