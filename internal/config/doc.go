// SPDX-License-Identifier: MPL-2.0

// Package config loads pdm settings using Viper with CUE as the file format.
//
// The config file lives at $XDG_CONFIG_HOME/pdm/config.cue on Linux,
// ~/Library/Application Support/pdm/config.cue on macOS and
// %APPDATA%\pdm\config.cue on Windows. Files are validated against the
// embedded config_schema.cue before being merged over the defaults, and
// PDM_<SECTION>_<KEY> environment variables override both.
package config
