// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform file naming rules.
package platform

import "strings"

// windowsReservedNames are device names Windows reserves in every directory,
// regardless of extension.
var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name cannot be used as a file or
// directory name on Windows. Only the part before the first dot counts, and
// trailing spaces are ignored the way Windows ignores them.
func IsWindowsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.IndexByte(upper, '.'); idx != -1 {
		upper = upper[:idx]
	}
	return windowsReservedNames[strings.TrimRight(upper, " ")]
}
