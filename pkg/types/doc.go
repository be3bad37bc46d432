// SPDX-License-Identifier: MPL-2.0

// Package types holds validated value types shared by pdm packages.
package types
