// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the catalog of Markdown help
// pages shown when a pdm command fails.
package issue
