// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/monchin/pdm/cmd/pdm"

func main() {
	cmd.Execute()
}
