// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/katalvlaran/rootfind/cmd/rootfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
