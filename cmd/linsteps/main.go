// SPDX-License-Identifier: MIT

// Command linsteps prints step-by-step linear algebra derivations and serves
// the same calculators as MCP tools.
package main

import (
	"os"

	"github.com/katalvlaran/linsteps/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
