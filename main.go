// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Puzzlebox.
//
// Usage:
//
//	go run . [flags]
//	./puzzlebox [command] [flags]
//
// This launches the Puzzlebox CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/puzzlebox/internal/logging"
	"github.com/toeirei/puzzlebox/ui/cli"
)

// main is the entrypoint for the Puzzlebox CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
