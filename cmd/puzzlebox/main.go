// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Command puzzlebox is the installable entrypoint:
//
//	go install github.com/toeirei/puzzlebox/cmd/puzzlebox@latest
package main

import (
	"os"

	"github.com/toeirei/puzzlebox/internal/logging"
	"github.com/toeirei/puzzlebox/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
