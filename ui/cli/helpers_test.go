// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI executes a fresh root command with the given stdin and arguments
// and returns everything written to stdout and stderr. Config lookups are
// pointed at empty temporary directories.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// isolateConfig keeps the user's config file out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

// fakeClipboard swaps the clipboard writer for the duration of a test and
// returns a pointer to the last copied text.
func fakeClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	prev := copyToClipboard
	copyToClipboard = func(s string) error {
		if err != nil {
			return err
		}
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = prev })
	return &copied
}
