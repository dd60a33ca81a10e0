// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clip copies text to the system clipboard.
package clip // import "github.com/toeirei/puzzlebox/internal/clip"

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard backend is available
// (for example a headless Linux box without xclip, xsel or wl-copy).
var ErrUnsupported = errors.New("clipboard not supported on this system")

// backend is swapped out in tests.
var backend = struct {
	unsupported func() bool
	writeAll    func(string) error
}{
	unsupported: func() bool { return clipboard.Unsupported },
	writeAll:    clipboard.WriteAll,
}

// Copy places text on the clipboard.
func Copy(text string) error {
	if backend.unsupported() {
		return ErrUnsupported
	}
	if err := backend.writeAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
