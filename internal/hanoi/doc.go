// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package hanoi holds the rules of the Tower of Hanoi: three pegs, N disks,
// one disk moved at a time, never a larger disk on a smaller one.
//
// State values are immutable from the caller's point of view. Apply returns
// a new State and leaves the receiver untouched, so callers can keep earlier
// states around (for undo) without copying.
package hanoi // import "github.com/toeirei/puzzlebox/internal/hanoi"
