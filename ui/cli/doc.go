// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Puzzlebox using Cobra.
// It resolves configuration, sets up logging and translations, and runs the
// line-based Vigenère and Tower of Hanoi programs. Puzzle rules live in the
// internal/cipher and internal/hanoi packages; this package only talks to
// the user.
package cli
