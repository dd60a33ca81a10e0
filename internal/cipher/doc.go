// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher implements the Vigenère cipher over the 26-letter Latin
// alphabet. Translation preserves letter case and passes every other
// character through untouched; only letters advance the key cursor.
//
// The package is pure: it performs no I/O and keeps no state between calls.
package cipher // import "github.com/toeirei/puzzlebox/internal/cipher"
