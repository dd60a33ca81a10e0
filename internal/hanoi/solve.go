// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package hanoi

// MinMoves returns 2^n - 1, the length of the shortest solution for n disks.
func MinMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}

// Solve returns the optimal move sequence that carries n disks from one
// peg to another. It returns nil for bad arguments.
func Solve(n int, from, to Peg) []Move {
	if n < 1 || n > MaxDisks || !from.Valid() || !to.Valid() || from == to {
		return nil
	}
	moves := make([]Move, 0, MinMoves(n))
	var step func(k int, src, dst, via Peg)
	step = func(k int, src, dst, via Peg) {
		if k == 0 {
			return
		}
		step(k-1, src, via, dst)
		moves = append(moves, Move{From: src, To: dst})
		step(k-1, via, dst, src)
	}
	step(n, from, to, OtherPeg(from, to))
	return moves
}
