// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package hanoi

import (
	"errors"
	"fmt"
)

const (
	// DefaultDisks is the puzzle size used when none is configured.
	DefaultDisks = 5
	// MaxDisks bounds the puzzle size accepted by NewState.
	MaxDisks = 16
)

// ErrInvalidState is returned by NewState for bad parameters and by
// Validate when a state breaks the disk invariants.
var ErrInvalidState = errors.New("invalid tower state")

// Disk is a disk size; 1 is the smallest.
type Disk int

// State is a snapshot of the three towers. Each stack is ordered base to
// top. The zero value is an empty puzzle with no disks.
type State struct {
	disks  int
	moves  int
	stacks [3][]Disk
}

// NewState returns the starting position: all n disks on start, largest at
// the base.
func NewState(n int, start Peg) (State, error) {
	if n < 1 || n > MaxDisks {
		return State{}, fmt.Errorf("%w: disk count %d out of range 1..%d", ErrInvalidState, n, MaxDisks)
	}
	if !start.Valid() {
		return State{}, fmt.Errorf("%w: unknown start peg %v", ErrInvalidState, start)
	}
	tower := make([]Disk, n)
	for i := range tower {
		tower[i] = Disk(n - i)
	}
	s := State{disks: n}
	s.stacks[start.index()] = tower
	return s, nil
}

// Disks returns N, the number of disks in the puzzle.
func (s State) Disks() int { return s.disks }

// Moves returns how many moves were applied to reach this state.
func (s State) Moves() int { return s.moves }

// Height returns the number of disks on p.
func (s State) Height(p Peg) int {
	if !p.Valid() {
		return 0
	}
	return len(s.stacks[p.index()])
}

// Top returns the top disk of p, or false if p is empty.
func (s State) Top(p Peg) (Disk, bool) {
	if !p.Valid() {
		return 0, false
	}
	st := s.stacks[p.index()]
	if len(st) == 0 {
		return 0, false
	}
	return st[len(st)-1], true
}

// Stack returns a copy of p's disks, base first.
func (s State) Stack(p Peg) []Disk {
	if !p.Valid() {
		return nil
	}
	st := s.stacks[p.index()]
	out := make([]Disk, len(st))
	copy(out, st)
	return out
}

// DiskCount returns the total number of disks across all pegs. For any
// state built by NewState and Apply it equals Disks().
func (s State) DiskCount() int {
	return len(s.stacks[0]) + len(s.stacks[1]) + len(s.stacks[2])
}

// Check returns the rule m would break, or NoViolation if m is legal.
func (s State) Check(m Move) Violation {
	if !m.valid() {
		return InvalidMove
	}
	src, ok := s.Top(m.From)
	if !ok {
		return EmptySource
	}
	dst, ok := s.Top(m.To)
	if !ok {
		return NoViolation
	}
	if src >= dst {
		return DiskTooLarge
	}
	return NoViolation
}

// IsLegal reports whether m can be applied to s.
func (s State) IsLegal(m Move) bool { return s.Check(m) == NoViolation }

// Apply moves the top disk of m.From onto m.To and returns the resulting
// state. An illegal move returns s unchanged together with a *MoveError.
func (s State) Apply(m Move) (State, error) {
	if v := s.Check(m); v != NoViolation {
		return s, &MoveError{Move: m, Reason: v}
	}

	from, to := m.From.index(), m.To.index()
	src := s.stacks[from]
	disk := src[len(src)-1]

	next := State{disks: s.disks, moves: s.moves + 1}
	for i := range s.stacks {
		switch i {
		case from:
			next.stacks[i] = append([]Disk(nil), src[:len(src)-1]...)
		case to:
			dst := make([]Disk, len(s.stacks[i]), len(s.stacks[i])+1)
			copy(dst, s.stacks[i])
			next.stacks[i] = append(dst, disk)
		default:
			next.stacks[i] = s.stacks[i]
		}
	}
	return next, nil
}

// IsSolved reports whether the whole tower sits on a peg other than
// initial. Legal moves keep every stack sorted, so a full stack is a
// correctly ordered one.
func (s State) IsSolved(initial Peg) bool {
	if s.disks == 0 {
		return false
	}
	for _, p := range Pegs {
		if p != initial && s.Height(p) == s.disks {
			return true
		}
	}
	return false
}

// Validate checks that the pegs hold each disk 1..N exactly once and that
// every stack decreases from base to top.
func (s State) Validate() error {
	seen := make([]bool, s.disks+1)
	count := 0
	for _, p := range Pegs {
		st := s.stacks[p.index()]
		for i, d := range st {
			if d < 1 || int(d) > s.disks {
				return fmt.Errorf("%w: peg %v holds unknown disk %d", ErrInvalidState, p, d)
			}
			if seen[d] {
				return fmt.Errorf("%w: disk %d appears twice", ErrInvalidState, d)
			}
			seen[d] = true
			if i > 0 && st[i-1] <= d {
				return fmt.Errorf("%w: disk %d rests on smaller disk %d on peg %v", ErrInvalidState, d, st[i-1], p)
			}
			count++
		}
	}
	if count != s.disks {
		return fmt.Errorf("%w: found %d disks, want %d", ErrInvalidState, count, s.disks)
	}
	return nil
}
