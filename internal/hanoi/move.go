// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package hanoi

import (
	"errors"
	"fmt"
	"strings"
)

// Peg identifies one of the three towers by its label.
type Peg byte

const (
	PegA Peg = 'A'
	PegB Peg = 'B'
	PegC Peg = 'C'
)

// Pegs lists the pegs in display order.
var Pegs = [3]Peg{PegA, PegB, PegC}

// Valid reports whether p is one of the three known pegs.
func (p Peg) Valid() bool { return p >= PegA && p <= PegC }

func (p Peg) index() int { return int(p - PegA) }

// String returns the peg label.
func (p Peg) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Peg(%d)", byte(p))
	}
	return string(rune(p))
}

// ParsePeg reads a single peg label, case-insensitively.
func ParsePeg(s string) (Peg, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !Peg(s[0]).Valid() {
		return 0, fmt.Errorf("%w: unknown peg %q", ErrInvalidMove, s)
	}
	return Peg(s[0]), nil
}

// OtherPeg returns the peg that is neither a nor b. a and b must differ.
func OtherPeg(a, b Peg) Peg {
	for _, p := range Pegs {
		if p != a && p != b {
			return p
		}
	}
	return 0
}

// Move takes the top disk of From and places it on To.
type Move struct {
	From Peg
	To   Peg
}

// String renders the move as its two-letter token, e.g. "AC".
func (m Move) String() string { return m.From.String() + m.To.String() }

func (m Move) valid() bool {
	return m.From.Valid() && m.To.Valid() && m.From != m.To
}

// ParseMove reads a two-letter move token such as "AB" or "ca". Both
// letters must name distinct pegs.
func ParseMove(token string) (Move, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}
	m := Move{From: Peg(t[0]), To: Peg(t[1])}
	if !m.valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}
	return m, nil
}

// Violation names the rule a rejected move breaks.
type Violation int

const (
	// NoViolation means the move is legal.
	NoViolation Violation = iota
	// InvalidMove covers unknown pegs and moves onto the source peg.
	InvalidMove
	// EmptySource means the source peg holds no disk.
	EmptySource
	// DiskTooLarge means the moving disk is larger than the destination's top disk.
	DiskTooLarge
)

func (v Violation) String() string {
	switch v {
	case NoViolation:
		return "ok"
	case InvalidMove:
		return "invalid move"
	case EmptySource:
		return "empty source"
	case DiskTooLarge:
		return "disk too large"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// Sentinel errors matched by errors.Is against a *MoveError.
var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrEmptySource  = errors.New("source peg has no disks")
	ErrDiskTooLarge = errors.New("cannot put a larger disk on a smaller one")
)

func (v Violation) err() error {
	switch v {
	case InvalidMove:
		return ErrInvalidMove
	case EmptySource:
		return ErrEmptySource
	case DiskTooLarge:
		return ErrDiskTooLarge
	}
	return nil
}

// MoveError reports a rejected move and the reason it was rejected.
type MoveError struct {
	Move   Move
	Reason Violation
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s: %v", e.Move, e.Reason.err())
}

// Unwrap exposes the sentinel for the violated rule.
func (e *MoveError) Unwrap() error { return e.Reason.err() }
