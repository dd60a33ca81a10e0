// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package board draws Tower of Hanoi states as plain text. A disk of width
// w is drawn as w "@" on each side of its "_w" label, and an empty slot as
// the bare pole "||". The TUI passes style hooks to colour the output; the
// line-based CLI uses the plain rendering.
package board // import "github.com/toeirei/puzzlebox/internal/board"

import (
	"strconv"
	"strings"

	"github.com/toeirei/puzzlebox/internal/hanoi"
)

// Options customizes rendering. Every hook receives the unstyled text of a
// cell and returns what to print in its place; nil hooks leave text as-is.
type Options struct {
	Disk  func(p hanoi.Peg, d hanoi.Disk, cell string) string
	Pole  func(p hanoi.Peg, cell string) string
	Label func(p hanoi.Peg, cell string) string
}

// Render draws s with one more row than there are disks, so the pole tip is
// always visible, followed by the peg labels.
func Render(s hanoi.State, opts Options) string {
	n := s.Disks()
	stacks := make([][]hanoi.Disk, len(hanoi.Pegs))
	for i, p := range hanoi.Pegs {
		stacks[i] = s.Stack(p)
	}

	var b strings.Builder
	for row := n; row >= 0; row-- {
		for i, p := range hanoi.Pegs {
			if row >= len(stacks[i]) {
				cell := poleCell(n)
				if opts.Pole != nil {
					cell = opts.Pole(p, cell)
				}
				b.WriteString(cell)
				continue
			}
			d := stacks[i][row]
			cell := diskCell(n, d)
			if opts.Disk != nil {
				cell = opts.Disk(p, d, cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	pad := strings.Repeat(" ", n)
	for i, p := range hanoi.Pegs {
		cell := " " + p.String()
		if opts.Label != nil {
			cell = opts.Label(p, cell)
		}
		b.WriteString(pad)
		b.WriteString(cell)
		if i < len(hanoi.Pegs)-1 {
			b.WriteString(strings.Repeat(" ", centerWidth(n)-2))
			b.WriteString(pad)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Plain renders s without styling.
func Plain(s hanoi.State) string { return Render(s, Options{}) }

// centerWidth is the width of the pole and of a disk's size label. Labels
// are padded with underscores to the width of the largest one.
func centerWidth(n int) int {
	return max(2, 1+len(strconv.Itoa(n)))
}

func poleCell(n int) string {
	pad := strings.Repeat(" ", n)
	return pad + "||" + strings.Repeat(" ", centerWidth(n)-2) + pad
}

func diskCell(n int, d hanoi.Disk) string {
	w := int(d)
	pad := strings.Repeat(" ", n-w)
	body := strings.Repeat("@", w)
	size := strconv.Itoa(w)
	label := strings.Repeat("_", centerWidth(n)-len(size)) + size
	return pad + body + label + body + pad
}
