// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/board"
	"github.com/toeirei/puzzlebox/internal/hanoi"
	"github.com/toeirei/puzzlebox/internal/i18n"
)

// hanoiModel plays one Tower of Hanoi game. Pressing a peg letter selects
// the source; the next peg letter completes the move.
type hanoiModel struct {
	disks    int
	start    hanoi.Peg
	state    hanoi.State
	history  []hanoi.State
	selected hanoi.Peg // 0 when no source is selected
	message  string
	isError  bool
	keys     hanoiKeyMap
	help     help.Model
}

func newHanoiModel(disks int, start hanoi.Peg) hanoiModel {
	m := hanoiModel{
		disks: disks,
		start: start,
		keys:  newHanoiKeyMap(),
		help:  help.New(),
	}
	m.reset()
	return m
}

func (m *hanoiModel) reset() {
	s, err := hanoi.NewState(m.disks, m.start)
	if err != nil {
		// Bad config values fall back to the classic game.
		m.disks, m.start = hanoi.DefaultDisks, hanoi.PegA
		s, _ = hanoi.NewState(m.disks, m.start)
	}
	m.state = s
	m.history = nil
	m.selected = 0
	m.message = i18n.T("hanoi.pick_source")
	m.isError = false
}

func (m hanoiModel) solved() bool { return m.state.IsSolved(m.start) }

func (m hanoiModel) Update(msg tea.Msg) (hanoiModel, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = ws.Width
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case matches(keyMsg, m.keys.Back):
		if m.selected != 0 {
			m.selected = 0
			m.message = i18n.T("hanoi.pick_source")
			m.isError = false
			return m, nil
		}
		return m, func() tea.Msg { return backToMenuMsg{} }

	case matches(keyMsg, m.keys.Reset):
		m.reset()

	case matches(keyMsg, m.keys.Undo):
		if len(m.history) == 0 {
			m.message = i18n.T("hanoi.nothing_to_undo")
			m.isError = true
			return m, nil
		}
		m.state = m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		m.selected = 0
		m.message = i18n.T("hanoi.pick_source")
		m.isError = false

	case matches(keyMsg, m.keys.Pick):
		if m.solved() {
			return m, nil
		}
		peg, err := hanoi.ParsePeg(keyMsg.String())
		if err != nil {
			return m, nil
		}
		m.pick(peg)
	}
	return m, nil
}

func (m *hanoiModel) pick(peg hanoi.Peg) {
	switch {
	case m.selected == peg:
		m.selected = 0
		m.message = i18n.T("hanoi.pick_source")
		m.isError = false
		return
	case m.selected == 0:
		if m.state.Height(peg) == 0 {
			m.message = i18n.T("hanoi.empty_source")
			m.isError = true
			return
		}
		m.selected = peg
		m.message = i18n.T("hanoi.pick_target", peg.String())
		m.isError = false
		return
	}

	move := hanoi.Move{From: m.selected, To: peg}
	m.selected = 0
	next, err := m.state.Apply(move)
	if err != nil {
		m.message = violationText(err)
		m.isError = true
		return
	}
	m.history = append(m.history, m.state)
	m.state = next
	m.isError = false
	if m.solved() {
		m.message = i18n.T("hanoi.solved") + " " + i18n.T("hanoi.move_count", m.state.Moves(), hanoi.MinMoves(m.state.Disks()))
		return
	}
	m.message = i18n.T("hanoi.pick_source")
}

// violationText maps a rejected move to its user-facing explanation.
func violationText(err error) string {
	switch {
	case errors.Is(err, hanoi.ErrEmptySource):
		return i18n.T("hanoi.empty_source")
	case errors.Is(err, hanoi.ErrDiskTooLarge):
		return i18n.T("hanoi.disk_too_large")
	default:
		return i18n.T("hanoi.invalid_move")
	}
}

func (m hanoiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("hanoi.title")))
	b.WriteString("\n")

	b.WriteString(board.Render(m.state, board.Options{
		Disk: func(_ hanoi.Peg, _ hanoi.Disk, cell string) string { return diskStyle.Render(cell) },
		Pole: func(_ hanoi.Peg, cell string) string { return poleStyle.Render(cell) },
		Label: func(p hanoi.Peg, cell string) string {
			if p == m.selected {
				return pegSelectedStyle.Render(cell)
			}
			return pegLabelStyle.Render(cell)
		},
	}))
	b.WriteString("\n")

	switch {
	case m.solved():
		b.WriteString(successStyle.Render(m.message))
	case m.isError:
		b.WriteString(errorStyle.Render(m.message))
	default:
		b.WriteString(m.message)
	}
	b.WriteString("\n")

	status := specialStyle.Render(i18n.T("hanoi.moves", m.state.Moves(), hanoi.MinMoves(m.state.Disks())))
	b.WriteString("\n")
	b.WriteString(AlignFooter(m.help.View(m.keys), status, m.help.Width))
	return b.String()
}
