// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/config"
)

func update(t *testing.T, m tea.Model, msg tea.Msg) (mainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(mainModel)
	if !ok {
		t.Fatalf("expected mainModel, got %T", next)
	}
	return mm, cmd
}

func TestMainModel_MenuNavigation(t *testing.T) {
	useEnglish(t)
	cfg := config.Default()
	cfg.Hanoi.Disks = 2
	m := initialModel(cfg)

	if v := m.View(); !strings.Contains(v, "Vigenère cipher") || !strings.Contains(v, "Tower of Hanoi") {
		t.Fatalf("menu entries missing from view: %q", v)
	}

	m, _ = update(t, m, keyDown)
	if m.menu.cursor != menuHanoi {
		t.Fatalf("expected cursor on hanoi, got %d", m.menu.cursor)
	}
	m, _ = update(t, m, keyEnter)
	if m.state != hanoiView || m.hanoi.state.Disks() != 2 {
		t.Fatalf("expected hanoi view with 2 disks, state=%v disks=%d", m.state, m.hanoi.state.Disks())
	}

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, runes("b"))
	if m.hanoi.state.Moves() != 1 {
		t.Fatalf("key presses were not routed to the hanoi view")
	}

	m, cmd := update(t, m, keyEsc)
	if cmd == nil {
		t.Fatalf("expected a back command")
	}
	m, _ = update(t, m, cmd())
	if m.state != menuView {
		t.Fatalf("expected to be back on the menu, got %v", m.state)
	}
}

func TestMainModel_OpensCipherForm(t *testing.T) {
	useEnglish(t)
	m := initialModel(config.Default())
	m, cmd := update(t, m, keyEnter)
	if m.state != cipherView {
		t.Fatalf("expected cipher view, got %v", m.state)
	}
	if cmd == nil {
		t.Fatalf("expected blink command from the cipher form")
	}
	if !strings.Contains(m.View(), "Vigenère Cipher") {
		t.Fatalf("cipher title missing from view")
	}
}

func TestMainModel_QuitKeys(t *testing.T) {
	useEnglish(t)
	m := initialModel(config.Default())

	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("q on the menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	m.state = hanoiView
	m.hanoi = newHanoiModel(3, 'A')
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit from any view")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestMainModel_LanguageSwitchRebuildsMenu(t *testing.T) {
	useEnglish(t)
	m := initialModel(config.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, runes("L"))
	if m.state != languageView {
		t.Fatalf("expected language view, got %v", m.state)
	}
	if !strings.Contains(m.View(), "Deutsch") {
		t.Fatalf("expected German in the language list: %q", m.View())
	}

	// Codes are sorted (de, en) and the cursor starts on the active language.
	m, _ = update(t, m, keyUp)
	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatalf("expected languageChangedMsg command")
	}
	m, _ = update(t, m, cmd())

	if m.state != menuView || m.cfg.Language != "de" || m.width != 100 {
		t.Fatalf("expected rebuilt German menu, got state=%v lang=%q width=%d", m.state, m.cfg.Language, m.width)
	}
	if !strings.Contains(m.View(), "Beenden") {
		t.Fatalf("menu not translated: %q", m.View())
	}
}

func TestAlignFooter(t *testing.T) {
	if got := AlignFooter("left", "right", 12); got != "left   right" {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("unexpected narrow footer %q", got)
	}
}
