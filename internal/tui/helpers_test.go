// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/i18n"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

// fakeClipboard swaps the clipboard writer for the duration of a test and
// returns a pointer to the last copied text.
func fakeClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	prev := copyToClipboard
	copyToClipboard = func(s string) error {
		if err != nil {
			return err
		}
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = prev })
	return &copied
}

func useEnglish(t *testing.T) {
	t.Helper()
	i18n.Init("en")
	t.Cleanup(func() { i18n.Init("en") })
}

// typeText feeds every rune of s to a cipher form as individual key presses.
func typeText(m cipherFormModel, s string) cipherFormModel {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}
