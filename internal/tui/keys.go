// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/i18n"
)

func matches(msg tea.KeyMsg, b key.Binding) bool { return key.Matches(msg, b) }

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", i18n.T("help.up"))),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", i18n.T("help.down"))),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.select"))),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", i18n.T("help.quit"))),
	}
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type cipherKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Copy   key.Binding
	Back   key.Binding
}

func newCipherKeyMap() cipherKeyMap {
	return cipherKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", i18n.T("help.next"))),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", i18n.T("help.up"))),
		Toggle: key.NewBinding(key.WithKeys("left", "right", " "), key.WithHelp("←/→", i18n.T("help.toggle_mode"))),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.select"))),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("help.copy"))),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help.back"))),
	}
}

func (k cipherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Submit, k.Back}
}

func (k cipherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Toggle}, {k.Submit, k.Copy, k.Back}}
}

type hanoiKeyMap struct {
	Pick  key.Binding
	Undo  key.Binding
	Reset key.Binding
	Back  key.Binding
}

func newHanoiKeyMap() hanoiKeyMap {
	return hanoiKeyMap{
		Pick:  key.NewBinding(key.WithKeys("a", "b", "c", "A", "B", "C"), key.WithHelp("a/b/c", i18n.T("help.pick"))),
		Undo:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", i18n.T("help.undo"))),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", i18n.T("help.reset"))),
		Back:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", i18n.T("help.back"))),
	}
}

func (k hanoiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Undo, k.Reset, k.Back}
}

func (k hanoiKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
