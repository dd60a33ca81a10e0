// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Puzzlebox.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/toeirei/puzzlebox/internal/tui"

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/clip"
	"github.com/toeirei/puzzlebox/internal/config"
	"github.com/toeirei/puzzlebox/internal/i18n"
	"github.com/toeirei/puzzlebox/internal/logging"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	cipherView
	hanoiView
	languageView
)

// backToMenuMsg is sent by sub-views when the user leaves them.
type backToMenuMsg struct{}

// languageChangedMsg is a message to signal that the language has changed and the UI should be re-initialized.
type languageChangedMsg struct{}

// copyToClipboard is replaced in tests.
var copyToClipboard = clip.Copy

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	state    viewState
	cfg      config.Config
	menu     menuModel
	cipher   cipherFormModel
	hanoi    hanoiModel
	language languageModel
	keys     menuKeyMap
	help     help.Model
	width    int
	height   int
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

const (
	menuCipher = iota
	menuHanoi
	menuLanguage
	menuQuit
)

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(cfg config.Config) mainModel {
	return mainModel{
		state: menuView,
		cfg:   cfg,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.cipher"),
				i18n.T("menu.hanoi"),
				i18n.T("menu.language"),
				i18n.T("menu.quit"),
			},
		},
		keys: newMenuKeyMap(),
		help: help.New(),
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg config.Config) error {
	logging.Debugf("starting TUI (lang=%s, disks=%d)", cfg.Language, cfg.Hanoi.Disks)
	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case backToMenuMsg:
		m.state = menuView
		return m, nil
	case languageChangedMsg:
		// Re-initialize the entire model to apply new translations everywhere.
		m.cfg.Language = i18n.GetLang()
		newModel := initialModel(m.cfg)
		newModel.width = m.width
		newModel.height = m.height
		newModel.help.Width = m.width
		return newModel, nil
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case cipherView:
		m.cipher, cmd = m.cipher.Update(msg)
	case hanoiView:
		m.hanoi, cmd = m.hanoi.Update(msg)
	case languageView:
		m.language, cmd = m.language.Update(msg)
	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateMenu(keyMsg)
		}
	}

	return m, cmd
}

func (m mainModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Quit):
		return m, tea.Quit
	case matches(msg, m.keys.Up):
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case matches(msg, m.keys.Down):
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case matches(msg, m.keys.Select):
		switch m.menu.cursor {
		case menuCipher:
			m.state = cipherView
			m.cipher = newCipherFormModel(m.cfg.Cipher.Clipboard)
			m.cipher.help.Width = m.width
			return m, m.cipher.Init()
		case menuHanoi:
			m.state = hanoiView
			m.hanoi = newHanoiModel(m.cfg.Hanoi.Disks, m.cfg.Hanoi.Start())
			m.hanoi.help.Width = m.width
			return m, nil
		case menuLanguage:
			m.state = languageView
			m.language = newLanguageModel()
			return m, nil
		case menuQuit:
			return m, tea.Quit
		}
	case msg.String() == "L":
		m.state = languageView
		m.language = newLanguageModel()
	}
	return m, nil
}

// View renders the active view.
func (m mainModel) View() string {
	switch m.state {
	case cipherView:
		return docStyle.Render(m.cipher.View())
	case hanoiView:
		return docStyle.Render(m.hanoi.View())
	case languageView:
		return docStyle.Render(m.language.View())
	}

	var b strings.Builder
	b.WriteString(mainTitleStyle.Render(i18n.T("menu.title")))
	b.WriteString("\n\n")
	for i, choice := range m.menu.choices {
		if m.menu.cursor == i {
			b.WriteString(selectedItemStyle.Render("▸ " + choice))
		} else {
			b.WriteString(itemStyle.Render("  " + choice))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("common.quit_hint")))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}
