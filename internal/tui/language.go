// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/puzzlebox/internal/i18n"
)

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

func newLanguageModel() languageModel {
	m := languageModel{
		choices:     i18n.GetAvailableLocales(),
		orderedKeys: i18n.LocaleCodes(),
	}
	current := i18n.GetLang()
	for i, code := range m.orderedKeys {
		if code == current {
			m.cursor = i
		}
	}
	return m
}

func (m languageModel) Update(msg tea.Msg) (languageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		return m, func() tea.Msg { return backToMenuMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.orderedKeys)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.orderedKeys) == 0 {
			return m, nil
		}
		i18n.SetLang(m.orderedKeys[m.cursor])
		// Signal that the language has changed so the entire UI can be re-initialized.
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

func (m languageModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("language.title")))
	b.WriteString("\n")
	for i, code := range m.orderedKeys {
		line := m.choices[code] + " (" + code + ")"
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
