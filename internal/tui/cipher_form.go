// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/puzzlebox/internal/cipher"
	"github.com/toeirei/puzzlebox/internal/i18n"
	"github.com/toeirei/puzzlebox/internal/logging"
)

// Focus positions in the cipher form.
const (
	focusMode = iota
	focusKey
	focusMessage
	focusSubmit
)

const (
	inputKey = iota
	inputMessage
)

type cipherFormModel struct {
	mode       cipher.Mode
	focusIndex int
	inputs     []textinput.Model // 0: key, 1: message
	err        error
	result     string
	showResult bool
	status     string
	autoCopy   bool
	keys       cipherKeyMap
	help       help.Model
}

func newCipherFormModel(autoCopy bool) cipherFormModel {
	m := cipherFormModel{
		inputs:   make([]textinput.Model, 2),
		autoCopy: autoCopy,
		keys:     newCipherKeyMap(),
		help:     help.New(),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 50
		switch i {
		case inputKey:
			t.Prompt = i18n.T("cipher.key_label")
			t.Placeholder = i18n.T("cipher.key_placeholder")
			t.CharLimit = 64
		case inputMessage:
			t.Prompt = i18n.T("cipher.message_label")
			t.Placeholder = i18n.T("cipher.message_placeholder")
			t.CharLimit = 1024
		}
		t.PromptStyle = blurredStyle
		m.inputs[i] = t
	}
	return m
}

func (m cipherFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m cipherFormModel) Update(msg tea.Msg) (cipherFormModel, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = ws.Width
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.showResult {
		switch {
		case matches(keyMsg, m.keys.Copy):
			m.copyResult()
		case matches(keyMsg, m.keys.Back), matches(keyMsg, m.keys.Submit):
			m.showResult = false
			m.status = ""
		}
		return m, nil
	}

	switch {
	case matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return backToMenuMsg{} }

	case matches(keyMsg, m.keys.Submit):
		if m.focusIndex == focusSubmit || m.focusIndex == focusMessage {
			m.translate()
			return m, nil
		}
		return m, m.setFocus(m.focusIndex + 1)

	case matches(keyMsg, m.keys.Next):
		return m, m.setFocus((m.focusIndex + 1) % (focusSubmit + 1))

	case matches(keyMsg, m.keys.Prev):
		return m, m.setFocus((m.focusIndex + focusSubmit) % (focusSubmit + 1))

	case m.focusIndex == focusMode && matches(keyMsg, m.keys.Toggle):
		if m.mode == cipher.ModeEncrypt {
			m.mode = cipher.ModeDecrypt
		} else {
			m.mode = cipher.ModeEncrypt
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// setFocus moves focus to index i and updates input styling.
func (m *cipherFormModel) setFocus(i int) tea.Cmd {
	m.focusIndex = i
	var cmds []tea.Cmd
	for j := range m.inputs {
		if focusKey+j == i {
			cmds = append(cmds, m.inputs[j].Focus())
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = blurredStyle
		m.inputs[j].TextStyle = lipgloss.NewStyle()
	}
	return tea.Batch(cmds...)
}

func (m cipherFormModel) updateInputs(msg tea.Msg) (cipherFormModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *cipherFormModel) translate() {
	keyText := m.inputs[inputKey].Value()
	message := m.inputs[inputMessage].Value()

	out, err := cipher.Translate(message, keyText, m.mode)
	if err != nil {
		if errors.Is(err, cipher.ErrInvalidKey) {
			m.err = errors.New(i18n.T("vigenere.invalid_key"))
		} else {
			m.err = err
		}
		return
	}

	m.err = nil
	m.result = out
	m.showResult = true
	m.status = ""
	if m.autoCopy {
		m.copyResult()
	}
}

func (m *cipherFormModel) copyResult() {
	if err := copyToClipboard(m.result); err != nil {
		logging.Debugf("clipboard copy failed: %v", err)
		m.status = errorStyle.Render(i18n.T("cipher.copy_failed", err))
		return
	}
	m.status = successStyle.Render(i18n.T("cipher.copied"))
}

func (m cipherFormModel) modeLabel() string {
	if m.mode == cipher.ModeDecrypt {
		return i18n.T("mode.decrypt")
	}
	return i18n.T("mode.encrypt")
}

func (m cipherFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("cipher.title")))
	b.WriteString("\n")

	if m.showResult {
		header := "vigenere.result_encrypt"
		if m.mode == cipher.ModeDecrypt {
			header = "vigenere.result_decrypt"
		}
		b.WriteString(i18n.T(header))
		b.WriteString("\n")
		b.WriteString(resultBoxStyle.Render(m.result))
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(resultKeys{m.keys}))
		return b.String()
	}

	modeLine := i18n.T("cipher.mode_label") + "◂ " + m.modeLabel() + " ▸"
	if m.focusIndex == focusMode {
		b.WriteString(focusedStyle.Render(modeLine))
	} else {
		b.WriteString(blurredStyle.Render(modeLine))
	}
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	button := buttonStyle.Render(i18n.T("cipher.submit"))
	if m.focusIndex == focusSubmit {
		button = activeButtonStyle.Render(i18n.T("cipher.submit"))
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// resultKeys narrows the help footer to the keys usable on the result screen.
type resultKeys struct{ k cipherKeyMap }

func (r resultKeys) ShortHelp() []key.Binding { return []key.Binding{r.k.Copy, r.k.Back} }

func (r resultKeys) FullHelp() [][]key.Binding { return [][]key.Binding{r.ShortHelp()} }
