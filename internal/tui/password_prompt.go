// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const passwordCharLimit = 256

// PasswordModel is the Bubble Tea model of the password prompt. It renders
// one masked input and finishes the program on submit or quit.
type PasswordModel struct {
	input textinput.Model

	errMsg   string
	password string
	done     bool
	quit     bool
}

// NewPasswordModel creates a focused, masked prompt. errMsg is shown under
// the input until the user submits again.
func NewPasswordModel(errMsg string) *PasswordModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "vault password"
	passwordInput.CharLimit = passwordCharLimit
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &PasswordModel{
		input:  passwordInput,
		errMsg: errMsg,
	}
}

// Init implements [tea.Model].
func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]:
//   - enter submits a non-empty password and quits the program;
//   - esc and ctrl+c abandon the prompt.
//
// All other messages go to the input widget.
func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			value := m.input.Value()
			if value == "" {
				m.errMsg = "Password is required"
				return m, nil
			}

			m.errMsg = ""
			m.password = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *PasswordModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: quit")
}

// Password returns the submitted password.
func (m *PasswordModel) Password() string {
	return m.password
}

// Quit reports whether the user left the prompt without submitting.
func (m *PasswordModel) Quit() bool {
	return m.quit
}
