// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the unlock screen. It renders a
// single masked password input and dispatches an async verification on
// submit.
//
// A wrong password keeps the user on this page with an attempt counter;
// every other failure is raised on the error overlay.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService
	sess *session

	form       form
	pending    string
	attempts   int
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with a focused, masked password input.
func NewLoginModel(ctx context.Context, auth service.AuthService, sess *session) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		sess: sess,
		form: newForm(newPasswordInput("master password")),
	}
}

// Init implements [tea.Model]. Clears the form and starts the cursor blink.
// The attempt counter survives navigation.
func (m *LoginModel) Init() tea.Cmd {
	m.form.reset()
	m.pending = ""
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg] unlocks the session or counts a failed attempt.
//   - [notice] shows a status line, e.g. after a reset.
//   - enter dispatches the async verification.
//
// All other key events are forwarded to the password input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
		return m, nil
	case loginResultMsg:
		m.submitting = false
		password := m.pending
		m.pending = ""
		m.form.reset()
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if !msg.ok {
			m.attempts++
			m.errMsg = fmt.Sprintf("Wrong master password (attempt %d)", m.attempts)
			return m, nil
		}

		m.attempts = 0
		m.errMsg = ""
		m.sess.unlock(password, msg.vaultID)
		return m, navigate(pageMenu, notice{text: "Vault unlocked"})
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		if key.Matches(msg, keys.enter) {
			password := m.form.value(0)
			if password == "" {
				m.errMsg = "Master password is required"
				return m, nil
			}

			m.status = ""
			m.pending = password
			m.submitting = true
			return m, m.cmdLogin(password)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.form.view(0))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: confirm")
}

func (m *LoginModel) cmdLogin(password string) tea.Cmd {
	ctx := m.sess.context(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		ok, err := auth.Verify(ctx, password)
		if err != nil || !ok {
			return loginResultMsg{ok: ok, err: err}
		}

		vaultID, err := auth.VaultID(ctx)
		return loginResultMsg{ok: true, vaultID: vaultID, err: err}
	}
}
