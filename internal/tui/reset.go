package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ResetModel erases the whole vault. The current master password is required
// and the action must be confirmed.
type ResetModel struct {
	ctx  context.Context
	auth service.AuthService
	sess *session

	password    textinput.Model
	busy        bool
	showConfirm bool
	confirm     confirmModel
}

func NewResetModel(ctx context.Context, auth service.AuthService, sess *session) *ResetModel {
	return &ResetModel{
		ctx:      ctx,
		auth:     auth,
		sess:     sess,
		password: newPasswordInput("current master password"),
		confirm:  confirmModel{question: "Erase every secret and the master password?"},
	}
}

func (m *ResetModel) Init() tea.Cmd {
	m.password.SetValue("")
	m.password.Focus()
	m.busy = false
	m.showConfirm = false
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		m.busy = false
		m.password.SetValue("")
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.sess.lock()
		return m, navigate(pageSetup, notice{text: "Vault erased"})
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				m.busy = true
				return m, m.cmdReset(m.password.Value())
			case key.Matches(msg, keys.no):
				m.showConfirm = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.enter):
			if m.password.Value() == "" {
				return m, showError(service.ErrEmptyPassword)
			}
			m.showConfirm = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *ResetModel) cmdReset(password string) tea.Cmd {
	ctx := m.sess.context(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		return resetDoneMsg{err: auth.Reset(ctx, password)}
	}
}

func (m *ResetModel) View() string {
	var b strings.Builder
	b.WriteString("All secrets will be lost. Type the current master password.\n\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.password.View())
	b.WriteString("]")

	body := renderPage("RESET VAULT", b.String(), "esc: back │ enter: continue")
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	return body
}
