package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SetupModel creates the master password of a fresh vault. The password is
// typed twice and both copies must match.
type SetupModel struct {
	ctx  context.Context
	auth service.AuthService
	sess *session

	form       form
	pending    string
	submitting bool
	status     string
	errMsg     string
}

func NewSetupModel(ctx context.Context, auth service.AuthService, sess *session) *SetupModel {
	return &SetupModel{
		ctx:  ctx,
		auth: auth,
		sess: sess,
		form: newForm(newPasswordInput("master password"), newPasswordInput("repeat password")),
	}
}

func (m *SetupModel) Init() tea.Cmd {
	m.form.reset()
	m.pending = ""
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
		return m, nil
	case setupDoneMsg:
		m.submitting = false
		password := m.pending
		m.pending = ""
		m.form.reset()
		switch {
		case msg.err != nil && msg.created:
			return m, tea.Batch(navigate(pageLogin, notice{text: "Vault created"}), showError(msg.err))
		case msg.err != nil:
			return m, showError(msg.err)
		}
		m.sess.unlock(password, msg.vaultID)
		return m, navigate(pageMenu, notice{text: "Vault created"})
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if !m.form.last() {
				m.form.next()
				return m, nil
			}
			return m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *SetupModel) submit() (tea.Model, tea.Cmd) {
	password := m.form.value(0)
	switch {
	case password == "":
		m.errMsg = "Master password is required"
		return m, nil
	case password != m.form.value(1):
		m.errMsg = "Passwords do not match"
		m.form.reset()
		return m, nil
	}

	m.errMsg = ""
	m.pending = password
	m.submitting = true
	return m, m.cmdSetup(password)
}

func (m *SetupModel) cmdSetup(password string) tea.Cmd {
	ctx := m.sess.context(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		if err := auth.Setup(ctx, password); err != nil {
			return setupDoneMsg{err: err}
		}
		vaultID, err := auth.VaultID(ctx)
		return setupDoneMsg{created: true, vaultID: vaultID, err: err}
	}
}

func (m *SetupModel) View() string {
	var b strings.Builder
	b.WriteString("No master password is set. Choose one to create the vault.\n\n")
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.form.view(0))
	b.WriteString("\n")
	b.WriteString("Repeat    │ ")
	b.WriteString(m.form.view(1))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("CREATE VAULT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}
