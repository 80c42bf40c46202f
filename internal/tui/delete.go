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

// DeleteModel removes a secret after an explicit y/n confirmation.
type DeleteModel struct {
	ctx     context.Context
	secrets service.SecretService
	sess    *session

	name        textinput.Model
	busy        bool
	showConfirm bool
	confirm     confirmModel
	pending     string
}

func NewDeleteModel(ctx context.Context, secrets service.SecretService, sess *session) *DeleteModel {
	return &DeleteModel{
		ctx:     ctx,
		secrets: secrets,
		sess:    sess,
		name:    newTextInput("name", nameCharLimit),
	}
}

func (m *DeleteModel) Init() tea.Cmd {
	m.name.SetValue("")
	m.name.Focus()
	m.busy = false
	m.showConfirm = false
	m.pending = ""
	return textinput.Blink
}

func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if !msg.found {
			return m, showError(fmt.Errorf("%w: %q", errNoSuchEntry, msg.name))
		}
		m.pending = msg.name
		m.confirm.question = fmt.Sprintf("Delete %q?", msg.name)
		m.showConfirm = true
		return m, nil
	case deletedMsg:
		m.busy = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		return m, navigate(pageMenu, notice{text: fmt.Sprintf("Deleted %q", msg.name)})
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.enter):
			m.busy = true
			return m, cmdLookup(m.sess.context(m.ctx), m.secrets, m.name.Value())
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *DeleteModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		m.busy = true
		return m, m.cmdDelete(m.pending)
	case key.Matches(msg, keys.no):
		m.showConfirm = false
		m.pending = ""
	}
	return m, nil
}

func (m *DeleteModel) cmdDelete(name string) tea.Cmd {
	ctx := m.sess.context(m.ctx)
	secrets := m.secrets

	return func() tea.Msg {
		return deletedMsg{name: name, err: secrets.Delete(ctx, name)}
	}
}

func (m *DeleteModel) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Name    │ [")
	b.WriteString(m.name.View())
	b.WriteString("]")

	body := renderPage("DELETE SECRET", b.String(), "esc: back │ enter: delete")
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	return body
}
