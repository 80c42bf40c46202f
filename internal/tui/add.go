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

// AddModel stores a new secret. An existing secret with the same name is
// overwritten.
type AddModel struct {
	ctx     context.Context
	secrets service.SecretService
	sess    *session

	form       form
	submitting bool
}

func NewAddModel(ctx context.Context, secrets service.SecretService, sess *session) *AddModel {
	value := newPasswordInput("secret")
	value.CharLimit = valueCharLimit

	return &AddModel{
		ctx:     ctx,
		secrets: secrets,
		sess:    sess,
		form:    newForm(newTextInput("name", nameCharLimit), value),
	}
}

func (m *AddModel) Init() tea.Cmd {
	m.form.reset()
	m.submitting = false
	return textinput.Blink
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.form.reset()
		return m, navigate(pageMenu, notice{text: fmt.Sprintf("Saved %q", msg.name)})
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
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
			m.submitting = true
			return m, cmdSave(m.sess.context(m.ctx), m.secrets, m.sess.master, m.form.value(0), m.form.value(1))
		}
	}

	return m, m.form.update(msg)
}

func (m *AddModel) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Name    │ ")
	b.WriteString(m.form.view(0))
	b.WriteString("\n")
	b.WriteString("Secret  │ ")
	b.WriteString(m.form.view(1))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}

	return renderPage("ADD SECRET", b.String(), "esc: back │ tab: next field │ enter: confirm")
}

// cmdSave seals and stores a secret. It is shared by the add and edit pages.
func cmdSave(ctx context.Context, secrets service.SecretService, master, name, value string) tea.Cmd {
	return func() tea.Msg {
		err := secrets.AddOrUpdate(ctx, master, name, value)
		return savedMsg{name: name, err: err}
	}
}

// cmdLookup checks that a secret exists without decrypting it.
func cmdLookup(ctx context.Context, secrets service.SecretService, name string) tea.Cmd {
	return func() tea.Msg {
		_, found, err := secrets.GetRaw(ctx, name)
		return lookupDoneMsg{name: name, found: found, err: err}
	}
}
