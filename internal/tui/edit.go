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

type editStage int

const (
	editStageName editStage = iota
	editStageValue
)

// EditModel replaces the value of an existing secret. The name is looked up
// first so a typo does not silently create a new entry.
type EditModel struct {
	ctx     context.Context
	secrets service.SecretService
	sess    *session

	stage   editStage
	name    textinput.Model
	value   textinput.Model
	target  string
	loading bool
}

func NewEditModel(ctx context.Context, secrets service.SecretService, sess *session) *EditModel {
	value := newPasswordInput("new secret")
	value.CharLimit = valueCharLimit

	return &EditModel{
		ctx:     ctx,
		secrets: secrets,
		sess:    sess,
		name:    newTextInput("name", nameCharLimit),
		value:   value,
	}
}

func (m *EditModel) Init() tea.Cmd {
	m.stage = editStageName
	m.target = ""
	m.loading = false
	m.name.SetValue("")
	m.value.SetValue("")
	m.value.Blur()
	m.name.Focus()
	return textinput.Blink
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if !msg.found {
			return m, showError(fmt.Errorf("%w: %q", errNoSuchEntry, msg.name))
		}
		m.target = msg.name
		m.stage = editStageValue
		m.name.Blur()
		m.value.Focus()
		return m, nil
	case savedMsg:
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		return m, navigate(pageMenu, notice{text: fmt.Sprintf("Updated %q", msg.name)})
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			if m.stage == editStageValue {
				return m, m.Init()
			}
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.enter):
			m.loading = true
			ctx := m.sess.context(m.ctx)
			if m.stage == editStageName {
				return m, cmdLookup(ctx, m.secrets, m.name.Value())
			}
			return m, cmdSave(ctx, m.secrets, m.sess.master, m.target, m.value.Value())
		}
	}

	var cmd tea.Cmd
	if m.stage == editStageName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.value, cmd = m.value.Update(msg)
	}
	return m, cmd
}

func (m *EditModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")

	if m.stage == editStageName {
		b.WriteString("Name        │ [")
		b.WriteString(m.name.View())
		b.WriteString("]")
		return renderPage("EDIT SECRET", b.String(), "esc: back │ enter: find")
	}

	b.WriteString("Name        │ ")
	b.WriteString(m.target)
	b.WriteString("\n")
	b.WriteString("New secret  │ [")
	b.WriteString(m.value.View())
	b.WriteString("]")

	return renderPage("EDIT SECRET", b.String(), "esc: other name │ enter: save")
}
