package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const listNameWidth = 32

// ListModel decrypts and shows every secret. Values stay masked until the
// selected row is revealed; copying puts the value into the system clipboard
// and schedules its removal.
type ListModel struct {
	ctx        context.Context
	secrets    service.SecretService
	sess       *session
	clip       clipboardAccess
	clearAfter time.Duration

	items    []models.Secret
	idx      int
	revealed bool
	loading  bool
	status   string
	errMsg   string
}

func NewListModel(ctx context.Context, secrets service.SecretService, sess *session, clip clipboardAccess, clearAfter time.Duration) *ListModel {
	return &ListModel{
		ctx:        ctx,
		secrets:    secrets,
		sess:       sess,
		clip:       clip,
		clearAfter: clearAfter,
	}
}

func (m *ListModel) Init() tea.Cmd {
	m.items = nil
	m.idx = 0
	m.revealed = false
	m.status = ""
	m.errMsg = ""
	m.loading = true
	return m.cmdLoad()
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.items = nil
			m.errMsg = "Secrets could not be listed"
			return m, showError(msg.err)
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil
	case clipboardClearedMsg:
		switch {
		case msg.err != nil:
			m.errMsg = fmt.Sprintf("Clipboard was not cleared: %v", msg.err)
		case msg.cleared:
			m.status = "Clipboard cleared"
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.items = nil
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.revealed = false
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
			m.revealed = false
		}
	case key.Matches(msg, keys.reveal):
		m.revealed = !m.revealed
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.copy):
		return m.copySelected()
	}

	return m, nil
}

func (m *ListModel) copySelected() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		m.status = "Nothing to copy"
		return m, nil
	}

	item := m.items[m.idx]
	if err := m.clip.WriteAll(item.Value); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}

	m.sess.rememberCopy(item.Value)
	m.errMsg = ""
	m.status = fmt.Sprintf("Copied %q", item.Name)
	if m.clearAfter > 0 {
		m.status += fmt.Sprintf(", clipboard clears in %s", m.clearAfter)
	}
	return m, scheduleClipboardClear(m.clip, item.Value, m.clearAfter)
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx := m.sess.context(m.ctx)
	secrets := m.secrets
	master := m.sess.master

	return func() tea.Msg {
		items, err := secrets.List(ctx, master)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m *ListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Decrypting...")
	case len(m.items) == 0:
		b.WriteString("No secrets")
	default:
		nameWidth := lipgloss.Width("Name")
		for _, item := range m.items {
			if w := lipgloss.Width(fitText(item.Name, listNameWidth)); w > nameWidth {
				nameWidth = w
			}
		}

		b.WriteString(fmt.Sprintf("  %-*s │ %s\n", nameWidth, "Name", "Value"))
		b.WriteString(strings.Repeat("─", nameWidth+2))
		b.WriteString("─┼─")
		b.WriteString(strings.Repeat("─", 20))
		b.WriteString("\n")

		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			value := maskValue(item.Value, i == m.idx && m.revealed)
			b.WriteString(fmt.Sprintf("%s %-*s │ %s\n", cursor, nameWidth, fitText(item.Name, listNameWidth), value))
		}
	}

	renderMessages(&b, m.status, m.errMsg)

	return renderPage("SECRETS", strings.TrimRight(b.String(), "\n"), "esc: back │ ↑/↓: navigate │ space: show/hide │ c: copy │ r: reload")
}
