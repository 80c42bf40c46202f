package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// keyPress builds the key message bubbletea would deliver for s.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes cmd synchronously and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func requireNavigate(t *testing.T, cmd tea.Cmd, page string) NavigateTo {
	t.Helper()
	nav, ok := run(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav
}

func requireShowError(t *testing.T, cmd tea.Cmd) error {
	t.Helper()
	msg, ok := run(t, cmd).(ShowError)
	require.True(t, ok, "expected ShowError")
	return msg.Err
}

func unlockedSession() *session {
	s := newSession(logger.Nop())
	s.unlock("Floroma", "vault-1")
	return s
}

type fakeClipboard struct {
	content  string
	readErr  error
	writeErr error
	writes   int
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.content, c.readErr
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes++
	c.content = text
	return nil
}

var errBoom = errors.New("boom")
