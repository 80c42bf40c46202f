package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardAccess interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// clearIfUnchanged empties the clipboard only when it still holds value, so
// anything the user copied afterwards survives.
func clearIfUnchanged(c clipboardAccess, value string) (bool, error) {
	current, err := c.ReadAll()
	if err != nil {
		return false, err
	}
	if current != value {
		return false, nil
	}
	if err = c.WriteAll(""); err != nil {
		return false, err
	}
	return true, nil
}

// scheduleClipboardClear returns nil when after is not positive.
func scheduleClipboardClear(c clipboardAccess, value string, after time.Duration) tea.Cmd {
	if after <= 0 {
		return nil
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		cleared, err := clearIfUnchanged(c, value)
		return clipboardClearedMsg{cleared: cleared, err: err}
	})
}
