package tui

import (
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in the router.
const (
	pageSetup  = "setup"
	pageLogin  = "login"
	pageMenu   = "menu"
	pageAdd    = "add"
	pageEdit   = "edit"
	pageList   = "list"
	pageDelete = "delete"
	pageReset  = "reset"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// ShowError opens the error overlay. The overlay stays until the user
// acknowledges it.
type ShowError struct {
	Err error
}

// notice is a one-line success message shown on the page it is delivered to.
type notice struct {
	text string
}

type setupDoneMsg struct {
	created bool
	vaultID string
	err     error
}

type loginResultMsg struct {
	ok      bool
	vaultID string
	err     error
}

type savedMsg struct {
	name string
	err  error
}

type lookupDoneMsg struct {
	name  string
	found bool
	err   error
}

type listLoadedMsg struct {
	items []models.Secret
	err   error
}

type deletedMsg struct {
	name string
	err  error
}

type resetDoneMsg struct {
	err error
}

type clipboardClearedMsg struct {
	cleared bool
	err     error
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func showError(err error) tea.Cmd {
	return func() tea.Msg { return ShowError{Err: err} }
}
