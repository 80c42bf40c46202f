package tui

import (
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the error overlay
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	sess    *session

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	showError    bool
	errorOverlay errorOverlayModel
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, sess *session, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		sess:      sess,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.sess.lock()
			return r, tea.Quit
		}

		// The overlay swallows every key until acknowledged.
		if r.showError {
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case ShowError:
		if msg.Err == nil {
			return r, nil
		}
		r.showError = true
		r.errorOverlay.message = humanizeError(msg.Err)
		return r, nil
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		cmd := r.current.Init()
		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(cmd, func() tea.Msg { return payload })
		}
		return r, cmd
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("VAULT", "", "")
	}

	body := r.current.View()
	if r.showError {
		body += "\n\n" + r.errorOverlay.View()
	}
	return body
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
