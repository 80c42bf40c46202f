package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	nameCharLimit     = 256
	valueCharLimit    = 4096
	passwordCharLimit = 256
	inputWidth        = 40
)

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = inputWidth
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newTextInput(placeholder, passwordCharLimit)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// form is an ordered group of inputs with a single focused field.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.reset()
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// reset clears every field and focuses the first one.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(i int) string {
	return "[" + f.inputs[i].View() + "]"
}
