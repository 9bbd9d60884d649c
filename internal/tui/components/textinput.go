package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// TextInput wraps the bubbles textinput with a label and an error line.
type TextInput struct {
	model   textinput.Model
	label   string
	focused bool
	width   int
	id      string
	err     string
}

// NewTextInput creates a new TextInput component.
func NewTextInput(id, label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 30
	ti.Prompt = ""

	return &TextInput{
		model: ti,
		label: label,
		id:    id,
	}
}

// NewPasswordInput creates a TextInput that masks what is typed.
func NewPasswordInput(id, label string) *TextInput {
	t := NewTextInput(id, label)
	t.model.EchoMode = textinput.EchoPassword
	t.model.EchoCharacter = '•'
	return t
}

// ID returns the component's unique identifier.
func (t *TextInput) ID() string {
	return t.id
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// SetValue sets the text input value.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
}

// Value returns the current text input value.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// SetError sets the message shown under the input; empty clears it.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// Error returns the current error message.
func (t *TextInput) Error() string {
	return t.err
}

// SetWidth sets the width of the text input.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = width - len(t.label) - 5
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// SetCharLimit sets the character limit.
func (t *TextInput) SetCharLimit(limit int) {
	t.model.CharLimit = limit
}

// Update handles messages for the text input. It reports whether the value changed.
func (t *TextInput) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !t.focused {
		return nil, false
	}

	before := t.model.Value()
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd, t.model.Value() != before
}

// View renders the text input.
func (t *TextInput) View() string {
	labelStyle := styles.FormLabelStyle
	inputStyle := styles.FormInputStyle
	if t.focused {
		labelStyle = styles.FormLabelFocusedStyle
		inputStyle = styles.FormInputFocusedStyle
	}

	view := labelStyle.Render(t.label+": ") + inputStyle.Render(t.model.View())
	if t.err != "" {
		view += "\n" + styles.FieldErrorStyle.Render(t.err)
	}
	return view
}

// Reset clears the value and any error.
func (t *TextInput) Reset() {
	t.model.Reset()
	t.err = ""
}
