package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// Checkbox is a toggle checkbox component.
type Checkbox struct {
	label   string
	checked bool
	focused bool
	id      string
}

// NewCheckbox creates a new Checkbox component.
func NewCheckbox(id, label string) *Checkbox {
	return &Checkbox{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (c *Checkbox) ID() string {
	return c.id
}

// Focus focuses the checkbox.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus from the checkbox.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused returns whether the checkbox is focused.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Toggle toggles the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

// SetChecked sets the checkbox state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns whether the checkbox is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Update handles messages for the checkbox. It reports whether the box was toggled.
func (c *Checkbox) Update(msg tea.Msg) bool {
	if !c.focused {
		return false
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ":
			c.Toggle()
			return true
		}
	}
	return false
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	box := styles.CheckboxUncheckedStyle.Render("[ ]")
	if c.checked {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	}

	labelStyle := styles.FormLabelStyle
	if c.focused {
		labelStyle = styles.FormLabelFocusedStyle
	}
	return box + " " + labelStyle.Render(c.label)
}
