package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	// ButtonStylePrimary is the default button style.
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleSecondary is a less prominent button style.
	ButtonStyleSecondary
	// ButtonStyleDanger is for destructive actions.
	ButtonStyleDanger
)

// Button is a focusable button component.
type Button struct {
	label    string
	busy     string
	focused  bool
	disabled bool
	id       string
	style    ButtonStyle
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
		style: ButtonStylePrimary,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// SetBusy disables the button and shows label instead; empty re-enables it.
func (b *Button) SetBusy(label string) {
	b.busy = label
	b.disabled = label != ""
}

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Update reports whether the message activates the button.
func (b *Button) Update(msg tea.Msg) bool {
	if !b.focused || b.disabled {
		return false
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ":
			return true
		}
	}
	return false
}

// View renders the button.
func (b *Button) View() string {
	label := b.label
	if b.busy != "" {
		label = b.busy
	}
	return b.lipglossStyle().Render(label)
}

func (b *Button) lipglossStyle() lipgloss.Style {
	if b.disabled {
		return styles.ButtonSecondaryUnfocusedStyle
	}
	switch b.style {
	case ButtonStyleSecondary:
		if b.focused {
			return styles.ButtonSecondaryStyle
		}
		return styles.ButtonSecondaryUnfocusedStyle
	case ButtonStyleDanger:
		if b.focused {
			return styles.ButtonDangerStyle
		}
		return styles.ButtonDangerUnfocusedStyle
	default:
		if b.focused {
			return styles.ButtonPrimaryStyle
		}
		return styles.ButtonPrimaryUnfocusedStyle
	}
}
