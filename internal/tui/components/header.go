// Package components provides reusable TUI components for offerdesk.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	User   string
	Tabs   []string
	Active int
}

// Header is a component that displays the app title, screen tabs and the
// signed-in user.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetUser sets the signed-in user label.
func (h *Header) SetUser(user string) {
	h.data.User = user
}

// SetTabs sets the screen tabs and which one is active. Active -1 highlights none.
func (h *Header) SetTabs(tabs []string, active int) {
	h.data.Tabs = tabs
	h.data.Active = active
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("OFFERDESK")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	var tabs []string
	for i, tab := range h.data.Tabs {
		style := styles.TabStyle
		if i == h.data.Active {
			style = styles.TabActiveStyle
		}
		tabs = append(tabs, style.Render(tab))
	}

	left := title
	if len(tabs) > 0 {
		left += sep + strings.Join(tabs, "")
	}

	right := ""
	if h.data.User != "" {
		right = styles.HeaderLabelStyle.Render("User: ") + styles.HeaderValueStyle.Render(h.data.User)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
		gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if gap > 0 {
			return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
		}
	}

	if right == "" {
		return headerStyle.Render(left)
	}
	return headerStyle.Render(left + sep + right)
}
