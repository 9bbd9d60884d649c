package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// MetricCards renders the dashboard summary cards side by side.
type MetricCards struct {
	cards []dashboard.Card
	width int
}

// NewMetricCards creates an empty card row.
func NewMetricCards() *MetricCards {
	return &MetricCards{}
}

// SetCards replaces the cards.
func (m *MetricCards) SetCards(cards []dashboard.Card) {
	m.cards = cards
}

// SetWidth sets the total width of the row.
func (m *MetricCards) SetWidth(width int) {
	m.width = width
}

// View renders the cards.
func (m *MetricCards) View() string {
	if len(m.cards) == 0 {
		return ""
	}

	cardWidth := 26
	if m.width > 0 {
		if w := m.width/len(m.cards) - 2; w > 18 {
			cardWidth = w
		}
	}

	rendered := make([]string, 0, len(m.cards))
	for _, c := range m.cards {
		rendered = append(rendered, renderCard(c, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderCard(c dashboard.Card, width int) string {
	var b strings.Builder
	b.WriteString(styles.HeaderLabelStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Render(c.Value))
	b.WriteString("\n")

	change := c.Change + " than last week"
	switch c.Trend {
	case dashboard.TrendUp:
		b.WriteString(styles.SuccessTextStyle.Render(c.Trend.Arrow() + " " + change))
	case dashboard.TrendDown:
		b.WriteString(styles.ErrorTextStyle.Render(c.Trend.Arrow() + " " + change))
	default:
		b.WriteString(styles.MutedTextStyle.Render(change))
	}

	return styles.BoxStyle.Width(width).Render(b.String())
}
