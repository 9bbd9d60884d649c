package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// BarChart draws a dashboard chart with block characters. Bar charts get one
// horizontal bar per series per category; line charts become a sparkline row
// per series.
type BarChart struct {
	chart dashboard.Chart
	width int
}

// NewBarChart creates a chart component.
func NewBarChart(c dashboard.Chart) *BarChart {
	return &BarChart{chart: c, width: 60}
}

// SetChart replaces the data.
func (b *BarChart) SetChart(c dashboard.Chart) {
	b.chart = c
}

// SetWidth sets the drawing width.
func (b *BarChart) SetWidth(width int) {
	if width > 0 {
		b.width = width
	}
}

// View renders the chart.
func (b *BarChart) View() string {
	var sb strings.Builder
	sb.WriteString(styles.SectionTitleStyle.Render(b.chart.Title))
	sb.WriteString("\n")

	if len(b.chart.Categories) == 0 {
		sb.WriteString(styles.MutedTextStyle.Render("No data"))
		return sb.String()
	}

	if b.chart.Kind == dashboard.ChartLine {
		sb.WriteString(b.lineView())
	} else {
		sb.WriteString(b.barView())
	}
	sb.WriteString(b.legend())
	return sb.String()
}

func (b *BarChart) barView() string {
	top := b.chart.Max()
	barWidth := b.width - 14
	if barWidth < 10 {
		barWidth = 10
	}

	var sb strings.Builder
	for i, cat := range b.chart.Categories {
		for s, series := range b.chart.Series {
			label := ""
			if s == 0 {
				label = cat
			}
			v := valueAt(series.Values, i)
			n := 0
			if top > 0 && v > 0 {
				n = int(math.Round(v / top * float64(barWidth)))
			}
			bar := b.seriesStyle(s).Render(strings.Repeat("█", n))
			sb.WriteString(fmt.Sprintf("%-4s %s %s\n", label, bar, styles.MutedTextStyle.Render(formatValue(v))))
		}
	}
	return sb.String()
}

func (b *BarChart) lineView() string {
	top := b.chart.Max()

	var sb strings.Builder
	header := make([]string, len(b.chart.Categories))
	for i, cat := range b.chart.Categories {
		header[i] = fmt.Sprintf("%-4s", cat)
	}

	for s, series := range b.chart.Series {
		cells := make([]string, len(b.chart.Categories))
		for i := range b.chart.Categories {
			v := valueAt(series.Values, i)
			level := 0
			if top > 0 && v > 0 {
				level = int(math.Round(v / top * float64(len(sparkLevels)-1)))
			}
			cells[i] = fmt.Sprintf("%-4s", string(sparkLevels[level]))
		}
		sb.WriteString(b.seriesStyle(s).Render(strings.Join(cells, "")))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.MutedTextStyle.Render(strings.Join(header, "")))
	sb.WriteString("\n")
	return sb.String()
}

func (b *BarChart) legend() string {
	parts := make([]string, 0, len(b.chart.Series))
	for s, series := range b.chart.Series {
		parts = append(parts, b.seriesStyle(s).Render("■")+" "+series.Name)
	}
	return strings.Join(parts, "  ")
}

func (b *BarChart) seriesStyle(i int) lipgloss.Style {
	if i < len(b.chart.Colors) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(b.chart.Colors[i]))
	}
	return lipgloss.NewStyle().Foreground(styles.Secondary)
}

func valueAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
