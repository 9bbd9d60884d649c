package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

type column struct {
	title string
	width int
	value func(offers.Offer) string
}

var offerColumns = []column{
	{"Name", 22, func(o offers.Offer) string { return o.UserName }},
	{"Email", 26, func(o offers.Offer) string { return o.Email }},
	{"Phone", 16, func(o offers.Offer) string { return o.Phone }},
	{"Company", 18, func(o offers.Offer) string { return o.Company }},
	{"Job Title", 18, func(o offers.Offer) string { return o.JobTitle }},
	{"Type", 14, func(o offers.Offer) string { return offers.Label(o.Type) }},
	{"Status", 10, func(o offers.Offer) string { return offers.Label(o.Status) }},
}

// OfferTable renders a page of offers with a movable cursor.
type OfferTable struct {
	rows   []offers.Offer
	cursor int
	width  int
	empty  string
}

// NewOfferTable creates an empty table.
func NewOfferTable() *OfferTable {
	return &OfferTable{empty: "No offers found"}
}

// SetRows replaces the rows and keeps the cursor in range.
func (t *OfferTable) SetRows(rows []offers.Offer) {
	t.rows = rows
	t.clamp()
}

// SetEmptyText sets what is shown when there are no rows.
func (t *OfferTable) SetEmptyText(s string) {
	t.empty = s
}

// SetWidth sets the available width; columns that do not fit are dropped
// from the right.
func (t *OfferTable) SetWidth(width int) {
	t.width = width
}

// MoveUp moves the cursor up one row.
func (t *OfferTable) MoveUp() {
	t.cursor--
	t.clamp()
}

// MoveDown moves the cursor down one row.
func (t *OfferTable) MoveDown() {
	t.cursor++
	t.clamp()
}

// Cursor returns the selected row index.
func (t *OfferTable) Cursor() int {
	return t.cursor
}

// Selected returns the offer under the cursor.
func (t *OfferTable) Selected() (offers.Offer, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return offers.Offer{}, false
	}
	return t.rows[t.cursor], true
}

func (t *OfferTable) clamp() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *OfferTable) columns() []column {
	if t.width <= 0 {
		return offerColumns
	}
	cols := make([]column, 0, len(offerColumns))
	used := 0
	for i, c := range offerColumns {
		// Name and Status always show.
		if i != 0 && c.title != "Status" && used+c.width+1+offerColumns[len(offerColumns)-1].width > t.width {
			continue
		}
		cols = append(cols, c)
		used += c.width + 1
	}
	return cols
}

// View renders the table.
func (t *OfferTable) View() string {
	cols := t.columns()

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(c.title, c.width)
	}
	b.WriteString(styles.TableHeaderStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	if len(t.rows) == 0 {
		b.WriteString(styles.MutedTextStyle.Render(t.empty))
		return b.String()
	}

	for r, o := range t.rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cell := pad(c.value(o), c.width)
			if c.title == "Status" {
				cell = styles.StatusStyle(offers.StatusBucket(o.Status).Color()).Render(cell)
			}
			cells[i] = cell
		}
		line := strings.Join(cells, " ")
		if r == t.cursor {
			b.WriteString(styles.TableCursorStyle.Render("›" + line))
		} else {
			b.WriteString(styles.TableRowStyle.Render(" " + line))
		}
		if r < len(t.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		return string(runes) + "…"
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
