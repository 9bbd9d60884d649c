package components

import (
	"fmt"
	"strings"

	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// PaginationData is what the pagination row shows.
type PaginationData struct {
	Window   offers.Window
	Total    int
	Shown    int
	Filtered bool
	HasPrev  bool
	HasNext  bool
}

// Pagination renders "Rows per page", the "from–to of total" range and the
// page arrows under the offer table.
type Pagination struct {
	data PaginationData
}

// NewPagination creates a pagination row.
func NewPagination() *Pagination {
	return &Pagination{}
}

// SetData replaces the data.
func (p *Pagination) SetData(data PaginationData) {
	p.data = data
}

// View renders the row.
func (p *Pagination) View() string {
	d := p.data

	prev := styles.MutedTextStyle.Render("‹")
	if d.HasPrev {
		prev = styles.KeyStyle.Render("‹")
	}
	next := styles.MutedTextStyle.Render("›")
	if d.HasNext {
		next = styles.KeyStyle.Render("›")
	}

	parts := []string{
		styles.HeaderLabelStyle.Render(fmt.Sprintf("Rows per page: %d", d.Window.PerPage)),
		styles.HeaderValueStyle.Render(d.Window.RangeLabel(d.Total)),
		prev + " " + next,
	}
	line := strings.Join(parts, "   ")

	if d.Filtered {
		line += "   " + styles.WarningTextStyle.Render(fmt.Sprintf("filter active: %d shown on this page", d.Shown))
	}
	return line
}
