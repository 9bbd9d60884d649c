package offers

import "fmt"

// Window is the client-controlled slice of server records: a zero-based page
// index and a page size.
type Window struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// WirePage is the 1-based page number sent to the API.
func (w Window) WirePage() int {
	return w.Page + 1
}

// PageCount returns how many pages total records span at this page size.
func (w Window) PageCount(total int) int {
	if w.PerPage <= 0 || total <= 0 {
		return 0
	}
	return (total + w.PerPage - 1) / w.PerPage
}

// Range returns the 1-based positions of the first and last record the window
// covers out of total. Both are zero when total is zero.
func (w Window) Range(total int) (from, to int) {
	if total <= 0 || w.PerPage <= 0 {
		return 0, 0
	}
	from = w.Page*w.PerPage + 1
	to = min((w.Page+1)*w.PerPage, total)
	if from > total {
		return total, total
	}
	return from, to
}

// RangeLabel renders the pagination caption, e.g. "1–5 of 23".
func (w Window) RangeLabel(total int) string {
	from, to := w.Range(total)
	return fmt.Sprintf("%d–%d of %d", from, to, total)
}
