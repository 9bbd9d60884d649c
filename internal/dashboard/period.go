// Package dashboard turns the summary and stat endpoints into metric cards and
// chart series, and exports the charts as a standalone HTML page.
package dashboard

import (
	"fmt"
	"strings"
)

// Period is the week a dashboard load covers, sent as ?filter=.
type Period string

const (
	PeriodThisWeek Period = "this-week"
	PeriodPrevWeek Period = "prev-week"
)

// Periods returns the selectable periods in display order.
func Periods() []Period {
	return []Period{PeriodThisWeek, PeriodPrevWeek}
}

// ParsePeriod validates s. Empty selects this-week.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "", PeriodThisWeek:
		return PeriodThisWeek, nil
	case PeriodPrevWeek:
		return PeriodPrevWeek, nil
	}
	return "", fmt.Errorf("unknown period %q (want this-week or prev-week)", s)
}

// Label returns the selector text for the period.
func (p Period) Label() string {
	switch p {
	case PeriodPrevWeek:
		return "Previous Week"
	default:
		return "This Week"
	}
}

// Next cycles to the other period.
func (p Period) Next() Period {
	if p == PeriodThisWeek {
		return PeriodPrevWeek
	}
	return PeriodThisWeek
}
