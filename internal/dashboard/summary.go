package dashboard

import (
	"fmt"
	"math"
)

// Metrics are the counters of one week.
type Metrics struct {
	ActiveUsers float64 `json:"active_users" yaml:"active_users"`
	Clicks      float64 `json:"clicks"       yaml:"clicks"`
	Appearances float64 `json:"appearances"  yaml:"appearances"`
}

// Summary is the GET /api/dashboard/summary response.
type Summary struct {
	Current  Metrics `json:"current"  yaml:"current"`
	Previous Metrics `json:"previous" yaml:"previous"`
}

// Trend is the direction of a metric against the previous week.
type Trend int

const (
	TrendFlat Trend = iota
	TrendUp
	TrendDown
)

// Arrow returns the glyph shown next to the change.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return ""
	}
}

// Card is one metric tile.
type Card struct {
	Title    string  `json:"title"    yaml:"title"`
	Current  float64 `json:"current"  yaml:"current"`
	Previous float64 `json:"previous" yaml:"previous"`
	Value    string  `json:"value"    yaml:"value"`
	Change   string  `json:"change"   yaml:"change"`
	Trend    Trend   `json:"trend"    yaml:"trend"`
}

// Cards builds the three summary tiles.
func Cards(s Summary) []Card {
	return []Card{
		NewCard("Total active users", s.Current.ActiveUsers, s.Previous.ActiveUsers),
		NewCard("Total clicks", s.Current.Clicks, s.Previous.Clicks),
		NewCard("Total appearances", s.Current.Appearances, s.Previous.Appearances),
	}
}

// NewCard formats a tile from the two week values.
func NewCard(title string, current, previous float64) Card {
	return Card{
		Title:    title,
		Current:  current,
		Previous: previous,
		Value:    Thousands(current),
		Change:   PercentChange(current, previous),
		Trend:    TrendOf(current, previous),
	}
}

// Thousands renders v in thousands with one decimal, e.g. 12345 -> "12.3 k".
func Thousands(v float64) string {
	return fmt.Sprintf("%.1f k", v/1000)
}

// PercentChange is the absolute relative change with one decimal. A zero
// previous value yields "0%".
func PercentChange(current, previous float64) string {
	if previous == 0 {
		return "0%"
	}
	change := (current - previous) / previous * 100
	return fmt.Sprintf("%.1f%%", math.Abs(change))
}

// TrendOf compares the two week values.
func TrendOf(current, previous float64) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendFlat
	}
}
