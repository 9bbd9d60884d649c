package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DayVisits is one day of the website visits series.
type DayVisits struct {
	Day     string  `json:"day"     yaml:"day"`
	Desktop float64 `json:"desktop" yaml:"desktop"`
	Mobile  float64 `json:"mobile"  yaml:"mobile"`
}

// DayCount is one day of the offers sent series.
type DayCount struct {
	Day   string  `json:"day"   yaml:"day"`
	Count float64 `json:"count" yaml:"count"`
}

// Stats is the GET /api/dashboard/stat response. The server keys both series
// by day name; the slices keep the order the days appeared in the body.
type Stats struct {
	WebsiteVisits []DayVisits `json:"website_visits" yaml:"website_visits"`
	OffersSent    []DayCount  `json:"offers_sent"    yaml:"offers_sent"`
}

// UnmarshalJSON decodes the day-keyed objects without losing key order.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw struct {
		WebsiteVisits json.RawMessage `json:"website_visits"`
		OffersSent    json.RawMessage `json:"offers_sent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.WebsiteVisits = nil
	s.OffersSent = nil

	err := eachKey(raw.WebsiteVisits, func(day string, value json.RawMessage) error {
		var v struct {
			Desktop float64 `json:"desktop"`
			Mobile  float64 `json:"mobile"`
		}
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("website_visits.%s: %w", day, err)
		}
		s.WebsiteVisits = append(s.WebsiteVisits, DayVisits{Day: day, Desktop: v.Desktop, Mobile: v.Mobile})
		return nil
	})
	if err != nil {
		return err
	}

	return eachKey(raw.OffersSent, func(day string, value json.RawMessage) error {
		var n float64
		if err := json.Unmarshal(value, &n); err != nil {
			return fmt.Errorf("offers_sent.%s: %w", day, err)
		}
		s.OffersSent = append(s.OffersSent, DayCount{Day: day, Count: n})
		return nil
	})
}

// eachKey walks a JSON object in document order. Missing or null input is a no-op.
func eachKey(data json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

var dayAbbreviations = map[string]string{
	"monday":    "Mon",
	"tuesday":   "Tue",
	"wednesday": "Wed",
	"thursday":  "Thu",
	"friday":    "Fri",
	"saturday":  "Sat",
	"sunday":    "Sun",
}

// AbbreviateDay maps a full day name to its three-letter form. Unknown names
// are returned unchanged.
func AbbreviateDay(day string) string {
	if abbr, ok := dayAbbreviations[strings.ToLower(day)]; ok {
		return abbr
	}
	return day
}

// ChartKind is how a chart is drawn.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Series is one named line or bar group.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a renderer-neutral chart description.
type Chart struct {
	Title      string
	Kind       ChartKind
	Categories []string
	Series     []Series
	Colors     []string
}

// Max returns the largest value across all series, or 0.
func (c Chart) Max() float64 {
	var m float64
	for _, s := range c.Series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	return m
}

// WebsiteVisitsChart builds the desktop/mobile bar chart.
func WebsiteVisitsChart(s Stats) Chart {
	c := Chart{
		Title:  "Website Visits",
		Kind:   ChartBar,
		Colors: []string{"#007867", "#FFAB00"},
	}
	desktop := Series{Name: "Desktop"}
	mobile := Series{Name: "Mobile"}
	for _, d := range s.WebsiteVisits {
		c.Categories = append(c.Categories, AbbreviateDay(d.Day))
		desktop.Values = append(desktop.Values, d.Desktop)
		mobile.Values = append(mobile.Values, d.Mobile)
	}
	c.Series = []Series{desktop, mobile}
	return c
}

// OffersSentChart builds the offers line chart.
func OffersSentChart(s Stats) Chart {
	c := Chart{
		Title:  "Offers Sent",
		Kind:   ChartLine,
		Colors: []string{"#1C252E", "#FFAB00"},
	}
	offers := Series{Name: "Offers"}
	for _, d := range s.OffersSent {
		c.Categories = append(c.Categories, AbbreviateDay(d.Day))
		offers.Values = append(offers.Values, d.Count)
	}
	c.Series = []Series{offers}
	return c
}
