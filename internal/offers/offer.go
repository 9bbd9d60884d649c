// Package offers models the offer list: the records the API returns, the
// client-side filter over one fetched page, and the sequenced list state that
// decides which page responses are applied.
package offers

import (
	"strings"

	"github.com/ettle/strcase"
)

// Offer is a single offer record as returned by GET /api/offers.
// Records are read-only on the client; changes come from re-fetching.
type Offer struct {
	ID       int     `json:"id"        yaml:"id"`
	UserName string  `json:"user_name" yaml:"user_name"`
	Email    string  `json:"email"     yaml:"email"`
	Phone    string  `json:"phone"     yaml:"phone"`
	Company  string  `json:"company"   yaml:"company"`
	JobTitle string  `json:"jobTitle"  yaml:"job_title"`
	Type     string  `json:"type"      yaml:"type"`
	Status   string  `json:"status"    yaml:"status"`
	Price    float64 `json:"price"     yaml:"price"`
}

// PlanType is an offer's plan category.
type PlanType string

const (
	PlanMonthly    PlanType = "monthly"
	PlanYearly     PlanType = "yearly"
	PlanPayAsYouGo PlanType = "pay_as_you_go"
)

// PlanTypes returns the plan categories in display order.
func PlanTypes() []PlanType {
	return []PlanType{PlanMonthly, PlanYearly, PlanPayAsYouGo}
}

// Valid reports whether p is a known plan category.
func (p PlanType) Valid() bool {
	switch p {
	case PlanMonthly, PlanYearly, PlanPayAsYouGo:
		return true
	}
	return false
}

// Label returns the human form of a tag, e.g. "pay_as_you_go" -> "Pay As You Go".
func Label(tag string) string {
	if tag == "" {
		return ""
	}
	return strcase.ToCase(tag, strcase.TitleCase, ' ')
}

// Label returns the display label for the plan.
func (p PlanType) Label() string {
	return Label(string(p))
}

// Status is an offer's lifecycle tag. The server may send values outside the
// known set; those are kept verbatim.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusPending  Status = "pending"
)

// Statuses returns the statuses offered by the status filter, after "All".
func Statuses() []Status {
	return []Status{StatusAccepted, StatusRejected, StatusPending}
}

// Bucket is the presentation color group of a status.
type Bucket int

const (
	BucketPending Bucket = iota
	BucketAccepted
	BucketRejected
)

// Color returns the hex color for the bucket.
func (b Bucket) Color() string {
	switch b {
	case BucketAccepted:
		return "#118D57"
	case BucketRejected:
		return "#B71D18"
	default:
		return "#B76E00"
	}
}

// StatusBucket maps a status to one of three color groups. Anything that is not
// accepted or rejected lands in the pending group.
func StatusBucket(status string) Bucket {
	switch Status(strings.ToLower(strings.TrimSpace(status))) {
	case StatusAccepted:
		return BucketAccepted
	case StatusRejected:
		return BucketRejected
	default:
		return BucketPending
	}
}

// Meta is the pagination metadata of a page response.
type Meta struct {
	CurrentPage int    `json:"current_page" yaml:"current_page"`
	From        int    `json:"from"         yaml:"from"`
	LastPage    int    `json:"last_page"    yaml:"last_page"`
	Path        string `json:"path"         yaml:"path"`
	PerPage     int    `json:"per_page"     yaml:"per_page"`
	To          int    `json:"to"           yaml:"to"`
	Total       int    `json:"total"        yaml:"total"`
}

// Links are the navigation URLs of a page response.
type Links struct {
	First string  `json:"first" yaml:"first"`
	Last  string  `json:"last"  yaml:"last"`
	Prev  *string `json:"prev"  yaml:"prev"`
	Next  *string `json:"next"  yaml:"next"`
}

// Page is one server page of offers.
type Page struct {
	Data  []Offer `json:"data"  yaml:"data"`
	Links Links   `json:"links" yaml:"links"`
	Meta  Meta    `json:"meta"  yaml:"meta"`
}
