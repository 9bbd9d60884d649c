package offers

import (
	"fmt"
	"strings"
)

// All is the unconstrained value of the type and status filters.
const All = "All"

// SearchField names the offer attribute the search text is matched against.
type SearchField string

const (
	FieldName     SearchField = "name"
	FieldEmail    SearchField = "email"
	FieldPhone    SearchField = "phone"
	FieldCompany  SearchField = "company"
	FieldJobTitle SearchField = "job_title"
	FieldType     SearchField = "type"
	FieldStatus   SearchField = "status"
)

// SearchFields returns the searchable attributes in display order.
func SearchFields() []SearchField {
	return []SearchField{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldJobTitle, FieldType, FieldStatus}
}

// ParseSearchField accepts a field name or its wire spelling (user_name, jobTitle).
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "user_name":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "phone":
		return FieldPhone, nil
	case "company":
		return FieldCompany, nil
	case "job_title", "jobtitle":
		return FieldJobTitle, nil
	case "type":
		return FieldType, nil
	case "status":
		return FieldStatus, nil
	}
	return "", fmt.Errorf("unknown search field %q", s)
}

// Label returns the column heading for the field.
func (f SearchField) Label() string {
	return Label(string(f))
}

// Value returns the attribute of o that f selects.
func (f SearchField) Value(o Offer) string {
	switch f {
	case FieldEmail:
		return o.Email
	case FieldPhone:
		return o.Phone
	case FieldCompany:
		return o.Company
	case FieldJobTitle:
		return o.JobTitle
	case FieldType:
		return o.Type
	case FieldStatus:
		return o.Status
	default:
		return o.UserName
	}
}

// Filter is the client-local narrowing applied to the fetched page.
type Filter struct {
	Search string
	Field  SearchField
	Type   string
	Status string
}

// NewFilter returns the default filter: empty search on name, type and status All.
func NewFilter() Filter {
	return Filter{
		Field:  FieldName,
		Type:   All,
		Status: All,
	}
}

// Match reports whether o passes the search, type and status constraints.
func (f Filter) Match(o Offer) bool {
	field := f.Field
	if field == "" {
		field = FieldName
	}
	if !strings.Contains(strings.ToLower(field.Value(o)), strings.ToLower(f.Search)) {
		return false
	}
	if !isAll(f.Type) && !strings.EqualFold(o.Type, f.Type) {
		return false
	}
	if !isAll(f.Status) && !strings.EqualFold(o.Status, f.Status) {
		return false
	}
	return true
}

// Active reports whether the filter can hide any record.
func (f Filter) Active() bool {
	return f.Search != "" || !isAll(f.Type) || !isAll(f.Status)
}

// Apply returns the records of rows that match f, in their original order.
func (f Filter) Apply(rows []Offer) []Offer {
	out := make([]Offer, 0, len(rows))
	for _, o := range rows {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}
