package offers

import (
	"reflect"
	"testing"
)

func sampleOffers() []Offer {
	return []Offer{
		{ID: 1, UserName: "Jane Cooper", Email: "jane@acme.io", Company: "Acme", JobTitle: "CTO", Type: "monthly", Status: "accepted", Price: 120},
		{ID: 2, UserName: "Wade Warren", Email: "wade@globex.com", Company: "Globex", JobTitle: "Engineer", Type: "yearly", Status: "rejected", Price: 900},
		{ID: 3, UserName: "Esther Howard", Email: "esther@ACME.io", Company: "Acme", JobTitle: "Designer", Type: "pay_as_you_go", Status: "pending", Price: 15},
		{ID: 4, UserName: "Cameron Williamson", Email: "cam@initech.com", Company: "Initech", JobTitle: "Manager", Type: "Monthly", Status: "Accepted", Price: 99},
		{ID: 5, UserName: "Brooklyn Simmons", Email: "brook@umbrella.com", Company: "Umbrella", JobTitle: "Analyst", Type: "yearly", Status: "on_hold", Price: 450},
	}
}

func ids(rows []Offer) []int {
	out := make([]int, len(rows))
	for i, o := range rows {
		out[i] = o.ID
	}
	return out
}

func TestFilter_DefaultMatchesEverything(t *testing.T) {
	rows := sampleOffers()
	got := NewFilter().Apply(rows)
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("default filter changed the page: got %v", ids(got))
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name  string
		field SearchField
		text  string
		want  []int
	}{
		{"name lower", FieldName, "cooper", []int{1}},
		{"name mixed", FieldName, "wILL", []int{4}},
		{"email uppercase", FieldEmail, "ACME", []int{1, 3}},
		{"company", FieldCompany, "acme", []int{1, 3}},
		{"job title", FieldJobTitle, "engin", []int{2}},
		{"status", FieldStatus, "ACC", []int{1, 4}},
		{"type", FieldType, "pay_as", []int{3}},
		{"absent", FieldEmail, "nowhere", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			f.Field = tt.field
			f.Search = tt.text
			if got := ids(f.Apply(sampleOffers())); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_SearchSubstringOfFieldAlwaysIncluded(t *testing.T) {
	for _, o := range sampleOffers() {
		for _, field := range SearchFields() {
			value := field.Value(o)
			if len(value) < 3 {
				continue
			}
			f := NewFilter()
			f.Field = field
			f.Search = value[1:3]
			if !f.Match(o) {
				t.Errorf("offer %d field %s: substring %q of %q not matched", o.ID, field, f.Search, value)
			}
		}
	}
}

func TestFilter_TypeExcludesOthersAndPreservesOrder(t *testing.T) {
	f := NewFilter()
	f.Type = "MONTHLY"

	got := f.Apply(sampleOffers())
	if !reflect.DeepEqual(ids(got), []int{1, 4}) {
		t.Errorf("type filter = %v, want [1 4]", ids(got))
	}
	for _, o := range got {
		if o.Type != "monthly" && o.Type != "Monthly" {
			t.Errorf("unexpected type %q", o.Type)
		}
	}
}

func TestFilter_StatusAndTypeCombine(t *testing.T) {
	f := NewFilter()
	f.Type = "yearly"
	f.Status = "rejected"
	if got := ids(f.Apply(sampleOffers())); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("combined filter = %v, want [2]", got)
	}

	f.Search = "brook"
	if got := ids(f.Apply(sampleOffers())); len(got) != 0 {
		t.Errorf("all three constraints must hold, got %v", got)
	}
}

func TestFilter_AllIsCaseInsensitive(t *testing.T) {
	f := Filter{Type: "all", Status: ""}
	if got := f.Apply(sampleOffers()); len(got) != 5 {
		t.Errorf("expected all rows, got %d", len(got))
	}
}

func TestFilter_Active(t *testing.T) {
	if NewFilter().Active() {
		t.Error("default filter should be inactive")
	}
	for _, f := range []Filter{
		{Search: "x", Type: All, Status: All},
		{Type: "yearly", Status: All},
		{Type: All, Status: "pending"},
	} {
		if !f.Active() {
			t.Errorf("%+v should be active", f)
		}
	}
}

func TestParseSearchField(t *testing.T) {
	tests := map[string]SearchField{
		"name":      FieldName,
		"user_name": FieldName,
		"EMAIL":     FieldEmail,
		"jobTitle":  FieldJobTitle,
		"job_title": FieldJobTitle,
		"status":    FieldStatus,
	}
	for in, want := range tests {
		got, err := ParseSearchField(in)
		if err != nil || got != want {
			t.Errorf("ParseSearchField(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseSearchField("price"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestSearchField_ValueNameMapsToUserName(t *testing.T) {
	o := Offer{UserName: "Jane"}
	if got := FieldName.Value(o); got != "Jane" {
		t.Errorf("name field = %q", got)
	}
	if got := SearchField("").Value(o); got != "Jane" {
		t.Errorf("empty field should default to name, got %q", got)
	}
}
