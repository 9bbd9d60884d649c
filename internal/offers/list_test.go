package offers

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
)

func newTestView(t *testing.T) (*ListView, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	v := NewListView(ListConfig{Logger: logging.NewWithWriter(&buf, logging.LevelDebug, false)})
	return v, &buf
}

func pageOf(total int, rows ...Offer) Page {
	return Page{Data: rows, Meta: Meta{Total: total}}
}

func TestNewListView_Defaults(t *testing.T) {
	v := NewListView(ListConfig{})

	if got := v.Window(); got != (Window{Page: 0, PerPage: 5}) {
		t.Errorf("Window() = %+v, want page 0 per page 5", got)
	}
	if !reflect.DeepEqual(v.PageSizes(), []int{5, 10, 25}) {
		t.Errorf("PageSizes() = %v", v.PageSizes())
	}
	if got := v.Filter(); got != NewFilter() {
		t.Errorf("Filter() = %+v, want defaults", got)
	}
}

func TestNewListView_InvalidPerPageFallsBack(t *testing.T) {
	v := NewListView(ListConfig{PerPage: 7, PageSizes: []int{10, 20, -1}})
	if got := v.Window().PerPage; got != 10 {
		t.Errorf("PerPage = %d, want first allowed size 10", got)
	}
	if !reflect.DeepEqual(v.PageSizes(), []int{10, 20}) {
		t.Errorf("PageSizes() = %v, want non-positive sizes dropped", v.PageSizes())
	}
}

func TestListView_MountRequestsFirstPage(t *testing.T) {
	v, _ := newTestView(t)

	req := v.Mount()
	if req.Seq != 1 || req.Window != (Window{Page: 0, PerPage: 5}) {
		t.Errorf("Mount() = %+v", req)
	}
	if req.Window.WirePage() != 1 {
		t.Errorf("wire page = %d, want 1", req.Window.WirePage())
	}
	if !v.Loading() {
		t.Error("Loading() should be true while the request is outstanding")
	}
}

func TestListView_MountResetsFilter(t *testing.T) {
	v := NewListView(ListConfig{SearchField: FieldEmail})
	v.SetSearch("acme")
	v.SetStatusFilter("accepted")
	v.SetSearchField(FieldCompany)

	v.Mount()

	f := v.Filter()
	if f.Search != "" || f.Status != All || f.Type != All || f.Field != FieldEmail {
		t.Errorf("filter after Mount = %+v", f)
	}
}

func TestListView_SetRowsPerPageResetsPage(t *testing.T) {
	v, _ := newTestView(t)
	v.Resolve(v.Mount().Seq, pageOf(100), nil)

	if _, err := v.SetPage(3); err != nil {
		t.Fatalf("SetPage: %v", err)
	}

	for _, size := range []int{10, 25, 5} {
		req, err := v.SetRowsPerPage(size)
		if err != nil {
			t.Fatalf("SetRowsPerPage(%d): %v", size, err)
		}
		if req.Window.Page != 0 || req.Window.PerPage != size {
			t.Errorf("SetRowsPerPage(%d) issued %+v, want page 0", size, req.Window)
		}
		if v.Window().Page != 0 {
			t.Errorf("page index = %d after SetRowsPerPage", v.Window().Page)
		}
		v.SetPage(2)
	}
}

func TestListView_SetRowsPerPageRejectsUnknownSize(t *testing.T) {
	v, _ := newTestView(t)
	v.Mount()
	before := v.Seq()

	_, err := v.SetRowsPerPage(7)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v.Seq() != before {
		t.Error("rejected size must not issue a request")
	}
	if v.Window().PerPage != 5 {
		t.Errorf("PerPage changed to %d", v.Window().PerPage)
	}
}

func TestListView_SetPage(t *testing.T) {
	v, _ := newTestView(t)
	v.Mount()

	req, err := v.SetPage(2)
	if err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if req.Window.Page != 2 || req.Window.WirePage() != 3 {
		t.Errorf("SetPage(2) = %+v", req)
	}

	again, _ := v.SetPage(2)
	if again.Seq <= req.Seq {
		t.Error("setting the same page should still issue a new request")
	}

	if _, err := v.SetPage(-1); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("SetPage(-1) error = %v", err)
	}
}

func TestListView_NextPrevPage(t *testing.T) {
	v, _ := newTestView(t)
	v.Resolve(v.Mount().Seq, pageOf(12), nil)

	if _, ok := v.PrevPage(); ok {
		t.Error("PrevPage on first page should not issue")
	}
	if req, ok := v.NextPage(); !ok || req.Window.Page != 1 {
		t.Errorf("NextPage = %+v, %v", req, ok)
	}
	if req, ok := v.NextPage(); !ok || req.Window.Page != 2 {
		t.Errorf("NextPage = %+v, %v", req, ok)
	}
	if _, ok := v.NextPage(); ok {
		t.Error("NextPage past the last page should not issue")
	}
	if req, ok := v.PrevPage(); !ok || req.Window.Page != 1 {
		t.Errorf("PrevPage = %+v, %v", req, ok)
	}
}

func TestListView_CycleRowsPerPage(t *testing.T) {
	v, _ := newTestView(t)
	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, v.CycleRowsPerPage().Window.PerPage)
	}
	if !reflect.DeepEqual(got, []int{10, 25, 5, 10}) {
		t.Errorf("cycle = %v", got)
	}
}

func TestListView_FilterSettersNeverFetch(t *testing.T) {
	v, _ := newTestView(t)
	v.Mount()
	seq := v.Seq()

	v.SetSearch("x")
	v.SetSearchField(FieldEmail)
	v.SetTypeFilter("yearly")
	v.SetStatusFilter("pending")

	if v.Seq() != seq {
		t.Errorf("filter changes issued requests: seq %d -> %d", seq, v.Seq())
	}
}

func TestListView_StatusFilterKeepsServerTotal(t *testing.T) {
	v, _ := newTestView(t)
	rows := []Offer{
		{ID: 1, Status: "pending"},
		{ID: 2, Status: "accepted"},
		{ID: 3, Status: "rejected"},
		{ID: 4, Status: "pending"},
		{ID: 5, Status: "pending"},
	}
	if out := v.Resolve(v.Mount().Seq, pageOf(23, rows...), nil); out != OutcomeApplied {
		t.Fatalf("Resolve = %v", out)
	}

	v.SetStatusFilter("accepted")

	if got := ids(v.Visible()); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Visible() = %v, want [2]", got)
	}
	if v.Total() != 23 {
		t.Errorf("Total() = %d, want server total 23", v.Total())
	}
	if !v.FilterActive() {
		t.Error("FilterActive() should be true")
	}
	if len(v.Rows()) != 5 {
		t.Errorf("Rows() = %d, want the whole page", len(v.Rows()))
	}
}

func TestListView_VisibleRecomputedEveryCall(t *testing.T) {
	v, _ := newTestView(t)
	v.Resolve(v.Mount().Seq, pageOf(5, sampleOffers()...), nil)

	if len(v.Visible()) != 5 {
		t.Fatalf("expected 5 visible rows")
	}
	v.SetSearchField(FieldEmail)
	v.SetSearch("ACME")
	if got := ids(v.Visible()); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Visible() = %v, want [1 3]", got)
	}
	v.SetSearch("")
	if len(v.Visible()) != 5 {
		t.Error("clearing search should show the whole page again")
	}
}

func TestListView_FailedFetchKeepsLastGoodPage(t *testing.T) {
	v, logs := newTestView(t)
	first := pageOf(23, sampleOffers()...)
	v.Resolve(v.Mount().Seq, first, nil)

	req, _ := v.SetPage(1)
	fetchErr := apperrors.NetworkUnavailable("api.example.com", errors.New("connection refused"))
	if out := v.Resolve(req.Seq, Page{}, fetchErr); out != OutcomeFailed {
		t.Fatalf("Resolve = %v, want failed", out)
	}

	if !reflect.DeepEqual(v.Rows(), first.Data) {
		t.Error("rows should still be page 0")
	}
	if v.Total() != 23 {
		t.Errorf("Total() = %d, want 23", v.Total())
	}
	if !errors.Is(v.LastError(), apperrors.ErrNetwork) {
		t.Errorf("LastError() = %v", v.LastError())
	}
	if v.Loading() {
		t.Error("Loading() should be false after failure")
	}
	if !strings.Contains(logs.String(), "error fetching offers") {
		t.Errorf("failure was not logged:\n%s", logs.String())
	}
}

func TestListView_StaleResponseDiscarded(t *testing.T) {
	v, _ := newTestView(t)
	v.Mount()

	slow, _ := v.SetPage(1)
	fast, _ := v.SetPage(2)

	newer := pageOf(30, Offer{ID: 11})
	if out := v.Resolve(fast.Seq, newer, nil); out != OutcomeApplied {
		t.Fatalf("newest response = %v", out)
	}
	if out := v.Resolve(slow.Seq, pageOf(30, Offer{ID: 6}), nil); out != OutcomeStale {
		t.Fatalf("superseded response = %v, want stale", out)
	}
	if got := ids(v.Rows()); !reflect.DeepEqual(got, []int{11}) {
		t.Errorf("Rows() = %v, want newest page", got)
	}

	// A late error for an old request must not mark the view failed either.
	if out := v.Resolve(slow.Seq, Page{}, errors.New("late")); out != OutcomeStale {
		t.Errorf("late error = %v, want stale", out)
	}
	if v.LastError() != nil {
		t.Errorf("LastError() = %v", v.LastError())
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[Outcome]string{
		OutcomeApplied: "applied",
		OutcomeStale:   "stale",
		OutcomeFailed:  "failed",
		Outcome(9):     "unknown",
	} {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}
