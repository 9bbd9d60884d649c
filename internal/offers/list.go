package offers

import (
	"fmt"
	"slices"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
)

// DefaultPerPage is the initial page size.
const DefaultPerPage = 5

// DefaultPageSizes returns the allowed page sizes when none are configured.
func DefaultPageSizes() []int {
	return []int{5, 10, 25}
}

// FetchRequest asks the caller to load one page. Seq identifies the request;
// pass it back to Resolve with the result.
type FetchRequest struct {
	Seq    uint64
	Window Window
}

// Outcome is what Resolve did with a response.
type Outcome int

const (
	// OutcomeApplied means the page replaced the displayed records.
	OutcomeApplied Outcome = iota
	// OutcomeStale means a newer request was issued and the response was dropped.
	OutcomeStale
	// OutcomeFailed means the request failed and the last good page stays.
	OutcomeFailed
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ListConfig configures a ListView.
type ListConfig struct {
	PerPage     int
	PageSizes   []int
	SearchField SearchField
	// Logger receives swallowed fetch failures. Nil uses the global logger.
	Logger *logging.Logger
}

// ListView is the state behind the offer table. It owns the page window and
// filter, keeps the last successfully fetched page, and tags every fetch with a
// sequence number so only the newest request's response is applied.
//
// ListView is not safe for concurrent use; drive it from one event loop.
type ListView struct {
	window       Window
	sizes        []int
	defaultField SearchField
	filter       Filter

	page    Page
	loaded  bool
	seq     uint64
	pending bool
	lastErr error

	logger *logging.Logger
}

// NewListView creates a list view. Invalid or missing settings fall back to
// the defaults.
func NewListView(cfg ListConfig) *ListView {
	sizes := slices.Clone(cfg.PageSizes)
	sizes = slices.DeleteFunc(sizes, func(n int) bool { return n <= 0 })
	if len(sizes) == 0 {
		sizes = DefaultPageSizes()
	}
	perPage := cfg.PerPage
	if !slices.Contains(sizes, perPage) {
		perPage = sizes[0]
		if slices.Contains(sizes, DefaultPerPage) {
			perPage = DefaultPerPage
		}
	}
	field := cfg.SearchField
	if field == "" {
		field = FieldName
	}

	v := &ListView{
		window:       Window{Page: 0, PerPage: perPage},
		sizes:        sizes,
		defaultField: field,
		logger:       cfg.Logger,
	}
	v.filter = v.initialFilter()
	return v
}

func (v *ListView) initialFilter() Filter {
	f := NewFilter()
	f.Field = v.defaultField
	return f
}

func (v *ListView) log() *logging.Logger {
	if v.logger != nil {
		return v.logger
	}
	return logging.Global()
}

// issue bumps the sequence and returns a request for the current window.
func (v *ListView) issue() FetchRequest {
	v.seq++
	v.pending = true
	return FetchRequest{Seq: v.seq, Window: v.window}
}

// Mount resets the filter and the page index to their defaults, drops any
// fetched records and requests the first page.
func (v *ListView) Mount() FetchRequest {
	v.filter = v.initialFilter()
	v.window.Page = 0
	v.page = Page{}
	v.loaded = false
	v.lastErr = nil
	return v.issue()
}

// Refresh requests the current window again.
func (v *ListView) Refresh() FetchRequest {
	return v.issue()
}

// SetPage moves to page n (zero-based) and requests it. Setting the current
// page again still re-fetches.
func (v *ListView) SetPage(n int) (FetchRequest, error) {
	if n < 0 {
		return FetchRequest{}, apperrors.New(apperrors.ErrValidation, fmt.Sprintf("page must be non-negative, got %d", n))
	}
	v.window.Page = n
	return v.issue(), nil
}

// NextPage requests the following page if the server total says there is one.
func (v *ListView) NextPage() (FetchRequest, bool) {
	if v.window.Page+1 >= v.window.PageCount(v.Total()) {
		return FetchRequest{}, false
	}
	v.window.Page++
	return v.issue(), true
}

// PrevPage requests the preceding page unless already on the first.
func (v *ListView) PrevPage() (FetchRequest, bool) {
	if v.window.Page == 0 {
		return FetchRequest{}, false
	}
	v.window.Page--
	return v.issue(), true
}

// SetRowsPerPage changes the page size, resets the page index to 0 and
// requests the first page. Sizes outside the allowed set are rejected and
// nothing is requested.
func (v *ListView) SetRowsPerPage(n int) (FetchRequest, error) {
	if !slices.Contains(v.sizes, n) {
		return FetchRequest{}, apperrors.WithSuggestion(
			apperrors.ErrValidation,
			fmt.Sprintf("rows per page must be one of %v, got %d", v.sizes, n),
			"Set offers.page_sizes in your config to allow other sizes.",
		)
	}
	v.window.PerPage = n
	v.window.Page = 0
	return v.issue(), nil
}

// CycleRowsPerPage switches to the next allowed page size, wrapping around.
func (v *ListView) CycleRowsPerPage() FetchRequest {
	i := slices.Index(v.sizes, v.window.PerPage)
	next := v.sizes[(i+1)%len(v.sizes)]
	req, _ := v.SetRowsPerPage(next)
	return req
}

// Resolve applies the response to request seq. Responses to anything but the
// newest request are dropped. A failure is logged and leaves the last good
// page displayed.
func (v *ListView) Resolve(seq uint64, page Page, err error) Outcome {
	if seq != v.seq {
		v.log().Debug("discarding stale offers response", "seq", seq, "latest", v.seq)
		return OutcomeStale
	}
	v.pending = false

	if err != nil {
		v.lastErr = err
		v.log().Warn("error fetching offers",
			"page", v.window.WirePage(),
			"per_page", v.window.PerPage,
			"error", err,
		)
		return OutcomeFailed
	}

	v.page = page
	v.loaded = true
	v.lastErr = nil
	return OutcomeApplied
}

// SetSearch sets the search text. It never triggers a fetch.
func (v *ListView) SetSearch(s string) {
	v.filter.Search = s
}

// SetSearchField selects the attribute the search text is matched against.
func (v *ListView) SetSearchField(f SearchField) {
	v.filter.Field = f
}

// SetTypeFilter sets the plan type constraint: All or a plan tag.
func (v *ListView) SetTypeFilter(t string) {
	v.filter.Type = t
}

// SetStatusFilter sets the status constraint: All or a status tag.
func (v *ListView) SetStatusFilter(s string) {
	v.filter.Status = s
}

// Filter returns the current filter state.
func (v *ListView) Filter() Filter {
	return v.filter
}

// Visible returns the fetched records that pass the filter. It is recomputed
// on every call.
func (v *ListView) Visible() []Offer {
	return v.filter.Apply(v.page.Data)
}

// Rows returns every record of the last good page, unfiltered.
func (v *ListView) Rows() []Offer {
	return v.page.Data
}

// Total is the server-reported record count across all pages. It ignores the
// client-side filter.
func (v *ListView) Total() int {
	return v.page.Meta.Total
}

// FilterActive reports whether the filter may be hiding rows, in which case
// Total no longer matches what is shown.
func (v *ListView) FilterActive() bool {
	return v.filter.Active()
}

// Window returns the current page window.
func (v *ListView) Window() Window {
	return v.window
}

// PageSizes returns the allowed page sizes.
func (v *ListView) PageSizes() []int {
	return slices.Clone(v.sizes)
}

// Loading reports whether the newest request is still outstanding.
func (v *ListView) Loading() bool {
	return v.pending
}

// Loaded reports whether any page has been applied since the last Mount.
func (v *ListView) Loaded() bool {
	return v.loaded
}

// LastError returns the error of the newest request if it failed.
func (v *ListView) LastError() error {
	return v.lastErr
}

// Seq returns the newest issued request sequence.
func (v *ListView) Seq() uint64 {
	return v.seq
}
