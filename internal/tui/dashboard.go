package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/tui/components"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// dashboardView shows the period summary, the two charts and the offer list.
type dashboardView struct {
	env  *env
	list *offers.ListView

	period      dashboard.Period
	data        *dashboard.Data
	dashSeq     uint64
	dashLoading bool
	dashErr     string

	cards  *components.MetricCards
	visits *components.BarChart
	sent   *components.BarChart
	table  *components.OfferTable
	pager  *components.Pagination

	search    *components.TextInput
	searching bool

	width int
}

func newDashboardView(e *env, cfg offers.ListConfig, period dashboard.Period) *dashboardView {
	if period == "" {
		period = dashboard.PeriodThisWeek
	}
	if cfg.Logger == nil {
		cfg.Logger = e.logger
	}
	v := &dashboardView{
		env:    e,
		list:   offers.NewListView(cfg),
		period: period,
		cards:  components.NewMetricCards(),
		visits: components.NewBarChart(dashboard.Chart{Title: "Website Visits", Kind: dashboard.ChartBar}),
		sent:   components.NewBarChart(dashboard.Chart{Title: "Offers Sent", Kind: dashboard.ChartLine}),
		table:  components.NewOfferTable(),
		pager:  components.NewPagination(),
		search: components.NewTextInput("search", "Search"),
	}
	v.search.SetWidth(30)
	return v
}

// mount resets the list and loads the first page together with the dashboard.
func (v *dashboardView) mount() tea.Cmd {
	v.searching = false
	v.search.Blur()
	v.search.Reset()
	v.syncSearchLabel()
	return tea.Batch(v.env.fetchOffers(v.list.Mount()), v.reload())
}

func (v *dashboardView) reload() tea.Cmd {
	v.dashSeq++
	v.dashLoading = true
	v.dashErr = ""
	return v.env.loadDashboard(v.dashSeq, v.period)
}

// capturing reports whether keys go to the search input.
func (v *dashboardView) capturing() bool {
	return v.searching
}

// loading returns the status bar label while something is in flight.
func (v *dashboardView) loading() string {
	switch {
	case v.list.Loading():
		return "Loading offers"
	case v.dashLoading:
		return "Loading dashboard"
	}
	return ""
}

func (v *dashboardView) shortcuts() []components.ShortcutDef {
	if v.searching {
		return components.SearchShortcuts
	}
	return components.DashboardShortcuts
}

func (v *dashboardView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OffersLoadedMsg:
		v.list.Resolve(msg.Seq, msg.Page, msg.Err)
		return nil

	case DashboardLoadedMsg:
		if msg.Seq != v.dashSeq {
			return nil
		}
		v.dashLoading = false
		if msg.Err != nil {
			v.dashErr = dashboard.FetchFailedMessage
			return nil
		}
		v.data = msg.Data
		v.cards.SetCards(msg.Data.Cards())
		if charts := msg.Data.Charts(); len(charts) == 2 {
			v.visits.SetChart(charts[0])
			v.sent.SetChart(charts[1])
		}
		return nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateKeys(msg)
	}
	return nil
}

func (v *dashboardView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		v.searching = false
		v.search.Blur()
		return nil
	case "esc":
		v.searching = false
		v.search.Blur()
		v.search.Reset()
		v.list.SetSearch("")
		return nil
	case "tab":
		fields := offers.SearchFields()
		i := slices.Index(fields, v.list.Filter().Field)
		v.list.SetSearchField(fields[(i+1)%len(fields)])
		v.syncSearchLabel()
		return nil
	}
	cmd, changed := v.search.Update(msg)
	if changed {
		v.list.SetSearch(v.search.Value())
	}
	return cmd
}

func (v *dashboardView) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		v.searching = true
		return v.search.Focus()
	case "t":
		v.list.SetTypeFilter(cycle(typeChoices(), v.list.Filter().Type))
	case "s":
		v.list.SetStatusFilter(cycle(statusChoices(), v.list.Filter().Status))
	case "x":
		v.search.Reset()
		v.list.SetSearch("")
		v.list.SetTypeFilter(offers.All)
		v.list.SetStatusFilter(offers.All)
	case "right", "n":
		if req, ok := v.list.NextPage(); ok {
			return v.env.fetchOffers(req)
		}
	case "left", "b":
		if req, ok := v.list.PrevPage(); ok {
			return v.env.fetchOffers(req)
		}
	case "+", "=":
		return v.env.fetchOffers(v.list.CycleRowsPerPage())
	case "p":
		v.period = v.period.Next()
		return v.reload()
	case "r":
		return tea.Batch(v.env.fetchOffers(v.list.Refresh()), v.reload())
	case "j", "down":
		v.table.MoveDown()
	case "k", "up":
		v.table.MoveUp()
	}
	return nil
}

func (v *dashboardView) syncSearchLabel() {
	v.search.SetPlaceholder("Search " + v.list.Filter().Field.Label())
}

func typeChoices() []string {
	out := []string{offers.All}
	for _, p := range offers.PlanTypes() {
		out = append(out, string(p))
	}
	return out
}

func statusChoices() []string {
	out := []string{offers.All}
	for _, s := range offers.Statuses() {
		out = append(out, string(s))
	}
	return out
}

// cycle returns the choice after current, wrapping around. Unknown values
// restart at the first choice.
func cycle(choices []string, current string) string {
	i := slices.IndexFunc(choices, func(c string) bool { return strings.EqualFold(c, current) })
	return choices[(i+1)%len(choices)]
}

func (v *dashboardView) setWidth(width int) {
	v.width = width
	v.cards.SetWidth(width)
	v.table.SetWidth(width)
	half := width/2 - 2
	if half < 30 {
		half = width
	}
	v.visits.SetWidth(half)
	v.sent.SetWidth(half)
}

func (v *dashboardView) view() string {
	var b strings.Builder

	b.WriteString(styles.SectionTitleStyle.Render("Dashboard"))
	b.WriteString("  ")
	b.WriteString(styles.HeaderLabelStyle.Render("Period: "))
	b.WriteString(styles.HeaderValueStyle.Render(v.period.Label()))
	b.WriteString("\n\n")

	switch {
	case v.dashErr != "":
		b.WriteString(styles.ErrorTextStyle.Render(v.dashErr))
	case v.data == nil:
		b.WriteString(styles.MutedTextStyle.Render("Loading dashboard…"))
	default:
		b.WriteString(v.cards.View())
		b.WriteString("\n\n")
		b.WriteString(v.chartsView())
	}
	b.WriteString("\n\n")

	b.WriteString(styles.SectionTitleStyle.Render("Offer List"))
	b.WriteString("\n")
	b.WriteString(v.filterView())
	b.WriteString("\n\n")

	rows := v.list.Visible()
	v.table.SetRows(rows)
	if !v.list.Loaded() && v.list.Loading() {
		v.table.SetEmptyText("Loading offers…")
	} else {
		v.table.SetEmptyText("No offers found")
	}
	b.WriteString(v.table.View())
	b.WriteString("\n")

	w := v.list.Window()
	v.pager.SetData(components.PaginationData{
		Window:   w,
		Total:    v.list.Total(),
		Shown:    len(rows),
		Filtered: v.list.FilterActive(),
		HasPrev:  w.Page > 0,
		HasNext:  w.Page+1 < w.PageCount(v.list.Total()),
	})
	b.WriteString(v.pager.View())
	return b.String()
}

func (v *dashboardView) chartsView() string {
	left := v.visits.View()
	right := v.sent.View()
	if v.width > 0 && v.width < 80 {
		return left + "\n\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (v *dashboardView) filterView() string {
	f := v.list.Filter()

	search := v.search.View()
	if !v.searching && f.Search == "" {
		search = styles.MutedTextStyle.Render(fmt.Sprintf("/ to search %s", f.Field.Label()))
	}

	typeLabel := offers.All
	if f.Type != "" && f.Type != offers.All {
		typeLabel = offers.Label(f.Type)
	}
	statusLabel := offers.All
	if f.Status != "" && f.Status != offers.All {
		statusLabel = f.Status
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		search,
		"   ",
		styles.HeaderLabelStyle.Render("Type: "),
		styles.HeaderValueStyle.Render(typeLabel),
		"   ",
		styles.HeaderLabelStyle.Render("Status: "),
		v.statusButtons(statusLabel),
	)
}

func (v *dashboardView) statusButtons(active string) string {
	parts := make([]string, 0, 4)
	for _, c := range statusChoices() {
		if strings.EqualFold(c, active) {
			parts = append(parts, styles.TabActiveStyle.Render(c))
		} else {
			parts = append(parts, styles.TabStyle.Render(c))
		}
	}
	return strings.Join(parts, "")
}
