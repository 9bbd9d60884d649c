package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wexinc/offerdesk/internal/logging"
)

// FetchFailedMessage is what the dashboard shows when a load fails.
const FetchFailedMessage = "Failed to fetch data"

// Source provides the two dashboard endpoints.
type Source interface {
	Summary(ctx context.Context, period Period) (Summary, error)
	Stats(ctx context.Context, period Period) (Stats, error)
}

// Data is one fully loaded dashboard.
type Data struct {
	Period  Period  `json:"period"  yaml:"period"`
	Summary Summary `json:"summary" yaml:"summary"`
	Stats   Stats   `json:"stats"   yaml:"stats"`
}

// Cards returns the metric tiles of d.
func (d *Data) Cards() []Card {
	return Cards(d.Summary)
}

// Charts returns the website visits and offers sent charts of d.
func (d *Data) Charts() []Chart {
	return []Chart{WebsiteVisitsChart(d.Stats), OffersSentChart(d.Stats)}
}

// Loader fetches summary and stats together.
type Loader struct {
	source Source
	logger *logging.Logger
}

// NewLoader creates a loader over source. A nil logger uses the global logger.
func NewLoader(source Source, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Global()
	}
	return &Loader{source: source, logger: logger}
}

// Load fetches both endpoints concurrently. If either fails the load fails;
// the first error is returned and the other request is cancelled.
func (l *Loader) Load(ctx context.Context, period Period) (*Data, error) {
	data := &Data{Period: period}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := l.source.Summary(gctx, period)
		if err != nil {
			return err
		}
		data.Summary = s
		return nil
	})
	g.Go(func() error {
		s, err := l.source.Stats(gctx, period)
		if err != nil {
			return err
		}
		data.Stats = s
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Error("dashboard load failed", "period", string(period), "error", err)
		return nil, err
	}

	l.logger.Debug("dashboard loaded",
		"period", string(period),
		"visit_days", len(data.Stats.WebsiteVisits),
		"offer_days", len(data.Stats.OffersSent),
	)
	return data, nil
}
