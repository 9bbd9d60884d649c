package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/tui"
)

// runRoot starts the interactive dashboard.
func runRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listCfg, err := listConfig(a)
	if err != nil {
		return err
	}
	period, err := dashboard.ParsePeriod(a.cfg.Dashboard.Period)
	if err != nil {
		return err
	}

	a.logger.Info("starting tui", "authenticated", a.session.Authenticated())
	return tui.Run(ctx, tui.Options{
		Auth:    a.session,
		Backend: a.client,
		Offers:  listCfg,
		Period:  period,
		Logger:  a.logger,
	})
}

// listConfig builds the offer list settings from configuration.
func listConfig(a *app) (offers.ListConfig, error) {
	field, err := offers.ParseSearchField(a.cfg.Offers.SearchField)
	if err != nil {
		return offers.ListConfig{}, err
	}
	return offers.ListConfig{
		PerPage:     a.cfg.Offers.PerPage,
		PageSizes:   a.cfg.Offers.PageSizes,
		SearchField: field,
		Logger:      a.logger,
	}, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
