package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/offerdesk/internal/dashboard"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the weekly dashboard metrics",
	Long: `Show active users, clicks and appearances for a week, with the change
against the week before.

Examples:
  offerdesk summary
  offerdesk summary --period prev-week
  offerdesk summary --output yaml`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().String("period", "", "Period: this-week or prev-week (default from config)")
	summaryCmd.Flags().StringP("output", "o", OutputTable, "Output format: table, json or yaml")
}

// runSummary handles the summary command.
func runSummary(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := checkOutput(format); err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := loadDashboard(cmd, a)
	if err != nil {
		return err
	}

	if format != OutputTable {
		return writeData(cmd.OutOrStdout(), format, struct {
			Period dashboard.Period `json:"period" yaml:"period"`
			Cards  []dashboard.Card `json:"cards" yaml:"cards"`
		}{data.Period, data.Cards()})
	}

	cmd.Printf("Summary for %s\n", data.Period.Label())
	rows := make([][]string, 0, 3)
	for _, c := range data.Cards() {
		rows = append(rows, []string{c.Title, c.Value, c.Trend.Arrow() + " " + c.Change})
	}
	cmd.Println(renderTable([]string{"Metric", "Value", "Change"}, rows))
	return nil
}

// loadDashboard reads --period and loads the summary and stats.
func loadDashboard(cmd *cobra.Command, a *app) (*dashboard.Data, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}

	raw, _ := cmd.Flags().GetString("period")
	if raw == "" {
		raw = a.cfg.Dashboard.Period
	}
	period, err := dashboard.ParsePeriod(raw)
	if err != nil {
		return nil, err
	}

	return dashboard.NewLoader(a.client, a.logger).Load(cmdContext(cmd), period)
}
