package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/offerdesk/internal/dashboard"
)

// chartsCmd represents the charts command group.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Dashboard charts",
}

// chartsExportCmd represents the charts export command.
var chartsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard charts to an HTML page",
	Long: `Render the Website Visits and Offers Sent charts as an interactive
ECharts HTML page.

Examples:
  offerdesk charts export
  offerdesk charts export --period prev-week --out last-week.html`,
	Args: cobra.NoArgs,
	RunE: runChartsExport,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.AddCommand(chartsExportCmd)
	chartsExportCmd.Flags().String("period", "", "Period: this-week or prev-week (default from config)")
	chartsExportCmd.Flags().String("out", "offerdesk-charts.html", "Output file")
}

// runChartsExport handles the charts export command.
func runChartsExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := loadDashboard(cmd, a)
	if err != nil {
		return err
	}
	if err := dashboard.ExportFile(out, data); err != nil {
		return err
	}

	a.logger.Info("charts exported", "path", out, "period", string(data.Period))
	cmd.Printf("✓ Wrote %s\n", out)
	return nil
}
