// Package cmd provides the CLI commands for offerdesk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
)

// Version information, set from main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "offerdesk",
	Short: "Offer administration from the terminal",
	Long: `offerdesk is a terminal client for the offers admin API.

Run it without a subcommand to open the interactive dashboard. The
subcommands cover the same ground for scripts: listing offers, creating
offers, reading the weekly summary and exporting charts.

Configuration is read from ~/.config/offerdesk/config.yaml (or --config)
and OFFERDESK_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/offerdesk/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("offerdesk {{.Version}}\n")
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// printError writes err to stderr, with details and a suggestion when it
// carries them.
func printError(cmd *cobra.Command, err error) {
	if appErr, ok := apperrors.As(err); ok {
		fmt.Fprint(cmd.ErrOrStderr(), appErr.Format())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
