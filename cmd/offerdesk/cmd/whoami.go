package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().StringP("output", "o", OutputTable, "Output format: table, json or yaml")
}

// runWhoami handles the whoami command.
func runWhoami(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := checkOutput(format); err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireSession(); err != nil {
		return err
	}
	user, _ := a.session.User()

	if format != OutputTable {
		return writeData(cmd.OutOrStdout(), format, user)
	}

	cmd.Printf("%s (id %d)\n", user.Label(), user.ID)
	if exp, ok := a.session.ExpiresAt(); ok {
		cmd.Printf("Session expires %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
