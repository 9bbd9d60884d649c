package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wexinc/offerdesk/internal/onboarding"
)

// usersCmd represents the users command.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users offers can be created for",
	Args:  cobra.NoArgs,
	RunE:  runUsers,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().Int("page", 1, "Page number (1-based)")
	usersCmd.Flags().Int("per-page", onboarding.UserPageSize, "Users per page")
	usersCmd.Flags().StringP("output", "o", OutputTable, "Output format: table, json or yaml")
}

// runUsers handles the users command.
func runUsers(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
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

	users, err := a.client.ListUsers(cmdContext(cmd), page, perPage)
	if err != nil {
		return err
	}

	if format != OutputTable {
		return writeData(cmd.OutOrStdout(), format, users)
	}
	if len(users) == 0 {
		cmd.Println("No users found")
		return nil
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, u.Email})
	}
	cmd.Println(renderTable([]string{"ID", "Name", "Email"}, rows))
	return nil
}
