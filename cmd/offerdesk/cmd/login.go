package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
)

// loginCmd represents the login command.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the offers API",
	Long: `Sign in with an admin email and password. The returned token is
stored in the session file (mode 0600) and used by every other command.

Examples:
  offerdesk login                                  # Prompt for email and password
  offerdesk login --email admin@example.com        # Prompt for the password only
  echo "$PASS" | offerdesk login --email admin@example.com --password-stdin`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
}

// runLogin handles the login command.
func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	passwordStdin, _ := cmd.Flags().GetBool("password-stdin")

	reader := bufio.NewReader(cmd.InOrStdin())

	if email == "" {
		if passwordStdin {
			return apperrors.WithSuggestion(apperrors.ErrValidation,
				"--password-stdin requires --email",
				"Pass the account email with --email.")
		}
		cmd.Print("Email: ")
		email = readLine(reader)
	}

	var password string
	if passwordStdin {
		password = readLine(reader)
	} else {
		var err error
		password, err = promptPassword(cmd, reader)
		if err != nil {
			return err
		}
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.session.Login(cmdContext(cmd), email, password)
	if err != nil {
		return err
	}

	cmd.Printf("✓ Signed in as %s\n", user.Label())
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	cmd.Print("Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}
	return readLine(reader), nil
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
