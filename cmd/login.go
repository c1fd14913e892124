// ABOUTME: Login command for the dcm CLI
// ABOUTME: Authenticates a role with credentials and persists the session

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/loginform"
)

var (
	loginEmail    string
	loginPassword string
	loginUsername string
)

var loginCmd = &cobra.Command{
	Use:   "login <role>",
	Short: "Sign in and store a session",
	Long: `Authenticate against the backend as one of the platform roles
(user, judge, admin) and store the session for later commands.

The user role additionally requires --username.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Display name (user role only)")
	rootCmd.AddCommand(loginCmd)
}

// runLogin validates credentials, authenticates, and persists the session.
// Exit codes: 0 on success, 1 on invalid input, 2 on backend rejection or
// transport failure.
func runLogin(ctx context.Context, w io.Writer, roleArg string) int {
	role, err := session.ParseRole(roleArg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	cfg := loginform.ForRole(role)

	email := loginform.NormalizeEmail(loginEmail)
	password := loginform.NormalizePassword(loginPassword)
	username := loginform.NormalizeUsername(loginUsername)

	if err := loginform.ValidateEmail(email); err != nil {
		fmt.Fprintf(w, "Error: email: %v\n", err)
		return 1
	}
	if err := loginform.ValidatePassword(password); err != nil {
		fmt.Fprintf(w, "Error: password: %v\n", err)
		return 1
	}
	if cfg.RequiresUsername {
		if err := loginform.ValidateUsername(username); err != nil {
			fmt.Fprintf(w, "Error: username: %v\n", err)
			return 1
		}
	}

	c := client.New(GetAPIURL())
	resp, err := c.Login(ctx, role, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(w, "Error: %s\n", apiErr.Detail)
		} else {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		return 2
	}

	respRole, err := session.ParseRole(resp.Role)
	if err != nil {
		fmt.Fprintf(w, "Error: backend returned unknown role %q\n", resp.Role)
		return 2
	}

	sess := session.Session{
		Token:    resp.AccessToken,
		Role:     respRole,
		UserID:   resp.UserID,
		Username: resp.Username,
	}
	if sess.Username == "" {
		sess.Username = username
	}

	store := session.NewFileStore(configDir())
	if err := store.Establish(sess); err != nil {
		fmt.Fprintf(w, "Error: saving session: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sess, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", sess.DisplayName(), sess.Role)
	}
	return 0
}
