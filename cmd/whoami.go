// ABOUTME: Whoami command for the dcm CLI
// ABOUTME: Shows the stored session identity

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Long:  `Display the stored session: who is signed in and as which role.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the stored session and returns an exit code
func runWhoami(w io.Writer) int {
	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		fmt.Fprintln(w, "Not signed in.")
		return 1
	}

	if IsJSONOutput() {
		// The token stays out of scripted output
		out := struct {
			Role     session.Role `json:"role"`
			UserID   int          `json:"userId"`
			Username string       `json:"username,omitempty"`
		}{sess.Role, sess.UserID, sess.Username}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Signed in as %s\nRole:    %s\nUser ID: %d\n", sess.DisplayName(), sess.Role, sess.UserID)
	return 0
}
