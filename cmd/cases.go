// ABOUTME: Cases command for the dcm CLI
// ABOUTME: Lists case records scoped to the signed-in role

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/caselist"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List case records for the signed-in role",
	Long: `List case records. Citizens see their own filings, judges their
assigned docket, and administrators every record on the platform.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCases(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}

// runCases lists cases for the stored session and returns an exit code
func runCases(ctx context.Context, w io.Writer) int {
	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		fmt.Fprintln(w, "Not signed in. Run: dcm login <role>")
		return 1
	}

	c := client.New(GetAPIURL())
	c.SetToken(sess.Token)

	var cases []client.Case
	var err error
	switch sess.Role {
	case session.RoleUser:
		cases, err = c.UserCases(ctx, sess.UserID)
	case session.RoleJudge:
		cases, err = c.JudgeCases(ctx, sess.UserID)
	case session.RoleAdmin:
		cases, err = c.AdminCases(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(cases, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatCasesHuman(cases))
	return 0
}

// formatCasesHuman renders a fixed-width case table
func formatCasesHuman(cases []client.Case) string {
	if len(cases) == 0 {
		return "No cases found."
	}

	out := fmt.Sprintf("%-14s %-40s %-12s %s\n", "CASE #", "TITLE", "STATUS", "COMPLEXITY")
	for _, c := range cases {
		title := c.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		out += fmt.Sprintf("%-14s %-40s %-12s %s\n",
			c.CaseNumber, title, caselist.StatusLabel(c.Status), caselist.ComplexityLabel(c.Complexity))
	}
	return out
}
