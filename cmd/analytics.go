// ABOUTME: Analytics command for the dcm CLI
// ABOUTME: Shows caseload summaries for judges and platform totals for admins

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
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show caseload analytics",
	Long: `Display caseload analytics for the signed-in role: judges see their
own docket summary, administrators see platform-wide totals.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAnalytics(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

// runAnalytics fetches and prints analytics, returning an exit code
func runAnalytics(ctx context.Context, w io.Writer) int {
	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		fmt.Fprintln(w, "Not signed in. Run: dcm login <role>")
		return 1
	}

	c := client.New(GetAPIURL())
	c.SetToken(sess.Token)

	switch sess.Role {
	case session.RoleJudge:
		resp, err := c.GetJudgeAnalytics(ctx, sess.UserID)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Fprintln(w, string(data))
		} else {
			fmt.Fprint(w, formatJudgeAnalytics(resp))
		}
		return 0

	case session.RoleAdmin:
		resp, err := c.GetAdminAnalytics(ctx)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Fprintln(w, string(data))
		} else {
			fmt.Fprint(w, formatAdminAnalytics(resp))
		}
		return 0
	}

	fmt.Fprintln(w, "Analytics are available to judges and administrators.")
	return 1
}

func formatJudgeAnalytics(a *client.JudgeAnalytics) string {
	return fmt.Sprintf(`Total Cases:    %d
Pending:        %d
Scheduled:      %d
Completed:      %d
This Month:     %d
`,
		a.TotalCases, a.PendingCases, a.ScheduledCases, a.CompletedCases, a.CasesThisMonth)
}

func formatAdminAnalytics(a *client.AdminAnalytics) string {
	return fmt.Sprintf(`Total Cases:    %d
Citizens:       %d
Judges:         %d
Pending:        %d
Scheduled:      %d
Completed:      %d
This Month:     %d
`,
		a.TotalCases, a.TotalUsers, a.TotalJudges,
		a.PendingCases, a.ScheduledCases, a.CompletedCases, a.CasesThisMonth)
}
