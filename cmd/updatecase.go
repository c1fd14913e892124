// ABOUTME: Update-case command for the dcm CLI
// ABOUTME: Edits fields on a case record (admin role)

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui/caselist"
)

var (
	updateTitle       string
	updateDescription string
	updateComplexity  string
	updateStatus      string
	updateJudgment    string
)

var updateCaseCmd = &cobra.Command{
	Use:   "update-case <case-id>",
	Short: "Edit a case record",
	Long: `Edit fields on a case record. Only the flags you pass are changed;
everything else stays as it is. Requires the admin role.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runUpdateCase(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	updateCaseCmd.Flags().StringVar(&updateTitle, "title", "", "New case title")
	updateCaseCmd.Flags().StringVar(&updateDescription, "description", "", "New case description")
	updateCaseCmd.Flags().StringVar(&updateComplexity, "complexity", "", "New complexity (simple, moderate, complex, highly_complex)")
	updateCaseCmd.Flags().StringVar(&updateStatus, "status", "", "New status (pending, scheduled, in_progress, completed, adjourned)")
	updateCaseCmd.Flags().StringVar(&updateJudgment, "judgment", "", "New judgment text")
	rootCmd.AddCommand(updateCaseCmd)
}

// buildCaseUpdate collects the set flags into an update payload. The
// second return is false when no flag was passed at all.
func buildCaseUpdate() (client.CaseUpdate, bool) {
	var update client.CaseUpdate
	any := false

	if updateTitle != "" {
		update.Title = &updateTitle
		any = true
	}
	if updateDescription != "" {
		update.Description = &updateDescription
		any = true
	}
	if updateComplexity != "" {
		update.Complexity = &updateComplexity
		any = true
	}
	if updateStatus != "" {
		update.Status = &updateStatus
		any = true
	}
	if updateJudgment != "" {
		update.Judgment = &updateJudgment
		any = true
	}
	return update, any
}

var validComplexities = map[string]bool{
	client.ComplexitySimple:        true,
	client.ComplexityModerate:      true,
	client.ComplexityComplex:       true,
	client.ComplexityHighlyComplex: true,
}

var validStatuses = map[string]bool{
	client.StatusPending:    true,
	client.StatusScheduled:  true,
	client.StatusInProgress: true,
	client.StatusCompleted:  true,
	client.StatusAdjourned:  true,
}

// runUpdateCase edits a record for the signed-in admin and returns an exit code
func runUpdateCase(ctx context.Context, w io.Writer, caseArg string) int {
	caseID, err := strconv.Atoi(caseArg)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid case id %q\n", caseArg)
		return 1
	}

	update, any := buildCaseUpdate()
	if !any {
		fmt.Fprintln(w, "Error: nothing to change, pass at least one of --title, --description, --complexity, --status, --judgment")
		return 1
	}
	if updateComplexity != "" && !validComplexities[updateComplexity] {
		fmt.Fprintf(w, "Error: invalid complexity %q\n", updateComplexity)
		return 1
	}
	if updateStatus != "" && !validStatuses[updateStatus] {
		fmt.Fprintf(w, "Error: invalid status %q\n", updateStatus)
		return 1
	}

	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		fmt.Fprintln(w, "Not signed in. Run: dcm login admin")
		return 1
	}
	if sess.Role != session.RoleAdmin {
		fmt.Fprintf(w, "Error: update-case requires the admin role, signed in as %s\n", sess.Role)
		return 1
	}

	c := client.New(GetAPIURL())
	c.SetToken(sess.Token)

	// Look the record up first so a bad id fails before anything changes
	current, err := c.Case(ctx, caseID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	updated, err := c.UpdateCase(ctx, caseID, update)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(updated, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Case %s updated.\n", current.CaseNumber)
	fmt.Fprintf(w, "  Title:      %s\n", updated.Title)
	fmt.Fprintf(w, "  Status:     %s\n", caselist.StatusLabel(updated.Status))
	fmt.Fprintf(w, "  Complexity: %s\n", caselist.ComplexityLabel(updated.Complexity))
	return 0
}
