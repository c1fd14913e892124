// ABOUTME: Close-case command for the dcm CLI
// ABOUTME: Records a judgment and closes a case (judge role)

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/session"
)

var closeJudgment string

var closeCaseCmd = &cobra.Command{
	Use:   "close-case <case-id>",
	Short: "Record a judgment and close a case",
	Long:  `Close one of the signed-in judge's cases, recording the final judgment.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCloseCase(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	closeCaseCmd.Flags().StringVar(&closeJudgment, "judgment", "", "Judgment text to record (required)")
	closeCaseCmd.MarkFlagRequired("judgment")
	rootCmd.AddCommand(closeCaseCmd)
}

// runCloseCase closes a case for the signed-in judge and returns an exit code
func runCloseCase(ctx context.Context, w io.Writer, caseArg string) int {
	caseID, err := strconv.Atoi(caseArg)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid case id %q\n", caseArg)
		return 1
	}
	if closeJudgment == "" {
		fmt.Fprintln(w, "Error: --judgment is required")
		return 1
	}

	store := session.NewFileStore(configDir())
	sess, ok := store.Read()
	if !ok {
		fmt.Fprintln(w, "Not signed in. Run: dcm login judge")
		return 1
	}
	if sess.Role != session.RoleJudge {
		fmt.Fprintf(w, "Error: close-case requires the judge role, signed in as %s\n", sess.Role)
		return 1
	}

	c := client.New(GetAPIURL())
	c.SetToken(sess.Token)

	input := client.CloseCaseRequest{CaseID: caseID, Judgment: closeJudgment}
	if err := c.CloseCase(ctx, sess.UserID, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Case %d closed.\n", caseID)
	return 0
}
