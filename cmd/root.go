// ABOUTME: Root command for the dcm CLI
// ABOUTME: Handles global flags, env config, and launching the TUI

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dcmsystem/dcm-cli/internal/client"
	"github.com/dcmsystem/dcm-cli/internal/logging"
	"github.com/dcmsystem/dcm-cli/internal/session"
	"github.com/dcmsystem/dcm-cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000"

// rootCmd is the base command. Invoked bare, it opens the interactive TUI.
var rootCmd = &cobra.Command{
	Use:   "dcm",
	Short: "Terminal client for the DCM case-management platform",
	Long: `dcm is a terminal client for the DCM case-management platform.

Run it without arguments for the interactive interface, or use the
subcommands for scripted access to sessions and case records.

Environment Variables:
  DCM_API_URL  Backend API URL (default: http://localhost:8000)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := session.NewFileStore(configDir())
		return tui.Run(store, client.New(GetAPIURL()))
	},
}

// Execute runs the root command
func Execute() error {
	// A .env in the working directory can set DCM_API_URL; absence is fine
	godotenv.Load()

	dir := configDir()
	if err := logging.Init(dir); err == nil {
		defer logging.Close()
	}

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides DCM_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("DCM_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// configDir resolves the session and log directory
func configDir() string {
	return session.DefaultConfigDir()
}
