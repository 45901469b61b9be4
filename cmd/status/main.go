// Package main provides the status CLI entry point.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags shared by every subcommand.
var (
	// jsonOutput switches output to indented JSON for scripting.
	jsonOutput bool

	// configDir overrides QUICKSTATUS_HOME and ~/.quickstatus.
	configDir string

	// verbose traces config resolution and Slack API traffic to stderr.
	verbose bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// SilenceErrors is set, so all error output happens here
		printError(err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "status",
	Short: "Set, clear, and schedule your Slack status",
	Long: `status sets your Slack status from a list of named ("canned") statuses.

Canned statuses live in ~/.quickstatus/statuses.json. A stack of default
statuses in ~/.quickstatus/defaults.json is what 'status clear' falls back to
until each default expires. Statuses marked "disturb": false also turn on
Do Not Disturb for as long as they last.

Times are either a number of minutes from now or a local timestamp in
YYYY-MM-DDTHH:MM form.

The Slack user token is read from SLACK_TOKEN (or TOKEN), from a .env file in
the config directory or the working directory, or from slack_token in
config.yml. It needs the users.profile:read, users.profile:write, and
dnd:write scopes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default $QUICKSTATUS_HOME or ~/.quickstatus)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace configuration and Slack API calls to stderr")
	rootCmd.Version = Version
}
