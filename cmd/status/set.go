package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/presence"
)

var setCmd = &cobra.Command{
	Use:   "set <status> [<time>]",
	Short: "Set a canned status",
	Long: `Set your Slack status from the configured list of canned statuses.

<time> is a number of minutes from now or a YYYY-MM-DDTHH:MM timestamp. When it
is omitted the status's own status_expiration (minutes) is used, and a status
without one never expires. Statuses with "disturb": false also turn on Do Not
Disturb, so they need a time from one place or the other.

Examples:
  status set lunch
  status set meet 45
  status set office 2026-10-16T17:00`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	timeArg := ""
	if len(args) == 2 {
		timeArg = args[1]
	}

	applied, err := m.Set(cmd.Context(), args[0], timeArg)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(applied)
	}
	printApplied("Status set:", applied)
	return nil
}

// printApplied reports a status that was pushed to Slack.
func printApplied(prefix string, applied *presence.Applied) {
	outputHuman("%s %s%s", okStyle.Render(prefix), formatStatus(applied.Status), formatUntil(applied.Expires))
	if applied.DNDMinutes > 0 {
		outputHuman("Do Not Disturb on for %d minutes", applied.DNDMinutes)
	}
}
