package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/presence"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the status, falling back to the active default",
	Long: `Clear your Slack status.

Expired defaults are dropped from the top of the default stack first. If a
default is still live it becomes your status; otherwise the status is emptied.
A default Do Not Disturb set with 'status dnd set' is re-applied while it
lasts; otherwise any snooze is ended.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	result, err := m.Clear(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(result)
	}
	printClearResult(result)
	return nil
}

// printClearResult reports what clear or default pop fell back to.
func printClearResult(result *presence.ClearResult) {
	if result.Pruned > 0 {
		verboseLog("dropped %d expired default(s)", result.Pruned)
	}

	if result.Fallback != nil {
		printApplied("Fell back to default:", result.Fallback)
	} else {
		outputHuman("%s", okStyle.Render("Status cleared"))
	}

	switch {
	case result.DNDMinutes > 0:
		outputHuman("Default Do Not Disturb on for %d minutes%s", result.DNDMinutes, formatUntil(result.DND))
	case result.DNDEnded:
		outputHuman("Do Not Disturb off")
	}
}
