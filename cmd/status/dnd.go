package main

import (
	"github.com/spf13/cobra"
)

var dndCmd = &cobra.Command{
	Use:   "dnd",
	Short: "Set or clear Do Not Disturb",
	Long: `Turn Slack notifications off for a period of time, or back on.

The snooze is remembered as the default Do Not Disturb, so 'status clear'
re-applies it until it expires.`,
}

var dndSetCmd = &cobra.Command{
	Use:   "set [<time>]",
	Short: "Snooze notifications",
	Long: `Snooze Slack notifications until <time>, a number of minutes from now or a
YYYY-MM-DDTHH:MM timestamp. Without <time>, dnd_default_minutes from
config.yml is used (60 if unset).

Examples:
  status dnd set
  status dnd set 30
  status dnd set 2026-10-16T17:00`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDNDSet,
}

var dndClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "End the snooze and forget the default Do Not Disturb",
	Args:  cobra.NoArgs,
	RunE:  runDNDClear,
}

func init() {
	dndCmd.AddCommand(dndSetCmd)
	dndCmd.AddCommand(dndClearCmd)
	rootCmd.AddCommand(dndCmd)
}

// DNDClearResponse is the JSON output for status dnd clear.
type DNDClearResponse struct {
	Status string `json:"status"`
}

func runDNDSet(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	timeArg := ""
	if len(args) == 1 {
		timeArg = args[0]
	}

	result, err := m.DNDSet(cmd.Context(), timeArg)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(result)
	}
	outputHuman("%s for %d minutes%s", okStyle.Render("Do Not Disturb on"), result.Minutes, formatUntil(result.Expires))
	return nil
}

func runDNDClear(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	if err := m.DNDClear(cmd.Context()); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(DNDClearResponse{Status: "cleared"})
	}
	outputHuman("%s", okStyle.Render("Do Not Disturb off"))
	return nil
}
