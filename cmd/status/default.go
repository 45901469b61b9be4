package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/expiration"
	"github.com/matsen/quickstatus/internal/status"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Manage the stack of default statuses",
	Long: `Mark a canned status as a default until a given time. When 'status clear' is
invoked, the Slack status is set to the active default instead of being
emptied. Defaults live on a stack and come off either manually (status
default pop) or automatically once they expire.`,
}

var defaultAddCmd = &cobra.Command{
	Use:   "add <status> <time>",
	Short: "Push a default status and apply it",
	Long: `Push a canned status onto the default stack until <time>, a number of minutes
from now or a YYYY-MM-DDTHH:MM timestamp, and set it as your status.

Examples:
  status default add office 2026-10-16T17:00
  status default add home 480`,
	Args: cobra.ExactArgs(2),
	RunE: runDefaultAdd,
}

var defaultPopCmd = &cobra.Command{
	Use:   "pop",
	Short: "Drop the active default and fall back to the next one",
	Args:  cobra.NoArgs,
	RunE:  runDefaultPop,
}

var defaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the default stack, active default last",
	Args:  cobra.NoArgs,
	RunE:  runDefaultList,
}

func init() {
	defaultCmd.AddCommand(defaultAddCmd)
	defaultCmd.AddCommand(defaultPopCmd)
	defaultCmd.AddCommand(defaultListCmd)
	rootCmd.AddCommand(defaultCmd)
}

// DefaultListResponse is the JSON output for status default list.
type DefaultListResponse struct {
	Statuses []status.Status       `json:"statuses"`
	DND      expiration.Expiration `json:"dnd"`
}

func runDefaultAdd(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	applied, err := m.DefaultAdd(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(applied)
	}
	printApplied("Default pushed:", applied)
	return nil
}

func runDefaultPop(cmd *cobra.Command, args []string) error {
	m, err := loadManager(true)
	if err != nil {
		return err
	}

	result, err := m.DefaultPop(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(result)
	}

	if result.Popped == nil {
		outputHuman("Default stack was already empty")
	} else {
		outputHuman("Popped %s", formatStatus(*result.Popped))
	}
	printClearResult(result)
	return nil
}

func runDefaultList(cmd *cobra.Command, args []string) error {
	m, err := loadManager(false)
	if err != nil {
		return err
	}

	defaults := m.DefaultList()
	if jsonOutput {
		if defaults == nil {
			defaults = []status.Status{}
		}
		return outputJSON(DefaultListResponse{Statuses: defaults, DND: m.DefaultDND()})
	}

	if len(defaults) == 0 {
		outputHuman("No default statuses.")
	} else {
		w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tSTATUS\tUNTIL")
		for i, s := range defaults {
			until := s.Expires.String()
			if until == "" {
				until = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, s.Name, s.String(), until)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if dnd := m.DefaultDND(); !dnd.IsZero() {
		outputHuman("Default Do Not Disturb until %s", dnd)
	}

	if expired := m.ExpiredDefaults(); expired > 0 {
		warn("%d default(s) have expired; 'status clear' drops them once they reach the top", expired)
	}
	return nil
}
