package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/status"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List canned statuses",
	Long: `List the canned statuses configured in statuses.json.

Examples:
  status list
  status list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// ListResponse is the JSON output for status list.
type ListResponse struct {
	Statuses []status.Status `json:"statuses"`
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := loadManager(false)
	if err != nil {
		return err
	}

	statuses := m.List()
	if jsonOutput {
		return outputJSON(ListResponse{Statuses: statuses})
	}

	if len(statuses) == 0 {
		outputHuman("No statuses configured.")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tLIFETIME\tDND")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.String(), formatLifetime(s.Minutes), formatDisturb(s))
	}
	return w.Flush()
}
