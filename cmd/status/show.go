package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/slack"
	"github.com/matsen/quickstatus/internal/status"
)

var showCmd = &cobra.Command{
	Use:   "show [<status>]",
	Short: "Show the current status, or a canned status definition",
	Long: `Without arguments, fetch and show your current Slack status. This needs
only the Slack token, not statuses.json.
With a status name, show how that canned status is defined.

Examples:
  status show
  status show pom`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// ShowResponse is the JSON output for status show without arguments.
type ShowResponse struct {
	slack.Profile
	Expires string `json:"expires,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runDescribe(args[0])
	}

	m, err := loadProfileManager()
	if err != nil {
		return err
	}

	profile, err := m.Show(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(ShowResponse{Profile: profile, Expires: profile.Expires().String()})
	}

	if profile.IsEmpty() {
		outputHuman("No status set")
		return nil
	}
	outputHuman("%s%s", formatStatus(status.Status{Text: profile.Text, Emoji: profile.Emoji}), formatUntil(profile.Expires()))
	return nil
}

func runDescribe(name string) error {
	m, err := loadManager(false)
	if err != nil {
		return err
	}

	s, err := m.Describe(name)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(s)
	}

	outputHuman("%s: %s", nameStyle.Render(s.Name), formatStatus(s))
	outputHuman("  lifetime: %s", formatLifetime(s.Minutes))
	if s.WantsDND() {
		outputHuman("  do not disturb: yes")
	} else {
		outputHuman("  do not disturb: no")
	}
	return nil
}
