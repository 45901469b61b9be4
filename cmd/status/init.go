package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration",
	Long: `Create the configuration directory with a starter statuses.json (commute,
home, huddle, lunch, meet, office, pom, travel) and an empty defaults.json.

Existing files are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing configuration files")
	rootCmd.AddCommand(initCmd)
}

// InitResponse is the JSON output for status init.
type InitResponse struct {
	Status string   `json:"status"`
	Dir    string   `json:"dir"`
	Files  []string `json:"files"`
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	files, err := config.Init(dir, initForce)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(InitResponse{Status: "initialized", Dir: dir, Files: files})
	}

	for _, f := range files {
		outputHuman("%s %s", okStyle.Render("Wrote"), f)
	}
	outputHuman("")
	outputHuman("Add your Slack user token to %s:", config.EnvPath(dir))
	outputHuman("  SLACK_TOKEN=xoxp-...")
	return nil
}
