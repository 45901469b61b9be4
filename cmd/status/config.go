package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values stored in config.yml.

Usage:
  status config                            # Show resolved configuration
  status config dnd-default-minutes        # Get specific value
  status config dnd-default-minutes 30     # Set value

Keys:
  dnd-default-minutes  Snooze length for 'status dnd set' without a time
  api-url              Slack Web API base URL (for proxies and testing)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the JSON output for status config.
type ConfigResponse struct {
	Dir               string          `json:"dir"`
	Files             map[string]bool `json:"files"`
	TokenSource       string          `json:"token_source"`
	Token             string          `json:"token,omitempty"`
	DNDDefaultMinutes int             `json:"dnd_default_minutes"`
	APIURL            string          `json:"api_url,omitempty"`
}

// UpdateResponse is the JSON output for a config update.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	dir, cfg, err := loadGlobal()
	if err != nil {
		return err
	}

	// No args: show all config
	if len(args) == 0 {
		return showConfig(dir, cfg)
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "dnd-default-minutes":
			value = strconv.Itoa(cfg.DNDMinutes())
		case "api-url":
			value = cfg.APIURL
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}
		if jsonOutput {
			return outputJSON(map[string]string{strings.ReplaceAll(key, "-", "_"): value})
		}
		outputHuman("%s", value)
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "dnd-default-minutes":
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("dnd-default-minutes must be a positive integer, got %q", value)
		}
		cfg.DNDDefaultMinutes = minutes
	case "api-url":
		cfg.APIURL = value
	default:
		return fmt.Errorf("unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(dir); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	outputHuman("Updated %s to %s", key, value)
	return nil
}

func showConfig(dir string, cfg *config.GlobalConfig) error {
	files := map[string]bool{}
	for _, path := range []string{
		config.StatusesPath(dir),
		config.DefaultsPath(dir),
		config.GlobalConfigPath(dir),
		config.EnvPath(dir),
	} {
		_, err := os.Stat(path)
		files[path] = err == nil
	}

	resp := ConfigResponse{
		Dir:               dir,
		Files:             files,
		TokenSource:       config.TokenSource(cfg),
		DNDDefaultMinutes: cfg.DNDMinutes(),
		APIURL:            cfg.APIURL,
	}
	if token, err := config.SlackToken(cfg); err == nil {
		resp.Token = config.MaskToken(token)
	}

	if jsonOutput {
		return outputJSON(resp)
	}

	outputHuman("config dir:           %s", dir)
	for _, path := range []string{
		config.StatusesPath(dir),
		config.DefaultsPath(dir),
		config.GlobalConfigPath(dir),
		config.EnvPath(dir),
	} {
		state := faintStyle.Render("missing")
		if files[path] {
			state = okStyle.Render("ok")
		}
		outputHuman("  %-40s %s", path, state)
	}
	if resp.TokenSource == "" {
		outputHuman("token:                %s", errorStyle.Render("not configured"))
	} else {
		outputHuman("token:                %s (from %s)", resp.Token, resp.TokenSource)
	}
	outputHuman("dnd-default-minutes:  %d", resp.DNDDefaultMinutes)
	if resp.APIURL != "" {
		outputHuman("api-url:              %s", resp.APIURL)
	}
	return nil
}

// normalizeKey converts key formats (dnd-default-minutes, dnd_default_minutes) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
