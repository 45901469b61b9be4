package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/matsen/quickstatus/internal/status"
)

// ErrAlreadyInitialized is returned by Init when a config file already exists.
var ErrAlreadyInitialized = errors.New("configuration already exists")

// starterStatuses is written by Init.
const starterStatuses = `{
  // Minutes in status_expiration are used when no time is given to 'status set'.
  // "disturb": false also snoozes notifications for the same period.
  "commute": {
    "status_text": "Commuting",
    "status_emoji": ":bus:",
    "status_expiration": 90,
    "disturb": true
  },
  "home": {
    "status_text": "Working remotely",
    "status_emoji": ":house_with_garden:",
    "disturb": true
  },
  "huddle": {
    "status_text": "Huddling",
    "status_emoji": ":dugtrio:",
    "disturb": false
  },
  "lunch": {
    "status_text": "Out to lunch",
    "status_emoji": ":poultry_leg:",
    "status_expiration": 60,
    "disturb": true
  },
  "meet": {
    "status_text": "In a meeting",
    "status_emoji": ":spiral_calendar_pad:",
    "status_expiration": 60,
    "disturb": false
  },
  "office": {
    "status_text": "In the office",
    "status_emoji": ":office:",
    "disturb": true
  },
  "pom": {
    "status_text": "Focusing",
    "status_emoji": ":tomato:",
    "status_expiration": 25,
    "disturb": false
  },
  "travel": {
    "status_text": "Travelling",
    "status_emoji": ":airplane:",
    "disturb": false
  }
}
`

// LoadStatuses reads the status catalog from statuses.json in dir.
// The file may contain comments and trailing commas.
func LoadStatuses(dir string) (status.Catalog, error) {
	path := StatusesPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigLoadError{Message: "could not find file", Path: path}
		}
		return nil, &ConfigLoadError{Message: "could not read", Path: path, Err: err}
	}

	catalog := make(status.Catalog)
	if err := json.Unmarshal(jsonc.ToJSON(data), &catalog); err != nil {
		return nil, &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
	}

	return catalog, nil
}

// Init writes a starter statuses.json and an empty defaults.json into dir.
// Existing files are only replaced when force is set.
func Init(dir string, force bool) ([]string, error) {
	statusesPath := StatusesPath(dir)
	defaultsPath := DefaultsPath(dir)

	if !force {
		for _, path := range []string{statusesPath, defaultsPath} {
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyInitialized, path)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(statusesPath, []byte(starterStatuses), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", StatusesFile, err)
	}

	if err := (&Defaults{}).Save(dir); err != nil {
		return nil, err
	}

	return []string{statusesPath, defaultsPath}, nil
}
