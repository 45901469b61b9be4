// Package config handles the per-user quickstatus configuration directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the configuration directory under the user's home.
	DirName = ".quickstatus"
	// HomeEnv overrides the configuration directory.
	HomeEnv = "QUICKSTATUS_HOME"

	StatusesFile     = "statuses.json"
	DefaultsFile     = "defaults.json"
	GlobalConfigFile = "config.yml"
	EnvFile          = ".env"
)

// ErrNoHomeDir is returned when neither QUICKSTATUS_HOME nor the home directory is available.
var ErrNoHomeDir = errors.New("cannot determine home directory")

// ConfigLoadError reports a configuration file that is missing or unreadable.
type ConfigLoadError struct {
	Message string
	Path    string
	Err     error
}

func (e *ConfigLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Message, e.Path)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Dir returns the configuration directory.
// QUICKSTATUS_HOME wins; otherwise ~/.quickstatus.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return ExpandPath(dir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, DirName), nil
}

// StatusesPath returns the path to statuses.json in dir.
func StatusesPath(dir string) string {
	return filepath.Join(dir, StatusesFile)
}

// DefaultsPath returns the path to defaults.json in dir.
func DefaultsPath(dir string) string {
	return filepath.Join(dir, DefaultsFile)
}

// GlobalConfigPath returns the path to config.yml in dir.
func GlobalConfigPath(dir string) string {
	return filepath.Join(dir, GlobalConfigFile)
}

// EnvPath returns the path to the .env file in dir.
func EnvPath(dir string) string {
	return filepath.Join(dir, EnvFile)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}

// HelpfulConfigMessage explains how to bootstrap a missing configuration.
func HelpfulConfigMessage(dir string) string {
	return fmt.Sprintf(`No quickstatus configuration found in %s.

Tip: run 'status init' to write a starter %s, then add your Slack token:
  echo 'SLACK_TOKEN=xoxp-...' >> %s`,
		dir,
		StatusesFile,
		EnvPath(dir))
}
