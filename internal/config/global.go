package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// TokenEnv is the preferred environment variable for the Slack user token.
	TokenEnv = "SLACK_TOKEN"
	// LegacyTokenEnv is the variable older .env files used.
	LegacyTokenEnv = "TOKEN"

	// DefaultDNDMinutes is used by 'dnd set' when no time is given.
	DefaultDNDMinutes = 60
)

// ErrMissingToken is returned when no Slack token is configured anywhere.
var ErrMissingToken = errors.New("no Slack token configured")

// GlobalConfig represents optional settings stored in ~/.quickstatus/config.yml.
type GlobalConfig struct {
	SlackToken        string `yaml:"slack_token,omitempty"`
	DNDDefaultMinutes int    `yaml:"dnd_default_minutes,omitempty"`
	APIURL            string `yaml:"api_url,omitempty"`
}

// globalConfigCache caches the loaded global config along with the path it came from.
var (
	globalConfigCache     *GlobalConfig
	globalConfigCachePath string
)

// LoadGlobalConfig loads config.yml from dir.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig(dir string) (*GlobalConfig, error) {
	path := GlobalConfigPath(dir)
	if globalConfigCache != nil && globalConfigCachePath == path {
		return globalConfigCache, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, &ConfigLoadError{Message: "could not read", Path: path, Err: err}
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
	}

	globalConfigCache = &cfg
	globalConfigCachePath = path
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
	globalConfigCachePath = ""
}

// DNDMinutes returns the configured default snooze length.
func (c *GlobalConfig) DNDMinutes() int {
	if c.DNDDefaultMinutes > 0 {
		return c.DNDDefaultMinutes
	}
	return DefaultDNDMinutes
}

// GetConfigValue returns the environment variable envKey if set, else configValue.
func GetConfigValue(envKey, configValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return configValue
}

// LoadEnv loads .env files from dir and then the working directory.
// Variables already set in the environment are left alone, and missing files are skipped.
func LoadEnv(dir string) error {
	for _, path := range []string{EnvPath(dir), EnvFile} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
		}
	}
	return nil
}

// SlackToken resolves the Slack user token: SLACK_TOKEN, then TOKEN, then config.yml.
func SlackToken(cfg *GlobalConfig) (string, error) {
	token := GetConfigValue(TokenEnv, GetConfigValue(LegacyTokenEnv, cfg.SlackToken))
	if token == "" {
		return "", fmt.Errorf("%w: set %s in the environment or a .env file, or slack_token in %s",
			ErrMissingToken, TokenEnv, GlobalConfigFile)
	}
	return token, nil
}

// Save writes the config to dir/config.yml and refreshes the cache.
func (c *GlobalConfig) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := GlobalConfigPath(dir)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	globalConfigCache = c
	globalConfigCachePath = path
	return nil
}

// TokenSource names where SlackToken would find the token, or "" if nowhere.
func TokenSource(cfg *GlobalConfig) string {
	switch {
	case os.Getenv(TokenEnv) != "":
		return TokenEnv
	case os.Getenv(LegacyTokenEnv) != "":
		return LegacyTokenEnv
	case cfg.SlackToken != "":
		return GlobalConfigFile
	default:
		return ""
	}
}

// MaskToken hides all but the token's prefix and last four characters.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:5] + "..." + token[len(token)-4:]
}
