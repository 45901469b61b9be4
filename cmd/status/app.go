package main

import (
	"context"
	"fmt"

	"github.com/matsen/quickstatus/internal/config"
	"github.com/matsen/quickstatus/internal/presence"
	"github.com/matsen/quickstatus/internal/slack"
	"github.com/matsen/quickstatus/internal/status"
)

// newSlackAPI builds the Slack client. Tests replace it with a fake.
var newSlackAPI = func(token string, cfg *config.GlobalConfig) presence.API {
	opts := []slack.ClientOption{slack.WithDebug(verbose)}
	if cfg.APIURL != "" {
		opts = append(opts, slack.WithAPIURL(cfg.APIURL))
	}
	return slack.NewClient(token, opts...)
}

// resolveConfigDir returns --config-dir, else QUICKSTATUS_HOME, else ~/.quickstatus.
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return config.ExpandPath(configDir), nil
	}
	return config.Dir()
}

// loadGlobal resolves the config directory, loads .env files, and reads config.yml.
func loadGlobal() (string, *config.GlobalConfig, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return "", nil, err
	}
	verboseLog("config directory: %s", dir)

	if err := config.LoadEnv(dir); err != nil {
		return "", nil, err
	}

	cfg, err := config.LoadGlobalConfig(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, cfg, nil
}

// loadManager loads every config file and builds a Manager.
// When needsSlack is false a missing token is tolerated; any Slack call then fails
// with config.ErrMissingToken.
func loadManager(needsSlack bool) (*presence.Manager, error) {
	dir, cfg, err := loadGlobal()
	if err != nil {
		return nil, err
	}

	catalog, err := config.LoadStatuses(dir)
	if err != nil {
		return nil, fmt.Errorf("%w\n\n%s", err, config.HelpfulConfigMessage(dir))
	}
	verboseLog("loaded %d statuses from %s", len(catalog), config.StatusesPath(dir))

	defaults, err := config.LoadDefaults(dir)
	if err != nil {
		return nil, err
	}
	verboseLog("loaded %d default statuses from %s", len(defaults.Statuses), config.DefaultsPath(dir))

	api, err := slackAPI(cfg, needsSlack)
	if err != nil {
		return nil, err
	}

	return presence.New(api, catalog, defaults, dir, presence.WithDNDMinutes(cfg.DNDMinutes())), nil
}

// loadProfileManager builds a Manager that only reads the Slack profile.
// statuses.json and defaults.json are not needed.
func loadProfileManager() (*presence.Manager, error) {
	dir, cfg, err := loadGlobal()
	if err != nil {
		return nil, err
	}

	api, err := slackAPI(cfg, true)
	if err != nil {
		return nil, err
	}
	return presence.New(api, status.Catalog{}, nil, dir), nil
}

// slackAPI resolves the token and builds the Slack client. When needsSlack is
// false a missing token yields an offlineAPI instead of an error.
func slackAPI(cfg *config.GlobalConfig, needsSlack bool) (presence.API, error) {
	token, err := config.SlackToken(cfg)
	switch {
	case err == nil:
		return newSlackAPI(token, cfg), nil
	case needsSlack:
		return nil, err
	default:
		return offlineAPI{err: err}, nil
	}
}

// offlineAPI stands in for Slack when no token is configured.
type offlineAPI struct {
	err error
}

func (o offlineAPI) SetStatus(context.Context, string, string, int64) error { return o.err }
func (o offlineAPI) GetStatus(context.Context) (slack.Profile, error)       { return slack.Profile{}, o.err }
func (o offlineAPI) SetSnooze(context.Context, int) error                   { return o.err }
func (o offlineAPI) EndSnooze(context.Context) error                        { return o.err }
