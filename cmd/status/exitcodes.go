package main

import (
	"errors"

	"github.com/matsen/quickstatus/internal/config"
	"github.com/matsen/quickstatus/internal/expiration"
	"github.com/matsen/quickstatus/internal/presence"
	"github.com/matsen/quickstatus/internal/slack"
	"github.com/matsen/quickstatus/internal/status"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, Slack API failure)
	ExitConfigError = 2 // Configuration error (missing/malformed config files, missing or rejected token)
	ExitDataError   = 3 // Data error (unknown status name, malformed or past time)
)

// exitCodeFor maps an error returned by a command to a process exit code.
func exitCodeFor(err error) int {
	var loadErr *config.ConfigLoadError
	var formatErr *expiration.FormatError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &loadErr),
		errors.Is(err, config.ErrMissingToken),
		errors.Is(err, config.ErrNoHomeDir),
		errors.Is(err, config.ErrAlreadyInitialized),
		slack.IsAuthError(err):
		return ExitConfigError
	case errors.Is(err, status.ErrUnknownStatus),
		errors.Is(err, presence.ErrInvalidTime),
		errors.Is(err, presence.ErrAlreadyExpired),
		errors.Is(err, presence.ErrTimeRequired),
		errors.Is(err, presence.ErrDNDNeedsTimeout),
		errors.Is(err, expiration.ErrNonPositiveMinutes),
		errors.Is(err, expiration.ErrTooManyMinutes),
		errors.As(err, &formatErr):
		return ExitDataError
	default:
		return ExitError
	}
}
