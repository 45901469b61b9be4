package slack

import (
	"errors"
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// Operation errors. An APIError wraps exactly one of these.
var (
	ErrStatusUpdate = errors.New("unable to set status")
	ErrStatusFetch  = errors.New("unable to get status")
	ErrDNDUpdate    = errors.New("unable to set snooze")
)

// Slack error codes with special handling.
const (
	CodeSnoozeNotActive = "snooze_not_active"
	CodeInvalidAuth     = "invalid_auth"
	CodeNotAuthed       = "not_authed"
	CodeMissingScope    = "missing_scope"
)

// APIError is a failed Slack call. Code is Slack's "error" field when the API
// answered, or the transport error text otherwise.
type APIError struct {
	Op   error
	Code string
	Err  error
}

func newAPIError(op error, err error) *APIError {
	apiErr := &APIError{Op: op, Code: err.Error(), Err: err}

	var slackErr slackapi.SlackErrorResponse
	if errors.As(err, &slackErr) {
		apiErr.Code = slackErr.Err
	}
	return apiErr
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %s", e.Op, e.Code)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}

// IsAuthError returns true if Slack rejected the token.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case CodeInvalidAuth, CodeNotAuthed, CodeMissingScope, "account_inactive", "token_revoked":
		return true
	}
	return false
}
