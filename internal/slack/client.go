// Package slack wraps the handful of Slack Web API methods quickstatus needs:
// users.profile.set, users.profile.get, dnd.setSnooze and dnd.endSnooze.
package slack

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/matsen/quickstatus/internal/expiration"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client is a Slack Web API client authenticated with a user token.
type Client struct {
	api *slackapi.Client
}

type clientOptions struct {
	apiURL     string
	httpClient *http.Client
	debug      bool
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithAPIURL points the client at a different API base URL (for testing).
func WithAPIURL(url string) ClientOption {
	return func(o *clientOptions) {
		o.apiURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithDebug logs raw API traffic to stderr.
func WithDebug(debug bool) ClientOption {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// NewClient creates a client for the given user token.
func NewClient(token string, opts ...ClientOption) *Client {
	o := clientOptions{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&o)
	}

	apiOpts := []slackapi.Option{slackapi.OptionHTTPClient(o.httpClient)}
	if o.apiURL != "" {
		url := o.apiURL
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		apiOpts = append(apiOpts, slackapi.OptionAPIURL(url))
	}
	if o.debug {
		apiOpts = append(apiOpts,
			slackapi.OptionDebug(true),
			slackapi.OptionLog(log.New(os.Stderr, "[verbose] slack: ", 0)),
		)
	}

	return &Client{api: slackapi.New(token, apiOpts...)}
}

// Profile is the status portion of the caller's Slack profile.
type Profile struct {
	Text       string `json:"status_text"`
	Emoji      string `json:"status_emoji"`
	Expiration int64  `json:"status_expiration"`
}

// Expires returns the profile expiration, zero when the status never expires.
func (p Profile) Expires() expiration.Expiration {
	if p.Expiration <= 0 {
		return expiration.Expiration{}
	}
	return expiration.At(time.Unix(p.Expiration, 0))
}

// IsEmpty reports whether no status is set.
func (p Profile) IsEmpty() bool {
	return p.Text == "" && p.Emoji == ""
}

// SetStatus sets the caller's status. expiration is epoch seconds, 0 for never.
func (c *Client) SetStatus(ctx context.Context, text, emoji string, expiration int64) error {
	if err := c.api.SetUserCustomStatusContext(ctx, text, emoji, expiration); err != nil {
		return newAPIError(ErrStatusUpdate, err)
	}
	return nil
}

// GetStatus fetches the caller's current status.
func (c *Client) GetStatus(ctx context.Context) (Profile, error) {
	profile, err := c.api.GetUserProfileContext(ctx, &slackapi.GetUserProfileParameters{})
	if err != nil {
		return Profile{}, newAPIError(ErrStatusFetch, err)
	}

	return Profile{
		Text:       profile.StatusText,
		Emoji:      profile.StatusEmoji,
		Expiration: int64(profile.StatusExpiration),
	}, nil
}

// SetSnooze turns on Do Not Disturb for the given number of minutes.
func (c *Client) SetSnooze(ctx context.Context, minutes int) error {
	if _, err := c.api.SetSnoozeContext(ctx, minutes); err != nil {
		return newAPIError(ErrDNDUpdate, err)
	}
	return nil
}

// EndSnooze turns Do Not Disturb off. Ending an inactive snooze is not an error.
func (c *Client) EndSnooze(ctx context.Context) error {
	if _, err := c.api.EndSnoozeContext(ctx); err != nil {
		apiErr := newAPIError(ErrDNDUpdate, err)
		if apiErr.Code == CodeSnoozeNotActive {
			return nil
		}
		return apiErr
	}
	return nil
}
