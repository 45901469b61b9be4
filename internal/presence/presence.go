// Package presence implements the quickstatus operations: setting and clearing
// the Slack status, the default-status stack, and Do Not Disturb snoozes.
//
// Operations that change local state persist defaults.json before calling Slack.
package presence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matsen/quickstatus/internal/config"
	"github.com/matsen/quickstatus/internal/expiration"
	"github.com/matsen/quickstatus/internal/slack"
	"github.com/matsen/quickstatus/internal/status"
)

// Errors returned by Manager operations.
var (
	ErrInvalidTime     = errors.New("invalid time")
	ErrAlreadyExpired  = errors.New("time is already in the past")
	ErrTimeRequired    = errors.New("a time is required")
	ErrDNDNeedsTimeout = errors.New("a status timeout must be specified to set do not disturb")
)

// API is the subset of the Slack client the manager drives.
type API interface {
	SetStatus(ctx context.Context, text, emoji string, expiration int64) error
	GetStatus(ctx context.Context) (slack.Profile, error)
	SetSnooze(ctx context.Context, minutes int) error
	EndSnooze(ctx context.Context) error
}

// Manager applies statuses and keeps defaults.json up to date.
type Manager struct {
	api        API
	catalog    status.Catalog
	defaults   *config.Defaults
	dir        string
	now        func() time.Time
	dndMinutes int
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithDNDMinutes sets the snooze length used when 'dnd set' gets no time.
func WithDNDMinutes(minutes int) Option {
	return func(m *Manager) {
		if minutes > 0 {
			m.dndMinutes = minutes
		}
	}
}

// New creates a Manager. defaults is persisted to dir whenever it changes.
func New(api API, catalog status.Catalog, defaults *config.Defaults, dir string, opts ...Option) *Manager {
	if defaults == nil {
		defaults = &config.Defaults{}
	}
	m := &Manager{
		api:        api,
		catalog:    catalog,
		defaults:   defaults,
		dir:        dir,
		now:        time.Now,
		dndMinutes: config.DefaultDNDMinutes,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Applied describes a status that was pushed to Slack.
type Applied struct {
	Status     status.Status         `json:"status"`
	Expires    expiration.Expiration `json:"expires"`
	DNDMinutes int                   `json:"dnd_minutes,omitempty"`
}

// ClearResult describes what Clear and DefaultPop fell back to.
type ClearResult struct {
	Popped     *status.Status        `json:"popped,omitempty"`
	Pruned     int                   `json:"pruned"`
	Fallback   *Applied              `json:"fallback,omitempty"`
	DND        expiration.Expiration `json:"dnd"`
	DNDMinutes int                   `json:"dnd_minutes,omitempty"`
	DNDEnded   bool                  `json:"dnd_ended"`
}

// DNDResult describes a snooze that was started.
type DNDResult struct {
	Expires expiration.Expiration `json:"expires"`
	Minutes int                   `json:"minutes"`
}

// Set looks up a canned status and applies it. timeArg is a minute count or a
// timestamp; when empty the status's own status_expiration is used.
func (m *Manager) Set(ctx context.Context, name, timeArg string) (*Applied, error) {
	s, err := m.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	now := m.now()
	var exp expiration.Expiration
	switch {
	case timeArg != "":
		exp, err = m.parseTime(timeArg, now)
		if err != nil {
			return nil, err
		}
	case s.Minutes > 0:
		exp, err = expiration.FromMinutes(s.Minutes, now)
		if err != nil {
			return nil, err
		}
	}

	if s.WantsDND() && exp.IsZero() {
		return nil, fmt.Errorf("%w (status %q has disturb: false)", ErrDNDNeedsTimeout, name)
	}

	return m.apply(ctx, s, exp, now)
}

// Clear drops expired defaults, then applies the active default or clears the
// status outright. The persisted default DND is re-applied while it is live
// and forgotten once it has expired.
func (m *Manager) Clear(ctx context.Context) (*ClearResult, error) {
	now := m.now()
	result := &ClearResult{Pruned: m.defaults.PruneExpired(now)}
	changed := result.Pruned > 0
	if m.forgetExpiredDND(now) {
		changed = true
	}
	if changed {
		if err := m.save(); err != nil {
			return nil, err
		}
	}

	if err := m.fallback(ctx, now, result); err != nil {
		return nil, err
	}
	if err := m.settleDND(ctx, now, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Show returns the status currently set in Slack.
func (m *Manager) Show(ctx context.Context) (slack.Profile, error) {
	return m.api.GetStatus(ctx)
}

// Describe returns the canned definition of a status.
func (m *Manager) Describe(name string) (status.Status, error) {
	return m.catalog.Lookup(name)
}

// List returns the canned statuses in name order.
func (m *Manager) List() []status.Status {
	names := m.catalog.Names()
	out := make([]status.Status, 0, len(names))
	for _, name := range names {
		s, _ := m.catalog.Lookup(name)
		out = append(out, s)
	}
	return out
}

// DefaultAdd pushes a canned status onto the default stack until the given
// time, and applies it.
func (m *Manager) DefaultAdd(ctx context.Context, name, timeArg string) (*Applied, error) {
	s, err := m.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if timeArg == "" {
		return nil, fmt.Errorf("%w for a default status", ErrTimeRequired)
	}

	now := m.now()
	exp, err := m.parseTime(timeArg, now)
	if err != nil {
		return nil, err
	}

	m.defaults.Push(s.WithExpiration(exp))
	if err := m.save(); err != nil {
		return nil, err
	}

	return m.apply(ctx, s, exp, now)
}

// DefaultPop removes the active default and falls back to the next live one,
// or clears the status when none is left. Do Not Disturb is then settled the
// same way Clear settles it. Popping an empty stack is not an error.
func (m *Manager) DefaultPop(ctx context.Context) (*ClearResult, error) {
	now := m.now()
	result := &ClearResult{}

	if popped, ok := m.defaults.Pop(); ok {
		result.Popped = &popped
	}
	result.Pruned = m.defaults.PruneExpired(now)
	m.forgetExpiredDND(now)

	if err := m.save(); err != nil {
		return nil, err
	}

	if err := m.fallback(ctx, now, result); err != nil {
		return nil, err
	}
	if err := m.settleDND(ctx, now, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultList returns the default stack, bottom first.
func (m *Manager) DefaultList() []status.Status {
	out := make([]status.Status, len(m.defaults.Statuses))
	copy(out, m.defaults.Statuses)
	return out
}

// ExpiredDefaults counts stack entries that have expired but are not yet
// pruned, because a live default sits above them.
func (m *Manager) ExpiredDefaults() int {
	now := m.now()
	expired := 0
	for _, s := range m.defaults.Statuses {
		if s.Expires.IsExpiredAt(now) {
			expired++
		}
	}
	return expired
}

// DefaultDND returns the persisted default snooze, zero when none is set.
func (m *Manager) DefaultDND() expiration.Expiration {
	return m.defaults.DND
}

// DNDSet snoozes notifications and remembers the snooze as the default DND.
// An empty timeArg snoozes for the configured default number of minutes.
func (m *Manager) DNDSet(ctx context.Context, timeArg string) (*DNDResult, error) {
	now := m.now()

	var exp expiration.Expiration
	var err error
	if timeArg == "" {
		exp, err = expiration.FromMinutes(m.dndMinutes, now)
	} else {
		exp, err = m.parseTime(timeArg, now)
	}
	if err != nil {
		return nil, err
	}

	m.defaults.DND = exp
	if err := m.save(); err != nil {
		return nil, err
	}

	minutes := exp.RemainingMinutes(now)
	if err := m.api.SetSnooze(ctx, minutes); err != nil {
		return nil, err
	}
	return &DNDResult{Expires: exp, Minutes: minutes}, nil
}

// DNDClear forgets the default DND and ends any active snooze.
func (m *Manager) DNDClear(ctx context.Context) error {
	m.defaults.DND = expiration.Expiration{}
	if err := m.save(); err != nil {
		return err
	}
	return m.api.EndSnooze(ctx)
}

// apply sets s in Slack until exp, snoozing as well when s asks for it.
func (m *Manager) apply(ctx context.Context, s status.Status, exp expiration.Expiration, now time.Time) (*Applied, error) {
	if err := m.api.SetStatus(ctx, s.Text, s.Emoji, exp.Unix()); err != nil {
		return nil, err
	}

	applied := &Applied{Status: s, Expires: exp}
	if s.WantsDND() && !exp.IsZero() {
		applied.DNDMinutes = exp.RemainingMinutes(now)
		if err := m.api.SetSnooze(ctx, applied.DNDMinutes); err != nil {
			return nil, err
		}
	}
	return applied, nil
}

// fallback applies the top of the default stack, or clears the status.
func (m *Manager) fallback(ctx context.Context, now time.Time, result *ClearResult) error {
	top, ok := m.defaults.Top()
	if !ok {
		return m.api.SetStatus(ctx, "", "", 0)
	}

	applied, err := m.apply(ctx, top, top.Expires, now)
	if err != nil {
		return err
	}
	result.Fallback = applied
	return nil
}

// settleDND re-applies a live default DND. Otherwise it ends any snooze,
// unless the fallback status just started its own.
func (m *Manager) settleDND(ctx context.Context, now time.Time, result *ClearResult) error {
	switch {
	case !m.defaults.DND.IsZero():
		result.DND = m.defaults.DND
		result.DNDMinutes = m.defaults.DND.RemainingMinutes(now)
		return m.api.SetSnooze(ctx, result.DNDMinutes)
	case result.Fallback != nil && result.Fallback.DNDMinutes > 0:
		return nil
	default:
		if err := m.api.EndSnooze(ctx); err != nil {
			return err
		}
		result.DNDEnded = true
		return nil
	}
}

// forgetExpiredDND drops a default DND that has run out. Reports whether it did.
func (m *Manager) forgetExpiredDND(now time.Time) bool {
	if m.defaults.DND.IsZero() || !m.defaults.DND.IsExpiredAt(now) {
		return false
	}
	m.defaults.DND = expiration.Expiration{}
	return true
}

// parseTime parses a command-line time and rejects times that are not in the future.
func (m *Manager) parseTime(arg string, now time.Time) (expiration.Expiration, error) {
	exp, err := expiration.ParseArg(arg, now)
	if err != nil {
		return expiration.Expiration{}, fmt.Errorf("%w %q: %w", ErrInvalidTime, arg, err)
	}
	if exp.RemainingMinutes(now) == 0 {
		return expiration.Expiration{}, fmt.Errorf("%w: %s", ErrAlreadyExpired, exp)
	}
	return exp, nil
}

func (m *Manager) save() error {
	return m.defaults.Save(m.dir)
}
