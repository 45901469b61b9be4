// Package status defines canned presence statuses and the catalog that names them.
package status

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/matsen/quickstatus/internal/expiration"
)

// ErrUnknownStatus is returned when a status name is not in the catalog.
var ErrUnknownStatus = errors.New("not a valid status")

// Status is a presence status as stored in statuses.json and defaults.json.
type Status struct {
	// Name is the catalog key. It is filled in by Lookup and persisted with
	// default-stack entries; statuses.json does not need it.
	Name string `json:"name,omitempty"`

	Text  string `json:"status_text"`
	Emoji string `json:"status_emoji"`

	// Minutes is the default lifetime when no time is given on the command line.
	// Zero means the status does not expire on its own.
	Minutes int `json:"status_expiration,omitempty"`

	// Disturb is false for statuses that also silence notifications.
	// Missing means true.
	Disturb *bool `json:"disturb,omitempty"`

	// Expires is set only on entries of the default stack.
	Expires expiration.Expiration `json:"expires,omitzero"`
}

// AllowsDisturb reports whether notifications stay on while the status is active.
func (s Status) AllowsDisturb() bool {
	return s.Disturb == nil || *s.Disturb
}

// WantsDND reports whether setting the status should also start a DND snooze.
func (s Status) WantsDND() bool {
	return !s.AllowsDisturb()
}

// WithExpiration returns a copy of s that expires at e.
func (s Status) WithExpiration(e expiration.Expiration) Status {
	s.Expires = e
	return s
}

// String renders the status the way Slack shows it: emoji then text.
func (s Status) String() string {
	return strings.TrimSpace(s.Emoji + " " + s.Text)
}

// Catalog maps status names to their definitions.
type Catalog map[string]Status

// UnknownStatusError carries the requested name and the names that would have worked.
type UnknownStatusError struct {
	Name  string
	Valid []string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s is not a valid status; valid statuses are: %s", e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}

// Lookup returns the status named name.
func (c Catalog) Lookup(name string) (Status, error) {
	s, ok := c[name]
	if !ok {
		return Status{}, &UnknownStatusError{Name: name, Valid: c.Names()}
	}
	s.Name = name
	return s, nil
}

// Names returns the catalog's status names in lexical order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bool returns a pointer to b, for filling Status.Disturb.
func Bool(b bool) *bool {
	return &b
}
