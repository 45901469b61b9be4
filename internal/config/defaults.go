package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matsen/quickstatus/internal/expiration"
	"github.com/matsen/quickstatus/internal/status"
)

// Defaults is the persisted fallback state in defaults.json.
// Statuses is a stack: the last element is the active default.
type Defaults struct {
	Statuses []status.Status       `json:"statuses"`
	DND      expiration.Expiration `json:"dnd"`
}

// legacyDefaults is the older single-slot defaults.json layout, with one
// "status" object in place of the stack.
type legacyDefaults struct {
	Status *legacyStatus `json:"status"`
}

// legacyStatus is a default status whose status_expiration may hold either
// minutes or an absolute timestamp.
type legacyStatus struct {
	status.Status
	Expiration json.RawMessage `json:"status_expiration"`
}

// toStatus converts the legacy entry, reading a timestamp status_expiration as Expires.
func (l *legacyStatus) toStatus() (status.Status, error) {
	s := l.Status
	if len(l.Expiration) == 0 || string(l.Expiration) == "null" {
		return s, nil
	}

	var minutes int
	if err := json.Unmarshal(l.Expiration, &minutes); err == nil {
		s.Minutes = minutes
		return s, nil
	}

	var exp expiration.Expiration
	if err := json.Unmarshal(l.Expiration, &exp); err != nil {
		return status.Status{}, err
	}
	s.Expires = exp
	return s, nil
}

// LoadDefaults reads defaults.json from dir. A missing file is an empty state.
func LoadDefaults(dir string) (*Defaults, error) {
	path := DefaultsPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, &ConfigLoadError{Message: "could not read", Path: path, Err: err}
	}

	var d Defaults
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
	}

	// Carry a single-slot default over onto the stack so the next Save keeps it.
	var legacy legacyDefaults
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
	}
	if legacy.Status != nil {
		s, err := legacy.Status.toStatus()
		if err != nil {
			return nil, &ConfigLoadError{Message: "could not parse contents of", Path: path, Err: err}
		}
		if s.Text != "" || s.Emoji != "" {
			d.Statuses = append([]status.Status{s}, d.Statuses...)
		}
	}

	return &d, nil
}

// Save writes d to defaults.json in dir, creating dir if needed.
func (d *Defaults) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out := *d
	if out.Statuses == nil {
		out.Statuses = []status.Status{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}
	data = append(data, '\n')

	path := DefaultsPath(dir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Push adds s on top of the default stack.
func (d *Defaults) Push(s status.Status) {
	d.Statuses = append(d.Statuses, s)
}

// Pop removes and returns the top of the default stack.
// ok is false when the stack is empty.
func (d *Defaults) Pop() (s status.Status, ok bool) {
	if len(d.Statuses) == 0 {
		return status.Status{}, false
	}
	last := len(d.Statuses) - 1
	s = d.Statuses[last]
	d.Statuses = d.Statuses[:last]
	return s, true
}

// Top returns the active default without removing it.
func (d *Defaults) Top() (status.Status, bool) {
	if len(d.Statuses) == 0 {
		return status.Status{}, false
	}
	return d.Statuses[len(d.Statuses)-1], true
}

// PruneExpired pops defaults off the top of the stack until the top is still
// live at now. Entries below a live top are left alone. Returns the number removed.
func (d *Defaults) PruneExpired(now time.Time) int {
	removed := 0
	for {
		top, ok := d.Top()
		if !ok || !top.Expires.IsExpiredAt(now) {
			return removed
		}
		d.Pop()
		removed++
	}
}
