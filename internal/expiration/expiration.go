// Package expiration provides the timestamp type used for status and snooze lifetimes.
package expiration

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Layout is the accepted timestamp format (YYYY-MM-DDTHH:MM, local time).
const Layout = "2006-01-02T15:04"

// MaxMinutes is the largest relative lifetime a time.Duration can hold.
const MaxMinutes = math.MaxInt64 / int64(time.Minute)

var (
	// ErrNonPositiveMinutes is returned when a relative lifetime is zero or negative.
	ErrNonPositiveMinutes = errors.New("minutes must be a positive integer")
	// ErrTooManyMinutes is returned when a relative lifetime exceeds MaxMinutes.
	ErrTooManyMinutes = errors.New("too many minutes")
)

// FormatError reports a timestamp that does not match Layout.
type FormatError struct {
	Timestamp string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is not formatted as YYYY-MM-DDTHH:MM", e.Timestamp)
}

// Expiration is a local wall-clock time at which something stops applying.
// The zero value means "never".
type Expiration struct {
	t time.Time
}

// At wraps t, truncated to minute precision.
func At(t time.Time) Expiration {
	return Expiration{t: t.Truncate(time.Minute)}
}

// Parse parses a YYYY-MM-DDTHH:MM timestamp in the local time zone.
func Parse(s string) (Expiration, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Expiration{}, &FormatError{Timestamp: s}
	}
	return Expiration{t: t}, nil
}

// FromMinutes returns now plus the given number of minutes.
func FromMinutes(minutes int, now time.Time) (Expiration, error) {
	if minutes <= 0 {
		return Expiration{}, fmt.Errorf("%w: %d", ErrNonPositiveMinutes, minutes)
	}
	if int64(minutes) > MaxMinutes {
		return Expiration{}, fmt.Errorf("%w: %d (at most %d)", ErrTooManyMinutes, minutes, MaxMinutes)
	}
	return Expiration{t: now.Add(time.Duration(minutes) * time.Minute)}, nil
}

// ParseArg interprets a command-line time argument: a whole number of minutes
// from now, or an absolute timestamp.
func ParseArg(s string, now time.Time) (Expiration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return FromMinutes(n, now)
	}
	return Parse(s)
}

// IsZero reports whether e carries no time.
func (e Expiration) IsZero() bool {
	return e.t.IsZero()
}

// Time returns the underlying time.
func (e Expiration) Time() time.Time {
	return e.t
}

// String formats e with Layout. The zero value formats as "".
func (e Expiration) String() string {
	if e.IsZero() {
		return ""
	}
	return e.t.Format(Layout)
}

// Unix returns epoch seconds, or 0 for the zero value (Slack's "never expires").
func (e Expiration) Unix() int64 {
	if e.IsZero() {
		return 0
	}
	return e.t.Unix()
}

// IsExpiredAt reports whether e lies strictly before now.
// The zero value never expires.
func (e Expiration) IsExpiredAt(now time.Time) bool {
	if e.IsZero() {
		return false
	}
	return e.t.Before(now)
}

// RemainingMinutes returns the whole minutes left before e, rounded up so that
// an unexpired time always reports at least one minute. Expired and zero
// values report 0.
func (e Expiration) RemainingMinutes(now time.Time) int {
	if e.IsZero() || !e.t.After(now) {
		return 0
	}
	d := e.t.Sub(now)
	minutes := int(d / time.Minute)
	if d%time.Minute != 0 {
		minutes++
	}
	return minutes
}

// MarshalJSON encodes e as its timestamp string, or null when zero.
func (e Expiration) MarshalJSON() ([]byte, error) {
	if e.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON decodes a timestamp string. null and "" decode to the zero value.
func (e *Expiration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = Expiration{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding expiration: %w", err)
	}
	if s == "" {
		*e = Expiration{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
