package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

const timeLayout = "15:04"

// minutesPerDay is the exclusive upper bound for a time of day in minutes.
// The value 1440 itself is allowed as an interval end ("24:00").
const minutesPerDay = 24 * 60

var timePattern = regexp.MustCompile(`^(([01][0-9]|2[0-3]):[0-5][0-9]|24:00)$`)

var (
	// ErrInvalidFormat is returned when a string is not a valid "HH:MM" time.
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange is returned when an arithmetic result leaves the day.
	ErrOutOfRange = errors.New("types: time out of day range")
)

// TimeString is a wall-clock time of day in "HH:MM" form.
//
// It deliberately carries no date and no timezone: scheduling logic treats
// times as local wall-clock values and combines them with a date only at the
// point where an absolute instant is needed. The canonical zero-padded form
// makes lexicographic comparison equivalent to chronological comparison.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(mins int) (TimeString, error) {
	if mins < 0 || mins > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, mins)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", mins/60, mins%60)), nil
}

// String implements fmt.Stringer.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a canonical "HH:MM" string.
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by mins.
// The result may be "24:00" (used as an exclusive interval end) but may not
// cross into the next day.
func (t TimeString) AddMinutes(mins int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + mins)
}

// IsBefore reports whether t is strictly earlier than other.
// Canonical zero-padded values compare correctly as strings.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate combines the time of day with a calendar date into an instant in
// the date's location.
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	mins, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, date.Location()), nil
}

// Value implements driver.Valuer for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres returns TIME columns as
// "HH:MM:SS"; only the HH:MM prefix is kept.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
