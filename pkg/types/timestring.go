package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat is returned when the value is not a valid "HH:MM" string
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange is returned when minute arithmetic leaves the 00:00-23:59 range
	ErrOutOfRange = errors.New("types: time out of range")
)

// TimeString is a wall-clock time of day ("10:30") with minute precision.
// It deliberately carries no date and no timezone: booking slots are local
// salon times attached to a separate date column.
type TimeString string

// NewTimeString truncates t to minute precision.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty (not "00:00").
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// TotalMinutes returns minutes since midnight. Panics are avoided: an
// invalid value yields an error instead.
func (t TimeString) TotalMinutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes. Crossing
// midnight is an error: a salon day never wraps.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes", ErrOutOfRange, string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports t < other. Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports t > other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal reports t == other by minute value.
func (t TimeString) Equal(other TimeString) bool {
	return !t.IsBefore(other) && !other.IsBefore(t)
}

// Value implements driver.Valuer so TimeString maps onto a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres returns TIME as "HH:MM:SS"; the
// seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source %T", ErrInvalidFormat, src)
	}

	if len(raw) >= 5 {
		raw = raw[:5]
	}
	ts, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
