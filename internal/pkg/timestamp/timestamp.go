// Package timestamp converts the arrival time typed into the form into the
// epoch seconds value the Directions API expects.
package timestamp

import (
	"errors"
	"fmt"
	"time"
)

const (
	// Layout is DD.MM.YYYY-HH:MM.
	Layout = "02.01.2006-15:04"

	// MaxLength is the input limit of the arrival time field.
	MaxLength = len(Layout)

	// APIOffsetSeconds is subtracted unconditionally from the parsed local time.
	// It matches a single UTC+2 region and ignores daylight saving transitions.
	APIOffsetSeconds int64 = 7200
)

var ErrInvalidFormat = errors.New("arrival time must match DD.MM.YYYY-HH:MM")

// Parse reads s in the process local time zone and returns its epoch seconds
// minus APIOffsetSeconds.
func Parse(s string) (int64, error) {
	if len(s) != MaxLength {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}

	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return t.Unix() - APIOffsetSeconds, nil
}

// Normalize is Parse without the cause: ok is false for any malformed input.
func Normalize(s string) (int64, bool) {
	ts, err := Parse(s)
	if err != nil {
		return 0, false
	}
	return ts, true
}
