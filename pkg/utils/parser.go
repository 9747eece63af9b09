package utils

import (
	"fmt"
	"time"
)

// localTimeLayout matches the provider's scheduled-time format, a naive ISO
// timestamp with a literal milliseconds-and-zone suffix.
const localTimeLayout = "2006-01-02T15:04:05.000Z"

// ParseLocalTime parses a provider local_departure/local_arrival value.
func ParseLocalTime(value string) (time.Time, error) {
	t, err := time.Parse(localTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local time %q: %w", value, err)
	}
	return t, nil
}

// DateOnly truncates a timestamp to midnight UTC. Import dates are always
// normalized with it so equality comparisons hold across database drivers.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
