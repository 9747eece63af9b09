package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLocalTime(t *testing.T) {
	parsed, err := ParseLocalTime("2024-05-01T10:30:00.000Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), parsed)
}

func TestParseLocalTimeRejectsOtherFormats(t *testing.T) {
	for _, value := range []string{
		"",
		"2024-05-01",
		"2024-05-01T10:30:00",
		"01/05/2024 10:30",
	} {
		_, err := ParseLocalTime(value)
		require.Error(t, err, "value %q", value)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 5, 1, 18, 45, 12, 999, time.UTC)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), DateOnly(in))

	// Already-truncated values pass through unchanged
	midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, midnight, DateOnly(midnight))
}
