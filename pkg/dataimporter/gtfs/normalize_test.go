package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		value   string
		seconds int
	}{
		{"00:00:00", 0},
		{"08:30:15", 30615},
		{"24:00:00", 86400},
		// Service days run past midnight
		{"25:30:00", 91800},
		{" 06:05:00 ", 21900},
	}

	for _, test := range tests {
		seconds, err := ParseClockTime(test.value)
		require.NoError(t, err, test.value)
		assert.Equal(t, test.seconds, seconds, test.value)
	}
}

func TestParseClockTimeInvalid(t *testing.T) {
	for _, value := range []string{"", "12:30", "ab:cd:ef", "12:61:00", "12:00:75", "-1:00:00"} {
		_, err := ParseClockTime(value)
		assert.Error(t, err, value)
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-01-02", NormalizeDate("20240102"))
	assert.Equal(t, "2024-01-02", NormalizeDate(" 20240102 "))

	// Anything that doesn't look like a feed date passes through
	assert.Equal(t, "2024-01-02", NormalizeDate("2024-01-02"))
	assert.Equal(t, "notadate", NormalizeDate("notadate"))
	assert.Equal(t, "", NormalizeDate(""))
}
