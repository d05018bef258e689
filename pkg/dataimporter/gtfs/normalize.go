package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime converts a feed "HH:MM:SS" clock string to seconds from
// midnight. Hours past 24 are legal (a 25:30:00 arrival belongs to the
// previous service day) and simply keep counting.
func ParseClockTime(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("clock time %q is not HH:MM:SS", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", value, err)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", value, err)
	}

	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("clock time %q is out of range", value)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// NormalizeDate rewrites a feed YYYYMMDD date as YYYY-MM-DD. Values that
// don't look like a feed date pass through untouched.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if len(value) != 8 {
		return value
	}
	if _, err := strconv.Atoi(value); err != nil {
		return value
	}

	return value[:4] + "-" + value[4:6] + "-" + value[6:]
}
