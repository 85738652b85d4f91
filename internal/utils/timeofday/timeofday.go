// Package timeofday parses wall-clock "HH:MM" strings into comparable
// minute offsets. Offsets are used for ordering and overlap checks only,
// never persisted.
package timeofday

import (
	"strconv"
	"strings"

	"github.com/pontualize/timesheet_app/internal/apperrors"
)

// Parse splits an "HH:MM" string into its hour and minute components.
func Parse(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &apperrors.MalformedTimeError{Value: s}
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &apperrors.MalformedTimeError{Value: s}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &apperrors.MalformedTimeError{Value: s}
	}
	return hour, minute, nil
}

// IsValid reports whether the pair is a real wall-clock time.
func IsValid(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// Minutes reduces an "HH:MM" string to its offset from midnight.
func Minutes(s string) (int, error) {
	hour, minute, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}
