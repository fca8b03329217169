package shift

import (
	"fmt"
	"time"
)

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 || t[2] != ':' {
		return 0
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// HourOf returns the hour component of an "HH:MM" time, clamped to [0,23].
// Minutes are truncated.
func HourOf(t string) int {
	h := TimeToMinutes(t) / 60
	if h > 23 {
		return 23
	}
	return h
}

// ValidateTime checks that s is a wall-clock time in HH:MM format.
func ValidateTime(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// HourLabel formats an hour as "HH:00".
func HourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
