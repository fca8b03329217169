package view

import (
	"fmt"
	"time"
)

// FormatHours formats a whole number of hours as "8h".
func FormatHours(h int) string {
	return fmt.Sprintf("%dh", h)
}

// DayTitle labels a calendar day, marking today.
func DayTitle(day, today time.Time) string {
	label := day.Format("Mon 02 Jan 2006")
	y1, m1, d1 := day.Date()
	y2, m2, d2 := today.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		label += " (today)"
	}
	return label
}
