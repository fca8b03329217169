// Package shift defines the core domain types for rota.
package shift

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidCoverage   = errors.New("coverage must be 'covered' or 'uncovered'")
	ErrInvalidView       = errors.New("view must be 'worker', 'client' or 'service'")
	ErrEmptyTarget       = errors.New("shift needs a worker or a service/client")
)

// Coverage reports whether a shift has someone able to fulfil it.
type Coverage string

const (
	CoverageCovered   Coverage = "covered"
	CoverageUncovered Coverage = "uncovered"
)

// ParseCoverage accepts "covered" or "uncovered" in any case.
func ParseCoverage(s string) (Coverage, error) {
	switch Coverage(strings.ToLower(strings.TrimSpace(s))) {
	case CoverageCovered:
		return CoverageCovered, nil
	case CoverageUncovered:
		return CoverageUncovered, nil
	default:
		return "", ErrInvalidCoverage
	}
}

// Shift is a single assignment of a worker to a service or client for a time span.
type Shift struct {
	ID            int64
	WorkerID      *int64 // nil means unassigned
	WorkerName    string
	ServiceClient string
	Type          string
	RequiredRole  string
	Start         string // "HH:MM" format
	End           string // "HH:MM" format
	Date          time.Time
	Coverage      Coverage
	Notes         string
}

// StartHour returns the hour component of the start time.
func (s *Shift) StartHour() int {
	return HourOf(s.Start)
}

// EndHour returns the hour component of the end time.
func (s *Shift) EndHour() int {
	return HourOf(s.End)
}

// Wraps reports whether the shift runs past midnight.
func (s *Shift) Wraps() bool {
	return s.EndHour() < s.StartHour()
}

// DurationHours returns the number of hourly slots the shift spans.
// Equal start and end hours give 0, never 24.
func (s *Shift) DurationHours() int {
	start, end := s.StartHour(), s.EndHour()
	switch {
	case end > start:
		return end - start
	case end < start:
		return (24 - start) + end
	default:
		return 0
	}
}

// Occupies reports whether the shift covers the given hourly slot.
// Slots are half-open: a 09:00-17:00 shift occupies 9 through 16.
func (s *Shift) Occupies(slot int) bool {
	start, end := s.StartHour(), s.EndHour()
	switch {
	case end > start:
		return slot >= start && slot < end
	case end < start:
		return slot >= start || slot < end
	default:
		return false
	}
}

// IsCovered returns true if the shift has covered status.
func (s *Shift) IsCovered() bool {
	return s.Coverage == CoverageCovered
}

// IsAssigned returns true if a worker is attached to the shift.
func (s *Shift) IsAssigned() bool {
	return s.WorkerID != nil
}

// IsNight returns true for night shifts.
func (s *Shift) IsNight() bool {
	return s.Type == TypeNightShift
}

// IsUrgent flags uncovered shifts that are night shifts or whose notes ask for urgency.
func (s *Shift) IsUrgent() bool {
	if s.IsCovered() {
		return false
	}
	return s.IsNight() || strings.Contains(strings.ToLower(s.Notes), "urgent")
}

// OnDate reports whether the shift is scheduled on the same calendar day as d.
func (s *Shift) OnDate(d time.Time) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := d.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a deep copy of the shift.
func (s *Shift) Clone() *Shift {
	if s == nil {
		return nil
	}
	c := *s
	if s.WorkerID != nil {
		id := *s.WorkerID
		c.WorkerID = &id
	}
	return &c
}
