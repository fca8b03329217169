// Package filter narrows the entity rows and shifts shown in the grid.
// Every function is pure: it returns a new slice and never mutates its input.
package filter

import (
	"strings"
	"time"

	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

// All disables filtering on an axis.
const All = "All"

// Coverage filter values.
const (
	StatusCovered   = "Covered"
	StatusUncovered = "Uncovered"
)

// Statuses returns the coverage filter options in display order.
func Statuses() []string {
	return []string{All, StatusCovered, StatusUncovered}
}

// Selection is the user's current filter choice.
type Selection struct {
	By         shift.ViewBy
	Name       string
	Type       string
	Status     string
	Date       time.Time
	Density    grid.Density
	NameSearch string
}

// NewSelection returns the initial selection for the given view and day.
func NewSelection(by shift.ViewBy, date time.Time) Selection {
	return Selection{
		By:      by,
		Name:    All,
		Type:    All,
		Status:  All,
		Date:    date,
		Density: grid.DensityStandard,
	}
}

// WithBy switches the row group. The selected name no longer belongs to the
// new group, so it resets to All.
func (s Selection) WithBy(by shift.ViewBy) Selection {
	s.By = by
	s.Name = All
	return s
}

// WithName selects a single entity row by display name.
func (s Selection) WithName(name string) Selection {
	if name == "" {
		name = All
	}
	s.Name = name
	return s
}

// WithType filters shifts by type tag.
func (s Selection) WithType(t string) Selection {
	if t == "" {
		t = All
	}
	s.Type = t
	return s
}

// WithStatus filters shifts by coverage.
func (s Selection) WithStatus(status string) Selection {
	if status == "" {
		status = All
	}
	s.Status = status
	return s
}

// WithDate selects the calendar day.
func (s Selection) WithDate(d time.Time) Selection {
	s.Date = d
	return s
}

// WithDensity sets the zoom level.
func (s Selection) WithDensity(d grid.Density) Selection {
	s.Density = grid.ParseDensity(string(d))
	return s
}

// WithNameSearch sets the term that narrows the name picker.
func (s Selection) WithNameSearch(term string) Selection {
	s.NameSearch = term
	return s
}

// ActiveCount returns how many of type, status and name are narrowed.
func ActiveCount(s Selection) int {
	n := 0
	for _, v := range []string{s.Type, s.Status, s.Name} {
		if v != "" && v != All {
			n++
		}
	}
	return n
}

// EntitiesFor returns the entities forming the rows of a view.
func EntitiesFor(by shift.ViewBy, entities []shift.Entity) []shift.Entity {
	out := make([]shift.Entity, 0, len(entities))
	for _, e := range entities {
		if by.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Entities returns the rows for the selection: the view's group, narrowed to
// the selected name unless it is All.
func Entities(s Selection, entities []shift.Entity) []shift.Entity {
	rows := EntitiesFor(s.By, entities)
	if s.Name == "" || s.Name == All {
		return rows
	}
	out := rows[:0:0]
	for _, e := range rows {
		if e.Name == s.Name {
			out = append(out, e)
		}
	}
	return out
}

// SearchNames returns the view's entities whose name contains term,
// ignoring case. An empty term returns the whole group.
func SearchNames(by shift.ViewBy, term string, entities []shift.Entity) []shift.Entity {
	rows := EntitiesFor(by, entities)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	out := rows[:0:0]
	for _, e := range rows {
		if strings.Contains(strings.ToLower(e.Name), term) {
			out = append(out, e)
		}
	}
	return out
}

// Shifts narrows shifts by exact type and by coverage.
func Shifts(shifts []*shift.Shift, typ, status string) []*shift.Shift {
	out := make([]*shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if typ != "" && typ != All && s.Type != typ {
			continue
		}
		switch status {
		case StatusCovered:
			if !s.IsCovered() {
				continue
			}
		case StatusUncovered:
			if s.IsCovered() {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// OnDate returns the shifts scheduled on the calendar day of d.
func OnDate(shifts []*shift.Shift, d time.Time) []*shift.Shift {
	out := make([]*shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.OnDate(d) {
			out = append(out, s)
		}
	}
	return out
}

// Apply runs the shift filters of the selection: day, then type and status.
func Apply(s Selection, shifts []*shift.Shift) []*shift.Shift {
	return Shifts(OnDate(shifts, s.Date), s.Type, s.Status)
}

// WorkersForRole returns the workers eligible for a required role.
// An empty role returns every worker.
func WorkersForRole(role string, entities []shift.Entity) []shift.Entity {
	out := make([]shift.Entity, 0, len(entities))
	for _, e := range entities {
		if role == "" {
			if e.IsWorker() {
				out = append(out, e)
			}
			continue
		}
		if string(e.Category) == role {
			out = append(out, e)
		}
	}
	return out
}

// ServiceClientOptions returns services followed by clients, the targets a
// shift can be booked against.
func ServiceClientOptions(entities []shift.Entity) []shift.Entity {
	out := EntitiesFor(shift.ViewServiceClient, entities)
	return append(out, EntitiesFor(shift.ViewClient, entities)...)
}

// ByType returns the shifts with the given type tag.
func ByType(shifts []*shift.Shift, typ string) []*shift.Shift {
	out := make([]*shift.Shift, 0)
	for _, s := range shifts {
		if s.Type == typ {
			out = append(out, s)
		}
	}
	return out
}

// InTimeRange returns shifts starting within [startHour, endHour]. An
// overnight shift also matches when its end hour is at or before endHour.
func InTimeRange(shifts []*shift.Shift, startHour, endHour int) []*shift.Shift {
	out := make([]*shift.Shift, 0)
	for _, s := range shifts {
		start, end := s.StartHour(), s.EndHour()
		if end < start {
			if start >= startHour || end <= endHour {
				out = append(out, s)
			}
			continue
		}
		if start >= startHour && start <= endHour {
			out = append(out, s)
		}
	}
	return out
}
