// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/summary"
)

// DataLoadedMsg carries a fresh read of the repository.
type DataLoadedMsg struct {
	Entities []shift.Entity
	Shifts   []*shift.Shift
}

// ShiftSavedMsg is sent after a draft was committed.
type ShiftSavedMsg struct {
	Shift   *shift.Shift
	Created bool
}

// SummaryMsg is sent when the day summary is ready.
type SummaryMsg struct {
	Summary *summary.DaySummary
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// TickMsg refreshes the wall clock behind the now marker.
type TickMsg struct {
	Time time.Time
}

// TickInterval is how often the now marker moves.
const TickInterval = time.Minute

// LoadData reads every entity and shift.
func LoadData(repo shift.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		entities, err := repo.Entities(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading entities: %w", err)}
		}

		shifts, err := repo.ListShifts(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading shifts: %w", err)}
		}

		return DataLoadedMsg{Entities: entities, Shifts: shifts}
	}
}

// SaveShift commits a draft. An id of zero creates a new shift.
func SaveShift(repo shift.Repository, id int64, d shift.Draft) tea.Cmd {
	return func() tea.Msg {
		if err := d.Validate(); err != nil {
			return ErrMsg{Err: err}
		}

		ctx := context.Background()
		if id == 0 {
			s, err := repo.CreateShift(ctx, d)
			if err != nil {
				return ErrMsg{Err: fmt.Errorf("creating shift: %w", err)}
			}
			return ShiftSavedMsg{Shift: s, Created: true}
		}

		s, err := repo.UpdateShift(ctx, id, d)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("updating shift %d: %w", id, err)}
		}
		if s == nil {
			return ErrMsg{Err: fmt.Errorf("shift %d no longer exists", id)}
		}
		return ShiftSavedMsg{Shift: s}
	}
}

// DaySummary aggregates the shifts visible under sel.
func DaySummary(repo shift.Repository, sel filter.Selection) tea.Cmd {
	return func() tea.Msg {
		sum, err := summary.BuildDaySummary(context.Background(), repo, sel)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SummaryMsg{Summary: sum}
	}
}

// Tick schedules the next clock refresh.
func Tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
