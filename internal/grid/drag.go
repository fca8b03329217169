package grid

import (
	"errors"
	"math"
	"time"

	"github.com/javiermolinar/rota/internal/shift"
)

// Drag errors.
var (
	ErrAlreadyDragging = errors.New("already dragging")
	ErrNotDragging     = errors.New("not dragging")
	ErrCellOccupied    = errors.New("cell already has a shift")
)

// Anchor is the cell where a drag started.
type Anchor struct {
	EntityID   int64
	EntityName string
	Slot       int
}

// Preview is the span selected so far, with its geometry.
type Preview struct {
	StartSlot int
	EndSlot   int // inclusive
	StartTime string
	EndTime   string
	Left      int
	Width     int
}

// Slots returns the number of slots in the preview.
func (p Preview) Slots() int {
	return p.EndSlot - p.StartSlot + 1
}

// Contains reports whether slot falls inside the preview.
func (p Preview) Contains(slot int) bool {
	return slot >= p.StartSlot && slot <= p.EndSlot
}

// Session is the state of an active drag.
type Session struct {
	Anchor   Anchor
	StartX   int
	CurrentX int
	Target   int
	Preview  Preview
}

// Drag turns pointer down/move/up into a slot span. It is either idle or
// holds exactly one session.
type Drag struct {
	grid    TimeGrid
	session *Session
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.session != nil
}

// Session returns a copy of the active session.
func (d *Drag) Session() (Session, bool) {
	if d.session == nil {
		return Session{}, false
	}
	return *d.session, true
}

// Preview returns the current preview.
func (d *Drag) Preview() (Preview, bool) {
	if d.session == nil {
		return Preview{}, false
	}
	return d.session.Preview, true
}

// Begin starts a drag at anchor with the pointer at x.
// Callers reject occupied cells before calling Begin.
func (d *Drag) Begin(anchor Anchor, x int, g TimeGrid) error {
	if d.session != nil {
		return ErrAlreadyDragging
	}
	if g.SlotWidth < 1 {
		g.SlotWidth = 1
	}
	anchor.Slot = Clamp(anchor.Slot)
	d.grid = g
	d.session = &Session{
		Anchor:   anchor,
		StartX:   x,
		CurrentX: x,
		Target:   anchor.Slot,
	}
	d.session.Preview = d.preview(anchor.Slot, anchor.Slot)
	return nil
}

// Move updates the pointer position and recomputes the preview.
func (d *Drag) Move(x int) (Preview, error) {
	if d.session == nil {
		return Preview{}, ErrNotDragging
	}
	s := d.session
	s.CurrentX = x
	delta := roundHalfUp(float64(x-s.StartX) / float64(d.grid.SlotWidth))
	s.Target = Clamp(s.Anchor.Slot + delta)
	s.Preview = d.preview(s.Anchor.Slot, s.Target)
	return s.Preview, nil
}

// Step moves the pointer by whole slots, for keyboard driven drags.
func (d *Drag) Step(cells int) (Preview, error) {
	if d.session == nil {
		return Preview{}, ErrNotDragging
	}
	return d.Move(d.session.CurrentX + cells*d.grid.SlotWidth)
}

// End freezes the preview into a draft and returns to idle.
// The anchor entity fills the worker field under the worker view and the
// service/client field otherwise.
func (d *Drag) End(by shift.ViewBy, date time.Time) (shift.Draft, bool) {
	if d.session == nil {
		return shift.Draft{}, false
	}
	s := d.session
	d.session = nil
	target := shift.TargetFor(by, s.Anchor.EntityName)
	return shift.NewDraft(target, s.Preview.StartTime, s.Preview.EndTime, date), true
}

// Cancel drops the session without producing a draft.
func (d *Drag) Cancel() bool {
	if d.session == nil {
		return false
	}
	d.session = nil
	return true
}

func (d *Drag) preview(anchor, target int) Preview {
	start, end := min(anchor, target), max(anchor, target)
	return Preview{
		StartSlot: start,
		EndSlot:   end,
		StartTime: SlotLabel(start),
		EndTime:   SlotEndLabel(end),
		Left:      start * d.grid.SlotWidth,
		Width:     (end - start + 1) * d.grid.SlotWidth,
	}
}

// roundHalfUp rounds halves towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
