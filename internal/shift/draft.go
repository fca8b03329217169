package shift

import (
	"fmt"
	"time"
)

// DefaultNotes is attached to new shifts created without notes.
const DefaultNotes = "New assignment"

// DraftTarget names the field a drag anchor fills in a new draft.
// It is either a WorkerAssignment or a ServiceClientAssignment.
type DraftTarget interface {
	isDraftTarget()
	// Name returns the entity name carried by the target.
	Name() string
}

// WorkerAssignment fills the worker field from the anchor entity.
type WorkerAssignment struct {
	Worker string
}

func (WorkerAssignment) isDraftTarget() {}

// Name returns the worker name.
func (w WorkerAssignment) Name() string { return w.Worker }

// ServiceClientAssignment fills the service/client field from the anchor entity.
type ServiceClientAssignment struct {
	ServiceClient string
}

func (ServiceClientAssignment) isDraftTarget() {}

// Name returns the service or client name.
func (s ServiceClientAssignment) Name() string { return s.ServiceClient }

// TargetFor picks the draft target for an anchor entity under the given view.
func TargetFor(by ViewBy, entityName string) DraftTarget {
	if by == ViewWorker {
		return WorkerAssignment{Worker: entityName}
	}
	return ServiceClientAssignment{ServiceClient: entityName}
}

// Draft is a candidate shift assignment awaiting confirmation.
type Draft struct {
	Target        DraftTarget // nil when editing an existing shift
	Worker        string
	ServiceClient string
	Type          string
	RequiredRole  string
	Start         string
	End           string
	Date          time.Time
	Coverage      Coverage
	Notes         string
}

// NewDraft creates a draft for the span [start,end) anchored on target.
func NewDraft(target DraftTarget, start, end string, date time.Time) Draft {
	d := Draft{
		Target:   target,
		Start:    start,
		End:      end,
		Date:     date,
		Coverage: CoverageCovered,
	}
	switch t := target.(type) {
	case WorkerAssignment:
		d.Worker = t.Worker
	case ServiceClientAssignment:
		d.ServiceClient = t.ServiceClient
	}
	return d
}

// DraftFromShift pre-fills a draft with the fields of an existing shift.
func DraftFromShift(s *Shift) Draft {
	return Draft{
		Worker:        s.WorkerName,
		ServiceClient: s.ServiceClient,
		Type:          s.Type,
		RequiredRole:  s.RequiredRole,
		Start:         s.Start,
		End:           s.End,
		Date:          s.Date,
		Coverage:      s.Coverage,
		Notes:         s.Notes,
	}
}

// EditDraft is DraftFromShift with the worker resolved through WorkerID.
// Stored worker names may be short forms that FindByName would not match.
func EditDraft(s *Shift, entities []Entity) Draft {
	d := DraftFromShift(s)
	if s.WorkerID != nil {
		if e, ok := FindByID(entities, *s.WorkerID); ok {
			d.Worker = e.Name
		}
	}
	return d
}

// WorkerLocked reports whether the worker field came from the drag anchor.
func (d Draft) WorkerLocked() bool {
	_, ok := d.Target.(WorkerAssignment)
	return ok
}

// ServiceClientLocked reports whether the service/client field came from the drag anchor.
func (d Draft) ServiceClientLocked() bool {
	_, ok := d.Target.(ServiceClientAssignment)
	return ok
}

// Validate checks the fields an editor collects before committing.
func (d Draft) Validate() error {
	if err := ValidateTime(d.Start); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	if err := ValidateTime(d.End); err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if d.Coverage != CoverageCovered && d.Coverage != CoverageUncovered {
		return ErrInvalidCoverage
	}
	if d.Worker == "" && d.ServiceClient == "" {
		return ErrEmptyTarget
	}
	return nil
}

// Apply builds a shift from the draft, resolving the worker against entities.
// An unknown worker name leaves the shift unassigned.
func (d Draft) Apply(id int64, entities []Entity) *Shift {
	s := &Shift{
		ID:            id,
		ServiceClient: d.ServiceClient,
		Type:          d.Type,
		RequiredRole:  d.RequiredRole,
		Start:         d.Start,
		End:           d.End,
		Date:          d.Date,
		Coverage:      d.Coverage,
		Notes:         d.Notes,
	}
	if e, ok := FindByName(entities, d.Worker); ok {
		wid := e.ID
		s.WorkerID = &wid
		s.WorkerName = e.Name
	}
	return s
}
