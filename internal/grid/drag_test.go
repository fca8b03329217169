package grid

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/rota/internal/shift"
)

func TestDrag_CommitRoundTrip(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 80}
	anchor := Anchor{EntityID: 10, EntityName: "Chingford", Slot: 9}

	if err := d.Begin(anchor, 760, g); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	p, err := d.Move(760 + 3*80)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if p.StartSlot != 9 || p.EndSlot != 12 {
		t.Errorf("preview = [%d,%d], want [9,12]", p.StartSlot, p.EndSlot)
	}
	if p.Left != 720 || p.Width != 320 {
		t.Errorf("geometry = left %d width %d, want 720/320", p.Left, p.Width)
	}

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	draft, ok := d.End(shift.ViewServiceClient, date)
	if !ok {
		t.Fatal("End returned no draft")
	}
	if draft.Start != "09:00" || draft.End != "13:00" {
		t.Errorf("draft = %s-%s, want 09:00-13:00", draft.Start, draft.End)
	}
	if draft.ServiceClient != "Chingford" || draft.Worker != "" {
		t.Errorf("draft target = %q / %q", draft.Worker, draft.ServiceClient)
	}
	if !draft.Date.Equal(date) {
		t.Errorf("draft date = %v", draft.Date)
	}
	if d.Active() {
		t.Error("drag should be idle after End")
	}
}

func TestDrag_WorkerViewFillsWorker(t *testing.T) {
	var d Drag
	_ = d.Begin(Anchor{EntityID: 1, EntityName: "Johnson, Mike", Slot: 14}, 0, TimeGrid{SlotWidth: 4})
	draft, ok := d.End(shift.ViewWorker, time.Now())
	if !ok {
		t.Fatal("End returned no draft")
	}
	if draft.Worker != "Johnson, Mike" || draft.ServiceClient != "" {
		t.Errorf("draft target = %q / %q", draft.Worker, draft.ServiceClient)
	}
	if draft.Start != "14:00" || draft.End != "15:00" {
		t.Errorf("single-slot draft = %s-%s", draft.Start, draft.End)
	}
}

func TestDrag_ClampsAtEndOfDay(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 10}
	_ = d.Begin(Anchor{Slot: 22}, 220, g)

	p, _ := d.Move(220 + 50*10)
	if p.EndSlot != 23 {
		t.Errorf("EndSlot = %d, want 23", p.EndSlot)
	}
	if p.EndTime != "23:59" {
		t.Errorf("EndTime = %q, want 23:59", p.EndTime)
	}
	if p.StartSlot != 22 {
		t.Errorf("StartSlot = %d, want 22", p.StartSlot)
	}
}

func TestDrag_LastSlotEndsAtMidnightLabel(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 10}
	_ = d.Begin(Anchor{EntityName: "Chingford", Slot: 23}, 230, g)

	draft, ok := d.End(shift.ViewServiceClient, time.Time{})
	if !ok {
		t.Fatal("End returned no draft")
	}
	if draft.Start != "23:00" || draft.End != "23:59" {
		t.Fatalf("draft = %s-%s, want 23:00-23:59", draft.Start, draft.End)
	}

	// The end hour equals the start hour, so the shift spans no slot.
	s := draft.Apply(1, nil)
	if s.DurationHours() != 0 || s.Occupies(23) {
		t.Errorf("duration = %d, occupies 23 = %v", s.DurationHours(), s.Occupies(23))
	}
}

func TestDrag_ClampsAtStartOfDay(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 10}
	_ = d.Begin(Anchor{Slot: 2}, 20, g)

	p, _ := d.Move(-1000)
	if p.StartSlot != 0 || p.EndSlot != 2 {
		t.Errorf("preview = [%d,%d], want [0,2]", p.StartSlot, p.EndSlot)
	}
	if p.StartTime != "00:00" || p.EndTime != "03:00" {
		t.Errorf("times = %s-%s", p.StartTime, p.EndTime)
	}
}

func TestDrag_LeftwardDragSwapsBounds(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 80}
	_ = d.Begin(Anchor{Slot: 12}, 1000, g)

	p, _ := d.Move(1000 - 2*80)
	if p.StartSlot != 10 || p.EndSlot != 12 {
		t.Errorf("preview = [%d,%d], want [10,12]", p.StartSlot, p.EndSlot)
	}
	if p.Left != 800 || p.Width != 240 {
		t.Errorf("geometry = %d/%d", p.Left, p.Width)
	}
}

func TestDrag_RoundsToNearestSlot(t *testing.T) {
	tests := []struct {
		name  string
		dx    int
		wantT int
	}{
		{name: "under half", dx: 39, wantT: 5},
		{name: "exact half rounds up", dx: 40, wantT: 6},
		{name: "negative half rounds up", dx: -40, wantT: 5},
		{name: "negative past half", dx: -41, wantT: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Drag
			_ = d.Begin(Anchor{Slot: 5}, 400, TimeGrid{SlotWidth: 80})
			_, _ = d.Move(400 + tt.dx)
			s, _ := d.Session()
			if s.Target != tt.wantT {
				t.Errorf("Target = %d, want %d", s.Target, tt.wantT)
			}
		})
	}
}

func TestDrag_SingleSession(t *testing.T) {
	var d Drag
	g := TimeGrid{SlotWidth: 4}
	if err := d.Begin(Anchor{Slot: 1}, 0, g); err != nil {
		t.Fatalf("first Begin failed: %v", err)
	}
	if err := d.Begin(Anchor{Slot: 5}, 0, g); !errors.Is(err, ErrAlreadyDragging) {
		t.Errorf("second Begin error = %v, want ErrAlreadyDragging", err)
	}
	s, _ := d.Session()
	if s.Anchor.Slot != 1 {
		t.Errorf("second Begin replaced anchor")
	}
}

func TestDrag_IdleOperations(t *testing.T) {
	var d Drag
	if _, err := d.Move(10); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Move error = %v, want ErrNotDragging", err)
	}
	if _, err := d.Step(1); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Step error = %v, want ErrNotDragging", err)
	}
	if _, ok := d.End(shift.ViewWorker, time.Now()); ok {
		t.Error("End on idle drag returned a draft")
	}
	if d.Cancel() {
		t.Error("Cancel on idle drag reported true")
	}
}

func TestDrag_CancelDropsSession(t *testing.T) {
	var d Drag
	_ = d.Begin(Anchor{Slot: 3}, 0, TimeGrid{SlotWidth: 4})
	if !d.Cancel() {
		t.Fatal("Cancel returned false")
	}
	if d.Active() {
		t.Error("drag still active after Cancel")
	}
	if _, ok := d.End(shift.ViewWorker, time.Now()); ok {
		t.Error("End after Cancel produced a draft")
	}
}

func TestDrag_Step(t *testing.T) {
	var d Drag
	_ = d.Begin(Anchor{Slot: 9}, 36, TimeGrid{SlotWidth: 4})
	_, _ = d.Step(1)
	p, _ := d.Step(2)
	if p.EndSlot != 12 {
		t.Errorf("EndSlot = %d, want 12", p.EndSlot)
	}
	p, _ = d.Step(-5)
	if p.StartSlot != 7 || p.EndSlot != 9 {
		t.Errorf("preview = [%d,%d], want [7,9]", p.StartSlot, p.EndSlot)
	}
}
