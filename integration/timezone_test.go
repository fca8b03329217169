package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/db"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
)

// Dates are stored without a zone and must come back on the same local day.
func TestDatesStayOnLocalDay(t *testing.T) {
	repo, err := db.New(db.MemoryPath)
	if err != nil {
		t.Fatalf("Error opening db: %v", err)
	}
	defer func() { _ = repo.Close() }()

	ctx := context.Background()
	now := time.Now()
	today := dateutil.TruncateToDay(now)
	t.Logf("Current time: %v (%v)", now, now.Location())

	late := time.Date(today.Year(), today.Month(), today.Day(), 23, 30, 0, 0, time.Local)
	d := shift.NewDraft(shift.ServiceClientAssignment{ServiceClient: "Chingford"}, "23:00", "07:00", late)
	created, err := repo.CreateShift(ctx, d)
	if err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	got, err := repo.GetShift(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetShift failed: %v", err)
	}
	t.Logf("Stored date: %v", got.Date)

	if !dateutil.SameDay(got.Date, today) {
		t.Errorf("date = %v, want %v", got.Date, today)
	}
	if got.Date.Location() != time.Local {
		t.Errorf("location = %v, want Local", got.Date.Location())
	}

	shifts, err := repo.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts failed: %v", err)
	}
	if n := len(filter.OnDate(shifts, today)); n != 1 {
		t.Errorf("shifts today = %d, want 1", n)
	}
	if n := len(filter.OnDate(shifts, dateutil.AddDays(today, 1))); n != 0 {
		t.Errorf("wrapping shift leaked into tomorrow: %d", n)
	}
}
