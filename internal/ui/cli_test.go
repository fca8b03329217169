package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/seed"
	"github.com/javiermolinar/rota/internal/store"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

func newTestApp(t *testing.T) (*App, *store.Memory) {
	t.Helper()
	DisableColor()

	data, err := seed.Default(testDay)
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	repo := store.NewMemory(data.Entities, data.Shifts)

	a := NewApp(repo, config.Default())
	a.now = func() time.Time { return testDay.Add(9 * time.Hour) }
	return a, repo
}

func runApp(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a.root.SetOut(&buf)
	a.root.SetErr(&buf)
	a.SetArgs(args)
	err := a.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := runApp(t, a, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "rota dev") {
		t.Errorf("output = %q", out)
	}
}

func TestListCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "uncovered services",
			args: []string{"list", "--status=uncovered"},
			want: []string{"26 Waverley Lodge", "#1 ", "Unassigned", "[night,urgent]", "#10 "},
			// covered shift on the same row
			notWant: []string{"#11 "},
		},
		{
			name:    "one worker",
			args:    []string{"list", "--by=worker", "--name=johnson, mike"},
			want:    []string{"Johnson, Mike", "#7 ", "#14 ", "Robert Brown"},
			notWant: []string{"#1 ", "Williams"},
		},
		{
			name: "type filter case-insensitive",
			args: []string{"list", "--type=night shift"},
			want: []string{"#1 ", "#2 ", "#3 ", "#4 "},
			// clients have no night shifts, and services are the default rows
			notWant: []string{"#5 "},
		},
		{
			name: "another day",
			args: []string{"list", "--date=tomorrow"},
			want: []string{"Tue 11 Mar 2025", "No shifts match"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			out, err := runApp(t, a, tc.args...)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, nw := range tc.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output should not contain %q:\n%s", nw, out)
				}
			}
		})
	}
}

func TestListCmd_BadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"type", []string{"list", "--type=Nap"}, errUnknownType},
		{"status", []string{"list", "--status=maybe"}, errUnknownStatus},
		{"name", []string{"list", "--name=Nobody"}, errUnknownName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			_, err := runApp(t, a, tc.args...)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEntitiesCmd(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := runApp(t, a, "entities", "--by=client", "--search=JOHN")
	if err != nil {
		t.Fatalf("entities failed: %v", err)
	}
	if !strings.Contains(out, "John Smith") || !strings.Contains(out, "Mary Johnson") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "Robert Brown") {
		t.Errorf("unexpected match in %q", out)
	}
}

func TestSummaryCmd(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := runApp(t, a, "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	for _, want := range []string{
		"Mon 10 Mar 2025",
		"Covered: 9 (78h)",
		"Uncovered: 6 (52h)",
		"Total: 15 shifts",
		"Night: 4 | Urgent: 2",
		"(60% covered)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAddCmd(t *testing.T) {
	a, repo := newTestApp(t)
	out, err := runApp(t, a, "add",
		"--worker=williams, sarah", "--service=chingford",
		"--start=09:00", "--end=13:00", "--type=support worker")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Created shift #16: Williams, Sarah → Chingford [Support Worker]") {
		t.Errorf("output = %q", out)
	}

	shifts := repo.Snapshot()
	created := shifts[len(shifts)-1]
	if created.WorkerID == nil || *created.WorkerID != 6 {
		t.Errorf("WorkerID = %v, want 6", created.WorkerID)
	}
	if !created.Date.Equal(testDay) {
		t.Errorf("Date = %v, want %v", created.Date, testDay)
	}
}

func TestAddCmd_NeedsTarget(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := runApp(t, a, "add", "--start=09:00", "--end=10:00"); err == nil {
		t.Error("expected error for a shift with neither worker nor service")
	}
}

func TestEditCmd(t *testing.T) {
	a, repo := newTestApp(t)
	out, err := runApp(t, a, "edit", "6", "--worker=Williams, Sarah", "--covered")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "Updated shift #6: Williams, Sarah → Mary Johnson") {
		t.Errorf("output = %q", out)
	}

	got := repo.Snapshot()[5]
	if !got.IsCovered() || got.Notes != "Daily living support needed" {
		t.Errorf("stored = %+v", got)
	}
}

func TestEditCmd_KeepsWorker(t *testing.T) {
	a, repo := newTestApp(t)
	out, err := runApp(t, a, "edit", "2", "--notes=changed")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "Updated shift #2: Abu, Blessing (Blessing) → Clayburn Lodge") {
		t.Errorf("output = %q", out)
	}

	got := repo.Snapshot()[1]
	if got.WorkerID == nil || *got.WorkerID != 1 {
		t.Errorf("WorkerID = %v, want 1", got.WorkerID)
	}
	if got.Notes != "changed" {
		t.Errorf("Notes = %q", got.Notes)
	}
}

func TestEditCmd_RoleClearsWorker(t *testing.T) {
	a, repo := newTestApp(t)
	if _, err := runApp(t, a, "edit", "7", "--role=team leader"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	got := repo.Snapshot()[6]
	if got.IsAssigned() {
		t.Errorf("worker should be cleared, got %q", got.WorkerName)
	}
	if got.RequiredRole != "Team Leader" {
		t.Errorf("RequiredRole = %q", got.RequiredRole)
	}
}

func TestEditCmd_NotFound(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := runApp(t, a, "edit", "999", "--notes=x")
	if !errors.Is(err, errShiftNotFound) {
		t.Errorf("error = %v, want errShiftNotFound", err)
	}
}

func TestExportCmd(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "rota.xlsx")

	out, err := runApp(t, a, "export", "--out", path)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Wrote 15 shifts") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected workbook: %v", err)
	}
}

func TestExportCmd_UnknownExtension(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "rota.csv")

	if _, err := runApp(t, a, "export", "--out", path); err == nil {
		t.Error("expected error for csv output")
	}
}

func TestEnsureRepo_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "rota.db")

	a := NewApp(nil, cfg)
	a.now = func() time.Time { return testDay }
	defer func() { _ = a.Close() }()

	if err := a.ensureRepo(); err != nil {
		t.Fatalf("ensureRepo failed: %v", err)
	}
	out, err := runApp(t, a, "list", "--by=worker", "--status=covered")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "#2 ") {
		t.Errorf("output missing seeded shift:\n%s", out)
	}
}
