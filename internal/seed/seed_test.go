package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/javiermolinar/rota/internal/shift"
)

var today = time.Date(2025, 3, 10, 14, 5, 0, 0, time.Local)

func TestDefault(t *testing.T) {
	data, err := Default(today)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if len(data.Entities) != 20 {
		t.Errorf("entities = %d, want 20", len(data.Entities))
	}
	if len(data.Shifts) != 15 {
		t.Fatalf("shifts = %d, want 15", len(data.Shifts))
	}

	var workers, services, clients int
	for _, e := range data.Entities {
		switch {
		case e.IsService():
			services++
		case e.IsClient():
			clients++
		default:
			workers++
		}
	}
	if workers != 6 || services != 6 || clients != 8 {
		t.Errorf("workers/services/clients = %d/%d/%d", workers, services, clients)
	}

	midnight := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	for _, s := range data.Shifts {
		if !s.Date.Equal(midnight) {
			t.Errorf("shift %d date = %v, want %v", s.ID, s.Date, midnight)
		}
	}
}

func TestDefault_Records(t *testing.T) {
	data, err := Default(today)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	first := data.Shifts[0]
	if first.IsAssigned() || first.ServiceClient != "26 Waverley Lodge" || first.Start != "22:00" || first.End != "06:00" {
		t.Errorf("shift 1 = %+v", first)
	}
	if !first.IsUrgent() {
		t.Error("shift 1 should be urgent")
	}

	second := data.Shifts[1]
	if second.WorkerID == nil || *second.WorkerID != 1 || second.WorkerName != "Abu, Blessing" {
		t.Errorf("shift 2 worker = %v %q", second.WorkerID, second.WorkerName)
	}

	last := data.Shifts[14]
	if last.Type != shift.TypeOnCallOnSite {
		t.Errorf("shift 15 type = %q", last.Type)
	}
	if last.Coverage != shift.CoverageUncovered {
		t.Errorf("shift 15 coverage = %q", last.Coverage)
	}

	clayburn, ok := shift.FindByName(data.Entities, "Clayburn Lodge")
	if !ok || clayburn.Status != shift.StatusMaintenance {
		t.Errorf("Clayburn Lodge = %+v", clayburn)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	entities := `
[[entity]]
id = 1
name = "Johnson, Mike"
category = "Support Worker"

[[entity]]
id = 10
name = "Chingford"
category = "Service"
`
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name: "duplicate entity",
			files: map[string]string{
				entitiesFile: entities + "\n[[entity]]\nid = 1\nname = \"Again\"\n",
				shiftsFile:   "",
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "duplicate shift",
			files: map[string]string{
				entitiesFile: entities,
				shiftsFile: `
[[shift]]
id = 1
start = "09:00"
end = "10:00"
coverage = "covered"

[[shift]]
id = 1
start = "11:00"
end = "12:00"
coverage = "covered"
`,
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "bad time",
			files: map[string]string{
				entitiesFile: entities,
				shiftsFile:   "[[shift]]\nid = 1\nstart = \"9am\"\nend = \"10:00\"\ncoverage = \"covered\"\n",
			},
			wantErr: shift.ErrInvalidTimeFormat,
		},
		{
			name: "bad coverage",
			files: map[string]string{
				entitiesFile: entities,
				shiftsFile:   "[[shift]]\nid = 1\nstart = \"09:00\"\nend = \"10:00\"\ncoverage = \"maybe\"\n",
			},
			wantErr: shift.ErrInvalidCoverage,
		},
		{
			name: "worker id names a service",
			files: map[string]string{
				entitiesFile: entities,
				shiftsFile:   "[[shift]]\nid = 1\nworker_id = 10\nstart = \"09:00\"\nend = \"10:00\"\ncoverage = \"covered\"\n",
			},
			wantErr: ErrUnknownWorker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, body := range tt.files {
				fsys[name] = &fstest.MapFile{Data: []byte(body)}
			}
			_, err := LoadFS(fsys, today)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	entities := "[[entity]]\nid = 5\nname = \"Johnson, Mike\"\ncategory = \"Support Worker\"\n"
	shifts := "[[shift]]\nid = 3\nworker_id = 5\nservice_client = \"Robert Brown\"\nstart = \"14:00\"\nend = \"22:00\"\nday_offset = 1\ncoverage = \"covered\"\n"
	if err := os.WriteFile(filepath.Join(dir, entitiesFile), []byte(entities), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, shiftsFile), []byte(shifts), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := Load(dir, today)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := data.Shifts[0]
	if s.WorkerName != "Johnson, Mike" {
		t.Errorf("WorkerName = %q, want name from entity", s.WorkerName)
	}
	want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)
	if !s.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", s.Date, want)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope"), today); err == nil {
		t.Error("expected error for missing fixtures")
	}
}
