// Package seed loads the mock workers, services, clients and shifts rota
// starts with.
package seed

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/shift"
)

//go:embed fixtures/*.toml
var fixtures embed.FS

const (
	entitiesFile = "entities.toml"
	shiftsFile   = "shifts.toml"
)

// Seed errors.
var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownWorker = errors.New("worker_id does not name a worker")
)

// Data is a loaded fixture set.
type Data struct {
	Entities []shift.Entity
	Shifts   []*shift.Shift
}

type entityFile struct {
	Entities []entityRecord `toml:"entity"`
}

type entityRecord struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Status   string `toml:"status"`
	Email    string `toml:"email"`
	Initials string `toml:"initials"`
	Address  string `toml:"address"`
}

type shiftFile struct {
	Shifts []shiftRecord `toml:"shift"`
}

type shiftRecord struct {
	ID            int64  `toml:"id"`
	WorkerID      *int64 `toml:"worker_id"`
	WorkerName    string `toml:"worker_name"`
	ServiceClient string `toml:"service_client"`
	Type          string `toml:"type"`
	RequiredRole  string `toml:"required_role"`
	Start         string `toml:"start"`
	End           string `toml:"end"`
	DayOffset     int    `toml:"day_offset"`
	Coverage      string `toml:"coverage"`
	Notes         string `toml:"notes"`
}

// Load reads entities.toml and shifts.toml from dir, or from the embedded
// fixtures when dir is empty. Shift dates are today plus each day_offset.
func Load(dir string, today time.Time) (*Data, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(fixtures, "fixtures")
		if err != nil {
			return nil, fmt.Errorf("opening embedded fixtures: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys, today)
}

// Default returns the embedded fixtures dated from today.
func Default(today time.Time) (*Data, error) {
	return Load("", today)
}

// LoadFS reads the fixture files from fsys.
func LoadFS(fsys fs.FS, today time.Time) (*Data, error) {
	entities, err := loadEntities(fsys)
	if err != nil {
		return nil, err
	}
	shifts, err := loadShifts(fsys, entities, dateutil.TruncateToDay(today))
	if err != nil {
		return nil, err
	}
	return &Data{Entities: entities, Shifts: shifts}, nil
}

func loadEntities(fsys fs.FS) ([]shift.Entity, error) {
	data, err := fs.ReadFile(fsys, entitiesFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", entitiesFile, err)
	}

	var file entityFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", entitiesFile, err)
	}

	seen := make(map[int64]bool, len(file.Entities))
	entities := make([]shift.Entity, 0, len(file.Entities))
	for _, r := range file.Entities {
		if seen[r.ID] {
			return nil, fmt.Errorf("%s: entity %d: %w", entitiesFile, r.ID, ErrDuplicateID)
		}
		seen[r.ID] = true
		entities = append(entities, shift.Entity{
			ID:       r.ID,
			Name:     r.Name,
			Category: shift.Category(r.Category),
			Status:   shift.EntityStatus(r.Status),
			Email:    r.Email,
			Initials: r.Initials,
			Address:  r.Address,
		})
	}
	return entities, nil
}

func loadShifts(fsys fs.FS, entities []shift.Entity, today time.Time) ([]*shift.Shift, error) {
	data, err := fs.ReadFile(fsys, shiftsFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", shiftsFile, err)
	}

	var file shiftFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", shiftsFile, err)
	}

	seen := make(map[int64]bool, len(file.Shifts))
	shifts := make([]*shift.Shift, 0, len(file.Shifts))
	for _, r := range file.Shifts {
		if seen[r.ID] {
			return nil, fmt.Errorf("%s: shift %d: %w", shiftsFile, r.ID, ErrDuplicateID)
		}
		seen[r.ID] = true

		s, err := r.toShift(entities, today)
		if err != nil {
			return nil, fmt.Errorf("%s: shift %d: %w", shiftsFile, r.ID, err)
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

func (r shiftRecord) toShift(entities []shift.Entity, today time.Time) (*shift.Shift, error) {
	if err := shift.ValidateTime(r.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := shift.ValidateTime(r.End); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	coverage, err := shift.ParseCoverage(r.Coverage)
	if err != nil {
		return nil, err
	}

	s := &shift.Shift{
		ID:            r.ID,
		ServiceClient: r.ServiceClient,
		Type:          r.Type,
		RequiredRole:  r.RequiredRole,
		Start:         r.Start,
		End:           r.End,
		Date:          today.AddDate(0, 0, r.DayOffset),
		Coverage:      coverage,
		Notes:         r.Notes,
	}

	if r.WorkerID != nil {
		e, ok := shift.FindByID(entities, *r.WorkerID)
		if !ok || !e.IsWorker() {
			return nil, ErrUnknownWorker
		}
		id := e.ID
		s.WorkerID = &id
		s.WorkerName = r.WorkerName
		if s.WorkerName == "" {
			s.WorkerName = e.ShortName()
		}
	}

	return s, nil
}
