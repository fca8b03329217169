// Package store provides the in-memory shift repository.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/javiermolinar/rota/internal/shift"
)

// Memory implements shift.Repository on a copy-on-write slice.
// Every mutation publishes a new slice. Records not touched by the mutation
// keep their pointer identity.
type Memory struct {
	mu       sync.Mutex // serializes writers
	shifts   atomic.Pointer[[]*shift.Shift]
	entities []shift.Entity
	nextID   int64
}

// NewMemory creates a store holding the given entities and seed shifts.
// New ids continue from the largest seeded id.
func NewMemory(entities []shift.Entity, shifts []*shift.Shift) *Memory {
	m := &Memory{
		entities: append([]shift.Entity(nil), entities...),
		nextID:   1,
	}

	seeded := make([]*shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		if s == nil {
			continue
		}
		seeded = append(seeded, s)
		if s.ID >= m.nextID {
			m.nextID = s.ID + 1
		}
	}
	m.shifts.Store(&seeded)

	return m
}

// Snapshot returns the current list. Callers must not mutate it.
func (m *Memory) Snapshot() []*shift.Shift {
	return *m.shifts.Load()
}

// ListShifts returns every shift in insertion order.
func (m *Memory) ListShifts(ctx context.Context) ([]*shift.Shift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.Snapshot(), nil
}

// GetShift returns the shift with the given id, or nil if there is none.
func (m *Memory) GetShift(ctx context.Context, id int64) (*shift.Shift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range m.Snapshot() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// CreateShift appends a shift built from the draft.
func (m *Memory) CreateShift(ctx context.Context, d shift.Draft) (*shift.Shift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if d.Notes == "" {
		d.Notes = shift.DefaultNotes
	}
	if d.Coverage == "" {
		d.Coverage = shift.CoverageCovered
	}
	s := d.Apply(m.nextID, m.entities)
	m.nextID++

	current := m.Snapshot()
	next := make([]*shift.Shift, len(current), len(current)+1)
	copy(next, current)
	next = append(next, s)
	m.shifts.Store(&next)

	return s, nil
}

// UpdateShift replaces the mutable fields of shift id with the draft.
// The worker is re-resolved by exact name; an unknown name unassigns it.
// Returns nil, nil when no shift has that id.
func (m *Memory) UpdateShift(ctx context.Context, id int64, d shift.Draft) (*shift.Shift, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.Snapshot()
	pos := -1
	for i, s := range current {
		if s.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, nil
	}

	if d.Coverage == "" {
		d.Coverage = current[pos].Coverage
	}
	updated := d.Apply(id, m.entities)

	next := make([]*shift.Shift, len(current))
	copy(next, current)
	next[pos] = updated
	m.shifts.Store(&next)

	return updated, nil
}

// Entities returns the workers, services and clients known to the store.
func (m *Memory) Entities(ctx context.Context) ([]shift.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]shift.Entity(nil), m.entities...), nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
