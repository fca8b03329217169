package grid

import "github.com/javiermolinar/rota/internal/shift"

// Index answers which shifts occupy an entity row at a slot.
// Rows are keyed by entity id: under the worker view a shift belongs to the
// row of its assigned worker, otherwise to the row whose name equals the
// shift's service/client.
type Index struct {
	rows map[int64][]*shift.Shift
}

// NewIndex builds an index over shifts for the given entity rows.
func NewIndex(shifts []*shift.Shift, entities []shift.Entity, by shift.ViewBy) *Index {
	idx := &Index{rows: make(map[int64][]*shift.Shift, len(entities))}

	byName := make(map[string]int64, len(entities))
	known := make(map[int64]bool, len(entities))
	for _, e := range entities {
		known[e.ID] = true
		if _, dup := byName[e.Name]; !dup {
			byName[e.Name] = e.ID
		}
	}

	for _, s := range shifts {
		if s == nil {
			continue
		}
		if by == shift.ViewWorker {
			if s.WorkerID != nil && known[*s.WorkerID] {
				idx.rows[*s.WorkerID] = append(idx.rows[*s.WorkerID], s)
			}
			continue
		}
		if id, ok := byName[s.ServiceClient]; ok {
			idx.rows[id] = append(idx.rows[id], s)
		}
	}

	return idx
}

// Row returns every shift placed on the entity's row, in input order.
func (idx *Index) Row(entityID int64) []*shift.Shift {
	return idx.rows[entityID]
}

// ShiftsAt returns the shifts occupying the slot, with midnight wrap resolved.
// Zero-duration shifts never occupy a slot.
func (idx *Index) ShiftsAt(entityID int64, slot int) []*shift.Shift {
	if slot < 0 || slot >= SlotsPerDay {
		return nil
	}
	var out []*shift.Shift
	for _, s := range idx.rows[entityID] {
		if s.Occupies(slot) {
			out = append(out, s)
		}
	}
	return out
}

// Occupied reports whether any shift covers the slot.
func (idx *Index) Occupied(entityID int64, slot int) bool {
	if slot < 0 || slot >= SlotsPerDay {
		return false
	}
	for _, s := range idx.rows[entityID] {
		if s.Occupies(slot) {
			return true
		}
	}
	return false
}

// Anchored returns the shifts that start at the slot and should be drawn there.
func (idx *Index) Anchored(entityID int64, slot int) []*shift.Shift {
	var out []*shift.Shift
	for _, s := range idx.rows[entityID] {
		if s.StartHour() == slot && s.DurationHours() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Depth returns the largest number of shifts anchored at a single slot of the row.
func (idx *Index) Depth(entityID int64) int {
	var counts [SlotsPerDay]int
	depth := 0
	for _, s := range idx.rows[entityID] {
		if s.DurationHours() == 0 {
			continue
		}
		h := s.StartHour()
		counts[h]++
		if counts[h] > depth {
			depth = counts[h]
		}
	}
	return depth
}

// VisibleSlots returns how many slots of the shift fall inside the day when
// drawn from its start slot. Wrapping shifts are cut at midnight.
func VisibleSlots(s *shift.Shift) int {
	d := s.DurationHours()
	if rest := SlotsPerDay - s.StartHour(); d > rest {
		return rest
	}
	return d
}

// BlockWidth returns the drawn width of a shift block, less a gap.
func (g TimeGrid) BlockWidth(s *shift.Shift, gap int) int {
	w := s.DurationHours()*g.SlotWidth - gap
	if w < 0 {
		return 0
	}
	return w
}
