package grid

import "github.com/javiermolinar/rota/internal/shift"

// Default stacking geometry of the web calendar, in pixels.
const (
	DefaultBaseOffset   = 8
	DefaultStripeHeight = 24
)

// Placement is a shift with its vertical stacking offset.
type Placement struct {
	Shift  *shift.Shift
	Index  int
	Offset int
}

// Stack assigns offsets to shifts anchored at the same entity and slot.
// Order follows the input; offset = base + index*stripe.
// Shifts that only partially overlap from different start slots are not
// separated.
func Stack(shifts []*shift.Shift, base, stripe int) []Placement {
	if len(shifts) == 0 {
		return nil
	}
	out := make([]Placement, len(shifts))
	for i, s := range shifts {
		out[i] = Placement{
			Shift:  s,
			Index:  i,
			Offset: base + i*stripe,
		}
	}
	return out
}

// StackAt stacks the shifts anchored at the given cell of the index.
func (idx *Index) StackAt(entityID int64, slot, base, stripe int) []Placement {
	return Stack(idx.Anchored(entityID, slot), base, stripe)
}
