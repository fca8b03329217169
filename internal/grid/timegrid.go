// Package grid provides the hourly day grid: slot geometry, per-cell shift
// membership, stacking of concurrent shifts and the drag-to-create session.
package grid

import (
	"strings"
	"time"

	"github.com/javiermolinar/rota/internal/shift"
)

// SlotsPerDay is the number of hourly slots in a day.
const SlotsPerDay = 24

// lastSlotEnd is the end label used when a span reaches the last slot.
const lastSlotEnd = "23:59"

// Density is the zoom level controlling slot width.
type Density string

const (
	DensityCompact  Density = "compact"
	DensityStandard Density = "standard"
	DensityExpanded Density = "expanded"
)

// Densities returns the densities from narrowest to widest.
func Densities() []Density {
	return []Density{DensityCompact, DensityStandard, DensityExpanded}
}

// ParseDensity parses a density name. Unknown names resolve to standard.
func ParseDensity(s string) Density {
	switch Density(strings.ToLower(strings.TrimSpace(s))) {
	case DensityCompact:
		return DensityCompact
	case DensityExpanded:
		return DensityExpanded
	default:
		return DensityStandard
	}
}

// Next returns the next wider density, wrapping to compact after expanded.
func (d Density) Next() Density {
	switch ParseDensity(string(d)) {
	case DensityCompact:
		return DensityStandard
	case DensityStandard:
		return DensityExpanded
	default:
		return DensityCompact
	}
}

// Widths holds the slot width for each viewport breakpoint.
type Widths struct {
	Narrow int `toml:"narrow"`
	Medium int `toml:"medium"`
	Wide   int `toml:"wide"`
}

// Layout is the density and breakpoint table used to size slots.
// Viewports narrower than NarrowMax use the narrow width, narrower than
// MediumMax the medium width, anything else the wide width.
type Layout struct {
	NarrowMax int    `toml:"narrow_max"`
	MediumMax int    `toml:"medium_max"`
	Compact   Widths `toml:"compact"`
	Standard  Widths `toml:"standard"`
	Expanded  Widths `toml:"expanded"`
}

// DefaultLayout returns the pixel table of the web calendar.
func DefaultLayout() Layout {
	return Layout{
		NarrowMax: 640,
		MediumMax: 1024,
		Compact:   Widths{Narrow: 40, Medium: 56, Wide: 72},
		Standard:  Widths{Narrow: 48, Medium: 64, Wide: 80},
		Expanded:  Widths{Narrow: 56, Medium: 72, Wide: 96},
	}
}

// TerminalLayout returns a table measured in terminal cells.
func TerminalLayout() Layout {
	return Layout{
		NarrowMax: 100,
		MediumMax: 160,
		Compact:   Widths{Narrow: 3, Medium: 4, Wide: 5},
		Standard:  Widths{Narrow: 4, Medium: 5, Wide: 6},
		Expanded:  Widths{Narrow: 5, Medium: 6, Wide: 8},
	}
}

func (l Layout) widthsFor(d Density) Widths {
	switch ParseDensity(string(d)) {
	case DensityCompact:
		return l.Compact
	case DensityExpanded:
		return l.Expanded
	default:
		return l.Standard
	}
}

// Resolve picks the slot width for a density at the given viewport width.
func (l Layout) Resolve(d Density, viewport int) TimeGrid {
	w := l.widthsFor(d)
	width := w.Wide
	switch {
	case viewport < l.NarrowMax:
		width = w.Narrow
	case viewport < l.MediumMax:
		width = w.Medium
	}
	if width < 1 {
		width = 1
	}
	return TimeGrid{Density: ParseDensity(string(d)), SlotWidth: width}
}

// TimeGrid converts between slot index, clock time and horizontal offset.
type TimeGrid struct {
	Density   Density
	SlotWidth int
}

// Clamp bounds a slot index to [0,23].
func Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= SlotsPerDay {
		return SlotsPerDay - 1
	}
	return i
}

// SlotIndex returns the slot for an "HH:MM" clock time. Minutes are truncated.
func (g TimeGrid) SlotIndex(clock string) int {
	return shift.HourOf(clock)
}

// SlotIndexAt returns the slot containing t.
func (g TimeGrid) SlotIndexAt(t time.Time) int {
	return t.Hour()
}

// Offset returns the left edge of slot i.
func (g TimeGrid) Offset(i int) int {
	return Clamp(i) * g.SlotWidth
}

// NowOffset returns the continuous offset of t for the "now" marker.
func (g TimeGrid) NowOffset(t time.Time) float64 {
	return (float64(t.Hour()) + float64(t.Minute())/60) * float64(g.SlotWidth)
}

// SlotAt returns the slot under a horizontal offset, clamped to the grid.
func (g TimeGrid) SlotAt(offset int) int {
	if g.SlotWidth <= 0 || offset < 0 {
		return 0
	}
	return Clamp(offset / g.SlotWidth)
}

// Width returns the total width of the day.
func (g TimeGrid) Width() int {
	return SlotsPerDay * g.SlotWidth
}

// SlotLabel returns the start label "HH:00" of slot i.
func SlotLabel(i int) string {
	return shift.HourLabel(Clamp(i))
}

// SlotEndLabel returns the label of the slot after i, or "23:59" for the last slot.
func SlotEndLabel(i int) string {
	i = Clamp(i)
	if i == SlotsPerDay-1 {
		return lastSlotEnd
	}
	return shift.HourLabel(i + 1)
}

// TimeSlots returns the 24 slot labels.
func TimeSlots() []string {
	slots := make([]string, SlotsPerDay)
	for i := range slots {
		slots[i] = shift.HourLabel(i)
	}
	return slots
}
