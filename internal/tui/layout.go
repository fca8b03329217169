package tui

import (
	"github.com/javiermolinar/rota/internal/grid"
)

const (
	modalWidth = 64

	// Lines above the grid: title, filter bar, hour header.
	gridTop = 3

	footerBaseH   = 3 // stats, status, help
	maxPromptRows = 4

	minNameColW = 12
	maxNameColW = 26
	maxSlots    = grid.SlotsPerDay
)

// LayoutCache stores the geometry derived from the window size and the
// current density. Every mouse hit test goes through it.
type LayoutCache struct {
	InnerW int
	InnerH int

	NameColW     int
	GridX        int // first column of slot 0 on screen, before scrolling
	Grid         grid.TimeGrid
	VisibleSlots int

	FooterH int
	GridH   int // lines available for entity rows

	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	frameW, _ := styles.PromptStyle.GetFrameSize()
	w := innerW - frameW
	if w < 0 {
		w = 0
	}
	if w < 20 && innerW >= frameW+20 {
		w = 20
	}
	return w
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	nameColW := min(max(innerW/5, minNameColW), maxNameColW)
	gridX := nameColW + 1

	tg := m.config.Grid.Layout.Resolve(m.sel.Density, innerW)
	slots := min(max((innerW-gridX)/tg.SlotWidth, 1), maxSlots)

	promptW := promptContentWidth(m.styles, innerW)
	footerH := footerBaseH
	if m.mode == ModePrompt {
		_, frameV := m.styles.PromptStyle.GetFrameSize()
		footerH += frameV + len(m.promptLines(promptW))
	}

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		NameColW:           nameColW,
		GridX:              gridX,
		Grid:               tg,
		VisibleSlots:       slots,
		FooterH:            footerH,
		GridH:              max(innerH-gridTop-footerH, 1),
		PromptContentWidth: promptW,
	}
}

// relayout rebuilds the layout cache and scrolls so the cursor, or the drag
// target of a keyboard drag, stays on screen. The view never scrolls under
// the pointer.
func (m *Model) relayout() {
	m.layout = m.buildLayoutCache(m.width, m.height)
	if !m.mouseDrag {
		m.ensureSlotVisible(m.focusSlot())
	}
	m.ensureRowVisible(m.cursor.Row)
}

func (m Model) focusSlot() int {
	if s, ok := m.drag.Session(); ok {
		return s.Target
	}
	return m.cursor.Slot
}

func (m *Model) ensureSlotVisible(slot int) {
	n := m.layout.VisibleSlots
	if n <= 0 {
		return
	}
	if slot < m.slotOffset {
		m.slotOffset = slot
	}
	if slot >= m.slotOffset+n {
		m.slotOffset = slot - n + 1
	}
	m.slotOffset = min(max(m.slotOffset, 0), max(maxSlots-n, 0))
}

func (m *Model) ensureRowVisible(row int) {
	if row < m.rowOffset {
		m.rowOffset = row
	}
	for m.rowOffset < row && m.rowsHeight(m.rowOffset, row+1) > m.layout.GridH {
		m.rowOffset++
	}
	m.rowOffset = max(m.rowOffset, 0)
}

// scrollRows moves the first visible row by delta, keeping the cursor row
// on screen.
func (m *Model) scrollRows(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.rowOffset = min(max(m.rowOffset+delta, 0), len(m.rows)-1)
	if m.cursor.Row < m.rowOffset {
		m.cursor.Row = m.rowOffset
		m.cursor.Line = 0
	}
	last := m.lastVisibleRow()
	if m.cursor.Row > last {
		m.cursor.Row = last
		m.cursor.Line = 0
	}
}

// rowHeight returns the number of lines a row takes: one per stacked shift,
// with room for the address line in expanded density.
func (m Model) rowHeight(row int) int {
	h := 1
	if row >= 0 && row < len(m.rows) && m.index != nil {
		h = max(h, m.index.Depth(m.rows[row].ID))
	}
	if m.sel.Density == grid.DensityExpanded {
		h = max(h, 2)
	}
	return h
}

func (m Model) rowsHeight(from, to int) int {
	total := 0
	for r := from; r < to && r < len(m.rows); r++ {
		total += m.rowHeight(r)
	}
	return total
}

func (m Model) lastVisibleRow() int {
	used := 0
	last := m.rowOffset
	for r := m.rowOffset; r < len(m.rows); r++ {
		used += m.rowHeight(r)
		if used > m.layout.GridH && r > m.rowOffset {
			break
		}
		last = r
	}
	return last
}

// slotX returns the screen column of a slot's left edge.
func (m Model) slotX(slot int) int {
	return m.layout.GridX + (slot-m.slotOffset)*m.layout.Grid.SlotWidth
}

// gridOffsetAt converts a screen column to an offset into the full day, so
// that the drag session sees a continuous axis while the view scrolls.
func (m Model) gridOffsetAt(x int) int {
	return x - m.layout.GridX + m.slotOffset*m.layout.Grid.SlotWidth
}

// cellAt maps a screen position to a grid cell.
func (m Model) cellAt(x, y int) (Position, bool) {
	if x < m.layout.GridX || y < gridTop {
		return Position{}, false
	}
	rel := (x - m.layout.GridX) / m.layout.Grid.SlotWidth
	if rel >= m.layout.VisibleSlots {
		return Position{}, false
	}
	slot := m.slotOffset + rel
	if slot >= maxSlots {
		return Position{}, false
	}

	line := y - gridTop
	if line >= m.layout.GridH {
		return Position{}, false
	}
	for r := m.rowOffset; r < len(m.rows); r++ {
		h := m.rowHeight(r)
		if line < h {
			return Position{Row: r, Slot: slot, Line: line}, true
		}
		line -= h
	}
	return Position{}, false
}
