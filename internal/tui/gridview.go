package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/tui/view"
)

const (
	gridLineChar  = "┊"
	nowMarkerChar = "│"
	separatorChar = "│"
	wrapChar      = "↩"
)

// cell is what one slot of one row line shows.
type cell struct {
	shift   *shift.Shift
	text    string
	stacked bool
	wrap    bool
}

// fit pads or truncates s to exactly w columns.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, ""), w)
}

// blockLabel names the other side of the shift for the current view.
func blockLabel(s *shift.Shift, by shift.ViewBy) string {
	who := s.ServiceClient
	if by != shift.ViewWorker {
		who = "Unassigned"
		if s.IsAssigned() {
			who = s.WorkerName
		}
	}
	if s.IsUrgent() {
		who = "!" + who
	}
	return fmt.Sprintf("%s %s-%s", who, s.Start, s.End)
}

// rowCells lays out the shifts of an entity row into lines of slot cells.
// Stacked shifts anchored at one slot take one line each; carry-over from a
// shift that started on the previous evening fills the early slots that are
// still free.
func (m Model) rowCells(e shift.Entity, height int) [][grid.SlotsPerDay]cell {
	lines := make([][grid.SlotsPerDay]cell, height)
	w := m.layout.Grid.SlotWidth

	for slot := 0; slot < grid.SlotsPerDay; slot++ {
		for _, p := range m.index.StackAt(e.ID, slot, 0, 1) {
			if p.Offset >= height {
				continue
			}
			n := grid.VisibleSlots(p.Shift)
			text := fit(" "+blockLabel(p.Shift, m.sel.By), n*w)
			for k := 0; k < n; k++ {
				lines[p.Offset][slot+k] = cell{
					shift:   p.Shift,
					text:    ansi.Cut(text, k*w, (k+1)*w),
					stacked: p.Index > 0,
				}
			}
		}
	}

	for _, s := range m.index.Row(e.ID) {
		if !s.Wraps() || s.DurationHours() == 0 {
			continue
		}
		for slot := 0; slot < s.StartHour() && s.Occupies(slot); slot++ {
			for l := range lines {
				if lines[l][slot].shift != nil {
					continue
				}
				text := ""
				if slot == 0 {
					text = wrapChar
				}
				lines[l][slot] = cell{shift: s, text: fit(text, w), wrap: true}
				break
			}
		}
	}

	return lines
}

func (m Model) renderTitle() string {
	w := m.layout.InnerW
	left := " rota  " + view.DayTitle(m.sel.Date, m.clock)
	right := fmt.Sprintf("%s ", m.clock.Format("15:04"))
	gap := max(w-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return m.styles.TitleStyle.Render(fit(left+strings.Repeat(" ", gap)+right, w))
}

func (m Model) renderFilterBar() string {
	sel := m.sel
	parts := []struct {
		key, label, value string
		active            bool
	}{
		{"b", "View", string(sel.By), false},
		{"n", "Name", sel.Name, sel.Name != filter.All},
		{"t", "Type", sel.Type, sel.Type != filter.All},
		{"s", "Status", sel.Status, sel.Status != filter.All},
		{"z", "Density", string(sel.Density), false},
	}

	var b strings.Builder
	used := 0
	for _, p := range parts {
		text := fmt.Sprintf(" [%s] %s: %s ", p.key, p.label, p.value)
		style := m.styles.FilterStyle
		if p.active {
			style = m.styles.FilterActiveStyle
		}
		b.WriteString(style.Render(text))
		used += ansi.StringWidth(text)
	}
	if n := filter.ActiveCount(sel); n > 0 {
		text := fmt.Sprintf(" (%d active, [a] clear)", n)
		b.WriteString(m.styles.FilterActiveStyle.Render(text))
		used += ansi.StringWidth(text)
	}

	out := b.String()
	if used > m.layout.InnerW {
		return ansi.Truncate(out, m.layout.InnerW, "")
	}
	return out + m.styles.FilterStyle.Render(strings.Repeat(" ", m.layout.InnerW-used))
}

func (m Model) onToday() bool {
	return dateutil.SameDay(m.sel.Date, m.clock)
}

func (m Model) renderHeader() string {
	l := m.layout
	w := l.Grid.SlotWidth

	var b strings.Builder
	b.WriteString(m.styles.HeaderStyle.Render(fit(" "+string(m.sel.By), l.NameColW)))
	b.WriteString(m.styles.HeaderStyle.Render(separatorChar))

	for i := 0; i < l.VisibleSlots; i++ {
		slot := m.slotOffset + i
		label := grid.SlotLabel(slot)
		if w < 5 {
			label = label[:2]
		}
		style := m.styles.HeaderStyle
		switch {
		case m.onToday() && slot == m.clock.Hour():
			style = m.styles.HeaderNowStyle
		case grid.BandOf(slot) == grid.BandNight:
			style = m.styles.HeaderNightStyle
		}
		b.WriteString(style.Render(fit(label, w)))
	}

	used := l.GridX + l.VisibleSlots*w
	if used < l.InnerW {
		b.WriteString(m.styles.HeaderStyle.Render(strings.Repeat(" ", l.InnerW-used)))
	}
	return b.String()
}

func (m Model) statusSymbol(e shift.Entity) string {
	switch e.Status {
	case shift.StatusOnline, shift.StatusActive:
		return m.styles.OnlineStyle.Render("●")
	case shift.StatusAway, shift.StatusMaintenance:
		return m.styles.AwayStyle.Render("◐")
	default:
		return m.styles.OfflineStyle.Render("○")
	}
}

func (m Model) renderName(row int, e shift.Entity, line int) string {
	w := m.layout.NameColW
	switch {
	case line == 0:
		style := m.styles.NameStyle
		if row == m.cursor.Row {
			style = m.styles.NameCursorStyle
		}
		return m.styles.NameStyle.Render(" ") + m.statusSymbol(e) + style.Render(fit(" "+e.Name, w-2))
	case line == 1 && m.sel.Density == grid.DensityExpanded && e.Address != "":
		return m.styles.AddressStyle.Render(fit("   "+e.Address, w))
	default:
		return m.styles.NameStyle.Render(strings.Repeat(" ", w))
	}
}

// renderRows draws the entity rows that fit in the grid area.
func (m Model) renderRows() []string {
	l := m.layout
	w := l.Grid.SlotWidth

	session, dragging := m.drag.Session()
	nowCol := -1
	if m.onToday() {
		nowCol = int(l.Grid.NowOffset(m.clock))
	}

	var out []string
	for r := m.rowOffset; r < len(m.rows) && len(out) < l.GridH; r++ {
		e := m.rows[r]
		h := m.rowHeight(r)
		cells := m.rowCells(e, h)
		dragRow := dragging && session.Anchor.EntityID == e.ID
		var dragText string
		if dragRow {
			p := session.Preview
			dragText = fit(fmt.Sprintf(" + %s-%s", p.StartTime, p.EndTime), p.Width)
		}

		for line := 0; line < h && len(out) < l.GridH; line++ {
			var b strings.Builder
			b.WriteString(m.renderName(r, e, line))
			b.WriteString(m.styles.SeparatorStyle.Render(separatorChar))

			for i := 0; i < l.VisibleSlots; i++ {
				slot := m.slotOffset + i
				c := cells[line][slot]
				cursorHere := !dragging && r == m.cursor.Row && slot == m.cursor.Slot && line == m.cursor.Line

				switch {
				case dragRow && session.Preview.Contains(slot):
					text := strings.Repeat(" ", w)
					if line == 0 {
						k := slot - session.Preview.StartSlot
						text = ansi.Cut(dragText, k*w, (k+1)*w)
					}
					b.WriteString(m.styles.DragStyle.Render(text))
				case c.shift != nil && cursorHere:
					b.WriteString(m.styles.CursorOnBlock.Render(c.text))
				case c.shift != nil && c.wrap:
					b.WriteString(m.styles.WrapStyle(c.shift.IsCovered()).Render(c.text))
				case c.shift != nil:
					b.WriteString(m.styles.BlockStyle(c.shift.IsCovered(), c.stacked).Render(c.text))
				default:
					b.WriteString(m.emptyCell(slot, cursorHere, nowCol))
				}
			}

			used := l.GridX + l.VisibleSlots*w
			if used < l.InnerW {
				b.WriteString(m.styles.NameStyle.Render(strings.Repeat(" ", l.InnerW-used)))
			}
			out = append(out, b.String())
		}
	}
	return out
}

// emptyCell draws a free slot, shaded by band, with the optional grid line
// and the now marker when it falls inside the slot.
func (m Model) emptyCell(slot int, cursor bool, nowCol int) string {
	w := m.layout.Grid.SlotWidth
	style := m.styles.EmptyCellStyle
	if grid.BandOf(slot) == grid.BandNight {
		style = m.styles.NightCellStyle
	}
	if cursor {
		style = m.styles.CursorStyle
	}

	text := make([]string, w)
	for i := range text {
		text[i] = " "
	}
	if m.showGridLines {
		text[0] = gridLineChar
	}

	left := slot * w
	if nowCol < left || nowCol >= left+w {
		return style.Render(strings.Join(text, ""))
	}
	k := nowCol - left
	marker := m.styles.NowMarkerStyle.Background(style.GetBackground()).Render(nowMarkerChar)
	return style.Render(strings.Join(text[:k], "")) + marker + style.Render(strings.Join(text[k+1:], ""))
}

// renderGrid draws the title, filter bar, header and rows, padded to the
// grid area height.
func (m Model) renderGrid() string {
	lines := []string{m.renderTitle(), m.renderFilterBar(), m.renderHeader()}

	rows := m.renderRows()
	if len(m.rows) == 0 {
		msg := "No rows match the current filters"
		if m.loading {
			msg = "Loading..."
		}
		rows = []string{m.styles.HelpStyle.Render(fit("  "+msg, m.layout.InnerW))}
	}
	lines = append(lines, rows...)

	bg := m.styles.Palette().Bg
	return view.PadLinesWithBackground(strings.Join(lines, "\n"), m.layout.InnerW, gridTop+m.layout.GridH, bg)
}

// renderStats summarises the selected day in the footer.
func (m Model) renderStats() string {
	s := m.stats
	if s == nil {
		return ""
	}
	st := m.styles
	return st.StatsStyle.Render(fmt.Sprintf(" %d shifts  ", s.Total)) +
		st.StatsCoveredStyle.Render(fmt.Sprintf("● %d covered (%s)", s.Covered, view.FormatHours(s.CoveredHours))) +
		st.StatsStyle.Render("  ") +
		st.StatsUncoveredStyle.Render(fmt.Sprintf("○ %d uncovered (%s)", s.Uncovered, view.FormatHours(s.UncoveredHours))) +
		st.StatsStyle.Render(fmt.Sprintf("  %.0f%% covered  night %d  urgent %d", s.CoveragePercent(), s.Night, len(s.Urgent)))
}
