package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/tui/commands"
)

const statusDuration = 3 * time.Second

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeDrag:
		return m.handleDragKeys(msg)
	case ModeModal:
		return m.handleModalKey(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.sel

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.cursor.Slot = grid.Clamp(m.cursor.Slot - 1)
	case "l", "right":
		m.cursor.Slot = grid.Clamp(m.cursor.Slot + 1)
	case "j", "down":
		m.cursorDown()
	case "k", "up":
		m.cursorUp()
	case "0", "home":
		m.cursor.Slot = 0
	case "$", "end":
		m.cursor.Slot = grid.SlotsPerDay - 1
	case "ctrl+d", "pgdown":
		m.scrollRows(max(m.layout.GridH/2, 1))
	case "ctrl+u", "pgup":
		m.scrollRows(-max(m.layout.GridH/2, 1))

	// Shifts
	case "enter":
		m.activateCell()
		return m, nil
	case " ":
		cmd := m.beginKeyboardDrag()
		return m, cmd
	case "y":
		cmd := m.copyShift()
		return m, cmd
	case "?":
		cmd := m.openSummary()
		return m, cmd
	case "r":
		m.loading = true
		return m, commands.LoadData(m.repo)

	// Filters
	case "b":
		m.cursor = Position{Slot: m.cursor.Slot}
		m.rowOffset = 0
		m.setSelection(sel.WithBy(sel.By.Next()), "view")
	case "t":
		m.setSelection(sel.WithType(cycle(typeOptions(), sel.Type)), "type")
	case "s":
		m.setSelection(sel.WithStatus(cycle(filter.Statuses(), sel.Status)), "status")
	case "n":
		m.setSelection(sel.WithName(cycle(m.nameOptions(), sel.Name)), "name")
	case "z":
		m.setSelection(sel.WithDensity(sel.Density.Next()), "density")
	case "a":
		m.setSelection(filter.NewSelection(sel.By, sel.Date).WithDensity(sel.Density), "clear")
	case "/":
		m.openPrompt()

	// Days
	case "[":
		m.setSelection(sel.WithDate(dateutil.AddDays(sel.Date, -1)), "previous day")
	case "]":
		m.setSelection(sel.WithDate(dateutil.AddDays(sel.Date, 1)), "next day")
	case "T":
		m.setSelection(sel.WithDate(dateutil.TruncateToDay(m.clock)), "today")

	case "g":
		m.showGridLines = !m.showGridLines
	}

	m.relayout()
	return m, nil
}

func (m *Model) cursorDown() {
	if m.cursor.Line < m.rowHeight(m.cursor.Row)-1 {
		m.cursor.Line++
		return
	}
	if m.cursor.Row < len(m.rows)-1 {
		m.cursor.Row++
		m.cursor.Line = 0
	}
}

func (m *Model) cursorUp() {
	if m.cursor.Line > 0 {
		m.cursor.Line--
		return
	}
	if m.cursor.Row > 0 {
		m.cursor.Row--
		m.cursor.Line = m.rowHeight(m.cursor.Row) - 1
	}
}

// cycle returns the option after current, wrapping around. An unknown
// current value moves to the first option.
func cycle(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func typeOptions() []string {
	return append([]string{filter.All}, shift.Types()...)
}

// nameOptions lists the names the picker cycles through, narrowed by the
// search term.
func (m Model) nameOptions() []string {
	out := []string{filter.All}
	for _, e := range filter.SearchNames(m.sel.By, m.sel.NameSearch, m.entities) {
		out = append(out, e.Name)
	}
	return out
}

// shiftAt returns the shift drawn at a cell, if any.
func (m Model) shiftAt(pos Position) *shift.Shift {
	if pos.Row < 0 || pos.Row >= len(m.rows) {
		return nil
	}
	e := m.rows[pos.Row]
	h := m.rowHeight(pos.Row)
	if pos.Line < h {
		if c := m.rowCells(e, h)[pos.Line][grid.Clamp(pos.Slot)]; c.shift != nil {
			return c.shift
		}
	}
	if found := m.index.ShiftsAt(e.ID, pos.Slot); len(found) > 0 && pos.Line == 0 {
		return found[0]
	}
	return nil
}

// activateCell edits the shift under the cursor, or opens a one hour draft
// on a free cell.
func (m *Model) activateCell() {
	e, ok := m.currentRow()
	if !ok {
		return
	}
	if s := m.shiftAt(m.cursor); s != nil {
		m.editShift(s)
		return
	}
	if m.index.Occupied(e.ID, m.cursor.Slot) {
		return
	}
	slot := m.cursor.Slot
	d := shift.NewDraft(shift.TargetFor(m.sel.By, e.Name), grid.SlotLabel(slot), grid.SlotEndLabel(slot), m.sel.Date)
	m.openEditor(0, d)
}

// beginDrag starts a drag session on a free cell. x is an offset into the
// full day.
func (m *Model) beginDrag(pos Position, x int, mouse bool) tea.Cmd {
	if pos.Row < 0 || pos.Row >= len(m.rows) {
		return nil
	}
	e := m.rows[pos.Row]
	if m.index.Occupied(e.ID, pos.Slot) {
		LogError("drag", grid.ErrCellOccupied)
		return m.setStatus("Cell already has a shift")
	}
	anchor := grid.Anchor{EntityID: e.ID, EntityName: e.Name, Slot: pos.Slot}
	if err := m.drag.Begin(anchor, x, m.layout.Grid); err != nil {
		LogError("drag", err)
		return nil
	}
	m.mouseDrag = mouse
	m.setMode(ModeDrag, "drag begin")
	LogDrag("begin", &m.drag)
	return nil
}

func (m *Model) beginKeyboardDrag() tea.Cmd {
	return m.beginDrag(m.cursor, m.layout.Grid.Offset(m.cursor.Slot), false)
}

// endDrag turns the drag preview into a draft and opens the editor.
func (m *Model) endDrag() {
	LogDrag("end", &m.drag)
	p, _ := m.drag.Preview()
	d, ok := m.drag.End(m.sel.By, m.sel.Date)
	m.mouseDrag = false
	if !ok {
		m.setMode(ModeNormal, "drag lost")
		return
	}
	m.cursor.Slot = p.StartSlot
	m.openEditor(0, d)
}

func (m *Model) cancelDrag() {
	LogDrag("cancel", &m.drag)
	m.drag.Cancel()
	m.mouseDrag = false
	m.setMode(ModeNormal, "drag cancelled")
}

// handleDragKeys extends or commits a drag from the keyboard.
func (m Model) handleDragKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if _, err := m.drag.Step(-1); err == nil {
			LogDrag("step", &m.drag)
		}
	case "l", "right":
		if _, err := m.drag.Step(1); err == nil {
			LogDrag("step", &m.drag)
		}
	case "enter", " ":
		m.endDrag()
	case "esc", "q":
		m.cancelDrag()
	}
	m.relayout()
	return m, nil
}

// copyShift puts the details of the shift under the cursor on the clipboard.
func (m *Model) copyShift() tea.Cmd {
	s := m.shiftAt(m.cursor)
	if s == nil {
		return m.setStatus("No shift here")
	}
	if err := clipboardWrite(shiftDetails(s)); err != nil {
		LogError("clipboard", err)
		return m.setStatus("Clipboard unavailable")
	}
	return m.setStatus(fmt.Sprintf("Copied shift #%d", s.ID))
}

func shiftDetails(s *shift.Shift) string {
	worker := "Unassigned"
	if s.IsAssigned() {
		worker = s.WorkerName
	}
	parts := []string{
		fmt.Sprintf("#%d %s %s-%s", s.ID, s.Date.Format("2006-01-02"), s.Start, s.End),
		fmt.Sprintf("%s → %s", worker, s.ServiceClient),
	}
	if s.Type != "" {
		parts = append(parts, s.Type)
	}
	parts = append(parts, string(s.Coverage))
	if s.Notes != "" {
		parts = append(parts, s.Notes)
	}
	return strings.Join(parts, " | ")
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now()
	return commands.ClearStatusAfter(statusDuration)
}
