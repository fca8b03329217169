package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/seed"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/store"
	"github.com/javiermolinar/rota/internal/tui/commands"
)

var (
	testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	testNow = testDay.Add(9 * time.Hour)
)

// Rows of the service view in fixture order.
const (
	rowWaverley = iota
	rowChingford
	rowClayburn
)

func newTestModel(t *testing.T, extra ...shift.Draft) (Model, *store.Memory) {
	t.Helper()

	data, err := seed.Default(testDay)
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	repo := store.NewMemory(data.Entities, data.Shifts)
	for _, d := range extra {
		if _, err := repo.CreateShift(context.Background(), d); err != nil {
			t.Fatalf("CreateShift failed: %v", err)
		}
	}

	m := New(repo, config.Default(), WithNow(func() time.Time { return testNow }))
	model := send(t, *m, tea.WindowSizeMsg{Width: 120, Height: 40})
	model = send(t, model, commands.LoadData(repo)())
	return model, repo
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := clipboardWrite
	clipboardWrite = fn
	t.Cleanup(func() { clipboardWrite = prev })
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestNew_Defaults(t *testing.T) {
	m := New(nil, config.Default(), WithNow(func() time.Time { return testNow }))

	if m.sel.By != shift.ViewServiceClient {
		t.Errorf("By = %q", m.sel.By)
	}
	if !m.sel.Date.Equal(testDay) {
		t.Errorf("Date = %v, want %v", m.sel.Date, testDay)
	}
	if m.sel.Density != grid.DensityStandard {
		t.Errorf("Density = %q", m.sel.Density)
	}
	if m.cursor.Slot != 9 {
		t.Errorf("cursor slot = %d, want the current hour", m.cursor.Slot)
	}
	if !m.loading || m.mode != ModeNormal {
		t.Errorf("loading = %v, mode = %v", m.loading, m.mode)
	}
	if !m.showGridLines {
		t.Error("grid lines should follow the config default")
	}
}

func TestNew_ConfigDensityAndView(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Density = "compact"
	cfg.Schedule.DefaultView = "worker"

	m := New(nil, cfg, WithNow(func() time.Time { return testNow }))
	if m.sel.Density != grid.DensityCompact || m.sel.By != shift.ViewWorker {
		t.Errorf("selection = %+v", m.sel)
	}
}

func TestLayout(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layout

	if l.NameColW != 24 || l.GridX != 25 {
		t.Errorf("name column = %d, grid x = %d", l.NameColW, l.GridX)
	}
	if l.Grid.SlotWidth != 5 || l.VisibleSlots != 19 {
		t.Errorf("slot width = %d, visible = %d", l.Grid.SlotWidth, l.VisibleSlots)
	}
	if l.FooterH != footerBaseH || l.GridH != 40-gridTop-footerBaseH {
		t.Errorf("footer = %d, grid = %d", l.FooterH, l.GridH)
	}
}

func TestCellAt(t *testing.T) {
	m, _ := newTestModel(t)

	tests := []struct {
		name   string
		x, y   int
		want   Position
		wantOK bool
	}{
		{"first cell", 25, 3, Position{Row: rowWaverley, Slot: 0}, true},
		{"inside a slot", 29, 3, Position{Row: rowWaverley, Slot: 0}, true},
		{"second row", 35, 4, Position{Row: rowChingford, Slot: 2}, true},
		{"name column", 24, 3, Position{}, false},
		{"header", 30, 2, Position{}, false},
		{"right of the grid", 120, 3, Position{}, false},
		{"below the rows", 30, 30, Position{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.cellAt(tc.x, tc.y)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("cellAt(%d, %d) = %+v, %v; want %+v, %v", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMouseDragCreatesShift(t *testing.T) {
	m, repo := newTestModel(t)

	m = send(t, m, press(35, 4))
	if m.mode != ModeDrag || !m.mouseDrag {
		t.Fatalf("mode = %v, mouse drag = %v", m.mode, m.mouseDrag)
	}

	m = send(t, m, motion(45, 4))
	if out := ansi.Strip(m.View()); !strings.Contains(out, "+ 02:00-05:00") {
		t.Errorf("view missing drag preview:\n%s", out)
	}

	m = send(t, m, release(45, 4))
	if m.mode != ModeModal || m.modalType != ModalEditor {
		t.Fatalf("mode = %v, modal = %v; want editor", m.mode, m.modalType)
	}
	if m.drag.Active() {
		t.Error("drag should be over")
	}

	d := m.editor.editorDraft()
	if d.ServiceClient != "Chingford" || d.Start != "02:00" || d.End != "05:00" {
		t.Errorf("draft = %+v", d)
	}
	if !m.editor.fields[fieldServiceClient].locked || m.editor.fields[fieldWorker].locked {
		t.Error("only the service field should be locked")
	}

	m, cmd := sendCmd(t, m, key("enter"))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	saved, ok := cmd().(commands.ShiftSavedMsg)
	if !ok {
		t.Fatalf("expected ShiftSavedMsg")
	}
	if saved.Shift.ID != 16 || !saved.Created {
		t.Errorf("saved = %+v", saved)
	}

	m = send(t, m, saved)
	if m.statusMsg != "Created shift #16" || m.mode != ModeNormal {
		t.Errorf("status = %q, mode = %v", m.statusMsg, m.mode)
	}

	shifts := repo.Snapshot()
	created := shifts[len(shifts)-1]
	if created.Start != "02:00" || created.End != "05:00" || created.Notes != shift.DefaultNotes {
		t.Errorf("stored = %+v", created)
	}
}

func TestMouseDragLeftOfAnchor(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, press(45, 4))  // slot 4
	m = send(t, m, motion(32, 4)) // 13 cells left rounds to 3 slots
	p, ok := m.drag.Preview()
	if !ok || p.StartSlot != 1 || p.EndSlot != 4 {
		t.Errorf("preview = %+v, %v", p, ok)
	}
}

func TestMousePressOnShiftOpensEditor(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		wantID int64
	}{
		{"block", 85, 4, 10},
		{"wrap tail", 35, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = send(t, m, press(tc.x, tc.y))
			if m.modalType != ModalEditor || m.editor.id != tc.wantID {
				t.Errorf("modal = %v, editing #%d; want #%d", m.modalType, m.editor.id, tc.wantID)
			}
			if m.drag.Active() {
				t.Error("pressing a shift must not start a drag")
			}
		})
	}
}

func TestMouseIgnoredInModal(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, press(85, 4))
	id := m.editor.id

	m = send(t, m, press(35, 4))
	if m.editor.id != id || m.drag.Active() {
		t.Error("mouse should be ignored while a modal is open")
	}
}

func TestMouseWheelScrollsRows(t *testing.T) {
	m, _ := newTestModel(t)
	m.height = 12
	m.relayout()

	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.rowOffset != 1 {
		t.Errorf("rowOffset = %d, want 1", m.rowOffset)
	}
	m = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.rowOffset != 0 {
		t.Errorf("rowOffset = %d, want 0", m.rowOffset)
	}
}

func TestKeyboardDrag(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("j"))
	if m.cursor.Row != rowChingford || m.cursor.Slot != 9 {
		t.Fatalf("cursor = %+v", m.cursor)
	}

	m = send(t, m, key(" "))
	if m.mode != ModeDrag || m.mouseDrag {
		t.Fatalf("mode = %v, mouse = %v", m.mode, m.mouseDrag)
	}
	m = send(t, m, key("l"))
	m = send(t, m, key("l"))
	m = send(t, m, key("enter"))

	d := m.editor.editorDraft()
	if d.Start != "09:00" || d.End != "12:00" {
		t.Errorf("span = %s-%s, want 09:00-12:00", d.Start, d.End)
	}
}

func TestKeyboardDragCancel(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, key("j"))
	m = send(t, m, key(" "))
	m = send(t, m, key("esc"))

	if m.mode != ModeNormal || m.drag.Active() {
		t.Errorf("mode = %v, active = %v", m.mode, m.drag.Active())
	}
	if len(repo.Snapshot()) != 15 {
		t.Error("cancel must not create a shift")
	}
}

func TestKeyboardDragOnOccupiedCell(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key(" ")) // 26 Waverley Lodge at 09:00 holds #11

	if m.mode != ModeNormal || m.drag.Active() {
		t.Errorf("mode = %v, active = %v", m.mode, m.drag.Active())
	}
	if m.statusMsg != "Cell already has a shift" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestEnterOnEmptyCellOpensOneHourDraft(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("j"))
	m = send(t, m, key("enter"))

	if m.modalType != ModalEditor || !m.editor.creating() {
		t.Fatalf("modal = %v, id = %d", m.modalType, m.editor.id)
	}
	d := m.editor.editorDraft()
	if d.ServiceClient != "Chingford" || d.Start != "09:00" || d.End != "10:00" {
		t.Errorf("draft = %+v", d)
	}
}

func TestWorkerViewDraftLocksWorker(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("b"))
	m = send(t, m, key("b"))
	if m.sel.By != shift.ViewWorker {
		t.Fatalf("By = %q", m.sel.By)
	}

	m = send(t, m, key("enter")) // Abu, Blessing (Blessing) at 09:00 is free
	if !m.editor.fields[fieldWorker].locked {
		t.Fatal("worker should be locked")
	}
	if got := m.editor.fields[fieldWorker].value(); got != "Abu, Blessing (Blessing)" {
		t.Errorf("worker = %q", got)
	}
	if m.editor.focus == fieldWorker {
		t.Error("focus should skip the locked field")
	}
}

func TestEditShiftKeepsWorker(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, key("enter")) // #11 at the cursor

	if m.editor.id != 11 {
		t.Fatalf("editing #%d, want #11", m.editor.id)
	}
	if got := m.editor.fields[fieldWorker].value(); got != "Ahmed, Jaber (Jaber)" {
		t.Errorf("worker = %q, want the full entity name", got)
	}

	m.editor.fields[fieldStatus].set(string(shift.CoverageUncovered))
	m, cmd := sendCmd(t, m, key("enter"))
	saved, ok := cmd().(commands.ShiftSavedMsg)
	if !ok || saved.Created {
		t.Fatalf("expected an update, got %+v", saved)
	}

	got, _ := repo.GetShift(context.Background(), 11)
	if got.IsCovered() || got.WorkerID == nil || *got.WorkerID != 4 {
		t.Errorf("stored = %+v", got)
	}

	m = send(t, m, saved)
	if m.statusMsg != "Updated shift #11" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestEditorRoleClearsWorker(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursor = Position{Row: rowClayburn, Slot: 20}
	m = send(t, m, key("enter"))
	if m.editor.id != 2 {
		t.Fatalf("editing #%d, want #2", m.editor.id)
	}

	m = send(t, m, key("tab"))
	m = send(t, m, key("tab"))
	if m.editor.focus != fieldRole {
		t.Fatalf("focus = %d, want role", m.editor.focus)
	}
	m = send(t, m, key("right"))

	if got := m.editor.fields[fieldRole].value(); got != string(shift.CategorySeniorSupportWorker) {
		t.Errorf("role = %q", got)
	}
	if got := m.editor.fields[fieldWorker].value(); got != "" {
		t.Errorf("worker = %q, want cleared", got)
	}
	if opts := m.editor.fields[fieldWorker].options; len(opts) != 2 || opts[1] != "Williams, Sarah" {
		t.Errorf("worker options = %v", opts)
	}
}

func TestEditorValidation(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, key("j"))
	m = send(t, m, key("enter"))

	m.editor.fields[fieldStart].input.SetValue("9am")
	m, cmd := sendCmd(t, m, key("enter"))
	if cmd != nil {
		t.Error("invalid draft must not be saved")
	}
	if m.mode != ModeModal || !strings.Contains(m.editor.err, "start time") {
		t.Errorf("mode = %v, err = %q", m.mode, m.editor.err)
	}

	m = send(t, m, key("esc"))
	if m.mode != ModeNormal || len(repo.Snapshot()) != 15 {
		t.Errorf("mode = %v, shifts = %d", m.mode, len(repo.Snapshot()))
	}
}

func TestFilterKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, m Model)
	}{
		{
			name: "cycle view",
			keys: []string{"b"},
			check: func(t *testing.T, m Model) {
				if m.sel.By != shift.ViewClient || len(m.rows) != 8 {
					t.Errorf("By = %q, rows = %d", m.sel.By, len(m.rows))
				}
			},
		},
		{
			name: "status",
			keys: []string{"s"},
			check: func(t *testing.T, m Model) {
				if m.sel.Status != filter.StatusCovered {
					t.Errorf("Status = %q", m.sel.Status)
				}
				for _, s := range m.visible {
					if !s.IsCovered() {
						t.Errorf("uncovered shift #%d visible", s.ID)
					}
				}
			},
		},
		{
			name: "name picker",
			keys: []string{"n"},
			check: func(t *testing.T, m Model) {
				if m.sel.Name != "26 Waverley Lodge" || len(m.rows) != 1 {
					t.Errorf("Name = %q, rows = %d", m.sel.Name, len(m.rows))
				}
			},
		},
		{
			name: "clear",
			keys: []string{"s", "t", "a"},
			check: func(t *testing.T, m Model) {
				if filter.ActiveCount(m.sel) != 0 {
					t.Errorf("selection = %+v", m.sel)
				}
			},
		},
		{
			name: "density",
			keys: []string{"z"},
			check: func(t *testing.T, m Model) {
				if m.sel.Density != grid.DensityExpanded || m.layout.Grid.SlotWidth != 6 {
					t.Errorf("density = %q, width = %d", m.sel.Density, m.layout.Grid.SlotWidth)
				}
				if m.rowHeight(0) != 2 {
					t.Errorf("expanded rows should leave room for the address")
				}
			},
		},
		{
			name: "previous day",
			keys: []string{"["},
			check: func(t *testing.T, m Model) {
				if !m.sel.Date.Equal(testDay.AddDate(0, 0, -1)) || len(m.visible) != 0 {
					t.Errorf("date = %v, visible = %d", m.sel.Date, len(m.visible))
				}
			},
		},
		{
			name: "back to today",
			keys: []string{"]", "]", "T"},
			check: func(t *testing.T, m Model) {
				if !m.sel.Date.Equal(testDay) {
					t.Errorf("date = %v", m.sel.Date)
				}
			},
		},
		{
			name: "grid lines",
			keys: []string{"g"},
			check: func(t *testing.T, m Model) {
				if m.showGridLines {
					t.Error("grid lines should be off")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			for _, k := range tc.keys {
				m = send(t, m, key(k))
			}
			tc.check(t, m)
		})
	}
}

func TestCursorMovesThroughStack(t *testing.T) {
	extra := shift.NewDraft(shift.ServiceClientAssignment{ServiceClient: "Chingford"}, "12:00", "14:00", testDay)
	m, _ := newTestModel(t, extra)

	if h := m.rowHeight(rowChingford); h != 2 {
		t.Fatalf("row height = %d, want 2", h)
	}
	if pos, ok := m.cellAt(85, 5); !ok || pos.Row != rowChingford || pos.Line != 1 {
		t.Errorf("cellAt second line = %+v, %v", pos, ok)
	}
	if pos, ok := m.cellAt(85, 6); !ok || pos.Row != rowClayburn {
		t.Errorf("cellAt next row = %+v, %v", pos, ok)
	}

	m.cursor = Position{Row: rowChingford, Slot: 12}
	m = send(t, m, key("j"))
	if m.cursor.Row != rowChingford || m.cursor.Line != 1 {
		t.Fatalf("cursor = %+v", m.cursor)
	}
	if s := m.shiftAt(m.cursor); s == nil || s.ID != 16 {
		t.Errorf("shift at second line = %+v", s)
	}
	m = send(t, m, key("j"))
	if m.cursor.Row != rowClayburn || m.cursor.Line != 0 {
		t.Errorf("cursor = %+v", m.cursor)
	}
	m = send(t, m, key("k"))
	if m.cursor.Row != rowChingford || m.cursor.Line != 1 {
		t.Errorf("cursor = %+v", m.cursor)
	}
}

func TestPromptSearch(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("/"))
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v", m.mode)
	}

	m = send(t, m, key("ching"))
	if m.sel.NameSearch != "ching" {
		t.Errorf("NameSearch = %q", m.sel.NameSearch)
	}
	if m.layout.FooterH <= footerBaseH {
		t.Error("footer should grow to show the prompt")
	}
	if got := m.promptMatches(); len(got) != 1 || got[0] != "Chingford" {
		t.Errorf("matches = %v", got)
	}

	m = send(t, m, key("enter"))
	if m.mode != ModeNormal || m.sel.Name != "Chingford" || len(m.rows) != 1 {
		t.Errorf("mode = %v, name = %q, rows = %d", m.mode, m.sel.Name, len(m.rows))
	}
}

func TestPromptCancelRestoresSearch(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("/"))
	m = send(t, m, key("lodge"))
	m = send(t, m, key("esc"))

	if m.mode != ModeNormal || m.sel.NameSearch != "" || m.sel.Name != filter.All {
		t.Errorf("mode = %v, selection = %+v", m.mode, m.sel)
	}
}

func TestPromptNoMatch(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key("/"))
	m = send(t, m, key("zzz"))
	m = send(t, m, key("enter"))

	if m.statusMsg != "No match" || m.sel.Name != filter.All {
		t.Errorf("status = %q, name = %q", m.statusMsg, m.sel.Name)
	}
}

func TestSummaryModal(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	m, _ := newTestModel(t)
	m, cmd := sendCmd(t, m, key("?"))
	if m.modalType != ModalSummary || cmd == nil {
		t.Fatalf("modal = %v, cmd = %v", m.modalType, cmd)
	}
	m = send(t, m, cmd())
	if m.summary == nil || m.summary.Total != 15 {
		t.Fatalf("summary = %+v", m.summary)
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Day summary") {
		t.Errorf("view missing summary modal:\n%s", out)
	}

	m = send(t, m, key("y"))
	if !strings.Contains(copied, "Total: 15 shifts") || m.statusMsg != "Summary copied" {
		t.Errorf("copied = %q, status = %q", copied, m.statusMsg)
	}

	m = send(t, m, key("esc"))
	if m.mode != ModeNormal || m.modalType != ModalNone {
		t.Errorf("mode = %v, modal = %v", m.mode, m.modalType)
	}
}

func TestCopyShift(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	m, _ := newTestModel(t)
	m = send(t, m, key("y"))
	if !strings.HasPrefix(copied, "#11 2025-03-10 09:00-17:00") || m.statusMsg != "Copied shift #11" {
		t.Errorf("copied = %q, status = %q", copied, m.statusMsg)
	}

	stubClipboard(t, func(string) error { return errors.New("no clipboard") })
	m = send(t, m, key("y"))
	if m.statusMsg != "Clipboard unavailable" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	out := ansi.Strip(m.View())

	for _, want := range []string{
		"Mon 10 Mar 2025 (today)",
		"[b] View: Service & Client",
		"09:00",
		"Chingford",
		"Unassigned 12:00-20:00",
		wrapChar,
		"15 shifts",
		"hjkl move",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if lines := strings.Split(out, "\n"); len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
}

func TestView_BeforeResize(t *testing.T) {
	m := New(nil, config.Default())
	if got := m.View(); got != "Loading rota..." {
		t.Errorf("View() = %q", got)
	}
}

func TestUpdate_Messages(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, commands.ErrMsg{Err: errors.New("boom")})
	if m.statusMsg != "Error: boom" || m.err == nil {
		t.Errorf("status = %q, err = %v", m.statusMsg, m.err)
	}

	later := testNow.Add(time.Minute)
	m.now = func() time.Time { return later }
	m = send(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("status should clear, got %q", m.statusMsg)
	}

	m = send(t, m, commands.TickMsg{Time: testDay.Add(14*time.Hour + 30*time.Minute)})
	if m.clock.Hour() != 14 {
		t.Errorf("clock = %v", m.clock)
	}
}

func TestUpdate_StatusNotClearedEarly(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, commands.StatusMsgCmd{Msg: "hello"})
	m = send(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "hello" {
		t.Errorf("status = %q, want it kept until it expires", m.statusMsg)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
