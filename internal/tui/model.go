// Package tui provides the terminal user interface for rota.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/summary"
	"github.com/javiermolinar/rota/internal/tui/commands"
	"github.com/javiermolinar/rota/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDrag        // selecting a span for a new shift
	ModePrompt      // typing a name search
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone    ModalType = iota
	ModalEditor            // create or edit a shift
	ModalSummary           // day summary
)

// Position is a cursor position in the grid. Line selects one shift of a
// stack when a row is taller than one line.
type Position struct {
	Row  int
	Slot int
	Line int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   shift.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Data and filters
	sel      filter.Selection
	entities []shift.Entity
	shifts   []*shift.Shift

	// Derived from data and filters by refresh
	rows    []shift.Entity
	visible []*shift.Shift
	index   *grid.Index
	stats   *summary.DaySummary

	// State
	cursor    Position
	mode      Mode
	loading   bool
	drag      grid.Drag
	mouseDrag bool // drag driven by the pointer rather than the keyboard

	// Modal state
	modalType ModalType
	editor    editorState
	summary   *summary.DaySummary

	// Components
	prompt        textinput.Model
	promptSaved   string
	showGridLines bool

	// Terminal dimensions and layout
	width      int
	height     int
	layout     LayoutCache
	rowOffset  int // first entity row on screen
	slotOffset int // first slot on screen

	// Messages
	statusMsg  string
	statusTime time.Time

	now   func() time.Time
	clock time.Time

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model showing today.
func New(repo shift.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	prompt := textinput.New()
	prompt.Placeholder = "name"
	prompt.Prompt = ""
	prompt.CharLimit = 64

	m := &Model{
		repo:          repo,
		config:        cfg,
		theme:         t,
		styles:        styles,
		mode:          ModeNormal,
		loading:       true,
		prompt:        prompt,
		showGridLines: cfg.UI.ShowGridLines,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.clock = m.now()
	m.sel = filter.NewSelection(cfg.View(), dateutil.TruncateToDay(m.clock)).
		WithDensity(cfg.Density())
	m.cursor.Slot = m.clock.Hour()
	m.editor = newEditorState(styles)
	m.refresh()

	return m
}

// Init loads the data and starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(commands.LoadData(m.repo), commands.Tick())
}

// Run starts the TUI.
func Run(repo shift.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo shift.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// refresh recomputes the rows, the visible shifts and the layout after the
// data or the selection changed.
func (m *Model) refresh() {
	m.rows = filter.Entities(m.sel, m.entities)
	m.visible = filter.Apply(m.sel, m.shifts)
	m.index = grid.NewIndex(m.visible, m.rows, m.sel.By)
	m.stats = summary.SummarizeDay(m.sel, m.shifts)

	m.cursor.Row = min(max(m.cursor.Row, 0), max(len(m.rows)-1, 0))
	m.cursor.Slot = grid.Clamp(m.cursor.Slot)
	m.cursor.Line = min(m.cursor.Line, m.rowHeight(m.cursor.Row)-1)
	m.relayout()
}

// setSelection applies a new filter selection.
func (m *Model) setSelection(sel filter.Selection, reason string) {
	m.sel = sel
	LogFilter(sel, reason)
	m.refresh()
}

// currentRow returns the entity under the cursor.
func (m Model) currentRow() (shift.Entity, bool) {
	if m.cursor.Row < 0 || m.cursor.Row >= len(m.rows) {
		return shift.Entity{}, false
	}
	return m.rows[m.cursor.Row], true
}

func (m *Model) setMode(to Mode, reason string) {
	if m.mode != to {
		LogModeChange(m.mode, to, reason)
	}
	m.mode = to
}
