package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/tui/view"
)

const (
	promptLabel      = "Find:"
	maxPromptMatches = 8
)

// openPrompt starts a name search with the current term.
func (m *Model) openPrompt() {
	m.promptSaved = m.sel.NameSearch
	m.prompt.SetValue(m.sel.NameSearch)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.setMode(ModePrompt, "search")
}

func (m *Model) closePrompt(reason string) {
	m.prompt.Blur()
	m.setMode(ModeNormal, reason)
}

// promptMatches returns the entity names matching the typed term.
func (m Model) promptMatches() []string {
	found := filter.SearchNames(m.sel.By, m.prompt.Value(), m.entities)
	out := make([]string, 0, min(len(found), maxPromptMatches))
	for _, e := range found {
		if len(out) == maxPromptMatches {
			break
		}
		out = append(out, e.Name)
	}
	return out
}

func (m Model) promptLines(width int) []string {
	lines := view.PromptLines(view.PromptState{
		Label:  promptLabel,
		Value:  m.prompt.Value(),
		Cursor: "█",
	}, width, m.promptMatches())
	return view.ClampPromptLines(lines, maxPromptRows, width)
}

// handlePromptKeys edits the search term. Enter selects the first match as
// the name filter; Esc restores the previous term.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("search cancelled")
		m.setSelection(m.sel.WithNameSearch(m.promptSaved), "search cancelled")
		return m, nil
	case "enter":
		matches := filter.SearchNames(m.sel.By, m.prompt.Value(), m.entities)
		m.closePrompt("search done")
		if len(matches) == 0 {
			m.relayout()
			cmd := m.setStatus("No match")
			return m, cmd
		}
		m.cursor.Row, m.rowOffset = 0, 0
		m.setSelection(m.sel.WithName(matches[0].Name), "search select")
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.setSelection(m.sel.WithNameSearch(m.prompt.Value()), "search")
	return m, cmd
}
