package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case commands.DataLoadedMsg:
		m.entities = msg.Entities
		m.shifts = msg.Shifts
		m.loading = false
		m.refresh()
		return m, nil

	case commands.ShiftSavedMsg:
		verb := "Updated"
		if msg.Created {
			verb = "Created"
		}
		status := m.setStatus(fmt.Sprintf("%s shift #%d", verb, msg.Shift.ID))
		m.loading = true
		return m, tea.Batch(status, commands.LoadData(m.repo))

	case commands.SummaryMsg:
		if m.modalType == ModalSummary {
			m.summary = msg.Summary
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		LogError("command", msg.Err)
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err))
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg)
		return m, cmd

	case commands.ClearStatusMsg:
		if m.now().Sub(m.statusTime) >= statusDuration {
			m.statusMsg = ""
		}
		return m, nil

	case commands.TickMsg:
		m.clock = msg.Time
		return m, commands.Tick()
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch {
	case m.mode == ModePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case m.modalType == ModalEditor:
		if in := m.editor.fields[m.editor.focus].input; in != nil {
			*in, cmd = in.Update(msg)
		}
	}
	return m, cmd
}
