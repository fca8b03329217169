package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg maps pointer events to grid cells. A press on a shift
// opens it; a press on a free cell starts a drag that ends on release.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg)

	if m.mode == ModeModal || m.mode == ModePrompt {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollRows(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollRows(1)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.mode != ModeNormal {
			return m, nil
		}
		pos, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = pos
		if s := m.shiftAt(pos); s != nil {
			m.editShift(s)
			return m, nil
		}
		cmd := m.beginDrag(pos, m.gridOffsetAt(msg.X), true)
		m.relayout()
		return m, cmd

	case tea.MouseActionMotion:
		if m.mode != ModeDrag || !m.mouseDrag {
			return m, nil
		}
		if _, err := m.drag.Move(m.gridOffsetAt(msg.X)); err == nil {
			LogDrag("move", &m.drag)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.mode != ModeDrag || !m.mouseDrag {
			return m, nil
		}
		if _, err := m.drag.Move(m.gridOffsetAt(msg.X)); err != nil {
			LogError("drag", err)
		}
		m.endDrag()
		return m, nil
	}

	return m, nil
}
