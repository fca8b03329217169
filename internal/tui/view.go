package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rota/internal/tui/view"
)

// View renders the grid with the footer below it and any modal on top.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		BaseContent:  m.renderAppContent(),
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      newModalOverlay(m.styles.ModalBgColor),
		Placeholder:  "Loading rota...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderGrid(), view.RenderFooterModel(m.footerModel()))
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.Palette().Bg)
}

func (m Model) footerModel() view.FooterModel {
	var promptLines []string
	if m.mode == ModePrompt {
		promptLines = m.promptLines(m.layout.PromptContentWidth)
	}
	return view.FooterModel{
		InnerW:      m.layout.InnerW,
		FooterH:     m.layout.FooterH,
		StatsText:   m.renderStats(),
		StatusText:  m.statusMsg,
		HelpText:    m.helpText(),
		PromptLines: promptLines,
		ShowPrompt:  m.mode == ModePrompt,
		StatsStyle:  m.styles.StatsStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		PromptStyle: m.styles.PromptStyle,
		Bg:          m.styles.Palette().Bg,
	}
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeDrag:
		if m.mouseDrag {
			return " drag to size · release to assign"
		}
		return " ←/→ size · enter assign · esc cancel"
	case ModePrompt:
		return " type to search · enter select · esc cancel"
	case ModeModal:
		return ""
	default:
		return " hjkl move · enter edit · space drag · b/t/s/n filter · z zoom · [/] day · / find · ? summary · q quit"
	}
}
