package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rota/internal/tui/commands"
	"github.com/javiermolinar/rota/internal/tui/view"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalEditor:
		return m.renderEditor()
	case ModalSummary:
		return m.renderSummaryModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

// renderSummaryModal renders the day summary popup.
func (m Model) renderSummaryModal() string {
	if m.summary == nil {
		return view.RenderModalFrame("Day summary", m.styles.ModalMetaStyle.Render("Loading..."), "", m.modalStyles())
	}
	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	body := view.RenderSummaryBody(m.summary, view.SummaryStyles{
		BodyStyle:    m.styles.ModalBodyStyle,
		MetaStyle:    m.styles.ModalMetaStyle,
		SectionStyle: m.styles.ModalSectionTitleStyle,
		AlertStyle:   m.styles.ModalAlertStyle,
		HeaderStyle:  m.styles.ModalLabelStyle,
		BorderStyle:  m.styles.ModalBorderStyle,
	}, modalWidth-frameW)
	return view.RenderModalFrame("Day summary", body, view.SummaryFooter(m.modalStyles()), m.modalStyles())
}

// openSummary shows the summary modal and asks the repository for a fresh
// summary of the selected day.
func (m *Model) openSummary() tea.Cmd {
	m.summary = nil
	m.modalType = ModalSummary
	m.setMode(ModeModal, "summary")
	return commands.DaySummary(m.repo, m.sel)
}

func (m *Model) closeModal(reason string) {
	m.modalType = ModalNone
	m.setMode(ModeNormal, reason)
	m.relayout()
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEditor:
		return m.handleEditorKey(msg)
	case ModalSummary:
		return m.handleSummaryKey(msg)
	default:
		m.closeModal("no modal")
		return m, nil
	}
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.closeModal("summary closed")
		return m, nil
	case "y":
		if m.summary == nil {
			return m, nil
		}
		if err := clipboardWrite(view.SummaryCopyText(m.summary)); err != nil {
			LogError("clipboard", err)
			cmd := m.setStatus("Clipboard unavailable")
			return m, cmd
		}
		cmd := m.setStatus("Summary copied")
		return m, cmd
	}
	return m, nil
}
