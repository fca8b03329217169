package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render dialog frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// RenderModalFrame renders a dialog with a title, body and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder
	b.WriteString(styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title)))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}
	return styles.ModalStyle.Render(b.String())
}

// RenderModalButtons renders a row of buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}

// EditorFooter renders the buttons of the assignment editor.
func EditorFooter(creating bool, styles ModalStyles) string {
	if creating {
		return RenderModalButtons(styles, "[Enter] Assign", "[Esc] Cancel")
	}
	return RenderModalButtons(styles, "[Enter] Save", "[Esc] Cancel")
}

// SummaryFooter renders the buttons of the day summary.
func SummaryFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[y] Copy", "[Esc] Close")
}
