package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	StatsText   string
	StatusText  string
	HelpText    string
	PromptLines []string
	ShowPrompt  bool
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooterModel renders stats, prompt, status and help lines, bottom
// aligned in a FooterH tall box.
func RenderFooterModel(m FooterModel) string {
	if m.FooterH <= 0 {
		return ""
	}

	lines := []string{footerLine(m.InnerW, m.StatsStyle, m.StatsText)}
	if m.ShowPrompt {
		lines = append(lines, RenderPrompt(m.InnerW, m.PromptStyle, m.PromptLines))
	}
	lines = append(lines,
		footerLine(m.InnerW, m.StatusStyle, m.StatusText),
		footerLine(m.InnerW, m.HelpStyle, m.HelpText),
	)

	return PlaceBox(m.InnerW, m.FooterH, lipgloss.Bottom, strings.Join(lines, "\n"), m.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Width(contentWidth).Render(content)
}
