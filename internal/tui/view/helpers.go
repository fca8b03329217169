package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a w x h box filled with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads every line to width and the block to height.
// Lines wider than width are left alone; extra lines are dropped.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	pad := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + pad.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay centres the dialog over base, keeping base visible
// around it.
func RenderModalOverlay(base, dialog string, width, height int, dialogBg lipgloss.Color) string {
	dialogLines := strings.Split(dialog, "\n")
	dialogW := 0
	for _, line := range dialogLines {
		dialogW = max(dialogW, lipgloss.Width(line))
	}
	if dialogW == 0 {
		return base
	}
	dialogW = min(dialogW, width)
	dialogH := len(dialogLines)

	top := max((height-dialogH)/2, 0)
	left := max((width-dialogW)/2, 0)

	pad := lipgloss.NewStyle().Background(dialogBg)
	for i, line := range dialogLines {
		w := lipgloss.Width(line)
		switch {
		case w > dialogW:
			line = ansi.Cut(line, 0, dialogW)
		case w < dialogW:
			line += pad.Render(strings.Repeat(" ", dialogW-w))
		}
		dialogLines[i] = ApplyModalBackgroundResets(line, dialogBg) + ansi.ResetStyle
	}

	baseLines := strings.Split(PadLinesWithBackground(base, width, height, lipgloss.Color("")), "\n")
	for row := top; row < top+dialogH && row < len(baseLines); row++ {
		line := baseLines[row]
		baseLines[row] = ansi.Cut(line, 0, left) + dialogLines[row-top] + ansi.Cut(line, left+dialogW, width)
	}
	return strings.Join(baseLines, "\n")
}

// ApplyModalBackgroundResets restores the dialog background after every
// reset sequence inside line.
func ApplyModalBackgroundResets(line string, bg lipgloss.Color) string {
	seq := ModalBackgroundSeq(bg)
	if seq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}

// ModalBackgroundSeq returns the escape sequence selecting bg.
func ModalBackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
