package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PromptState captures the name search input for rendering.
type PromptState struct {
	Label  string
	Value  string
	Cursor string
}

// PromptLines builds the input line followed by one line listing the
// matching names, wrapped to contentWidth.
func PromptLines(state PromptState, contentWidth int, matches []string) []string {
	prefix := state.Label + " "
	lines := wrapTextWithPrefix(state.Value+state.Cursor, prefix, strings.Repeat(" ", len(prefix)), contentWidth)
	if state.Value == "" {
		return lines
	}
	if len(matches) == 0 {
		return append(lines, "  no match")
	}
	return append(lines, wrapTextWithPrefix(strings.Join(matches, " · "), "  ", "  ", contentWidth)...)
}

// ClampPromptLines keeps at most maxLines, marking the cut with an ellipsis.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = addEllipsis(clamped[maxLines-1], width)
	return clamped
}

// WrapTextToWidths wraps s on spaces, using firstWidth for the first line
// and otherWidth afterwards. Words longer than a line are split.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 {
		return []string{""}
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	width := firstWidth
	lineStart, lastSpace, lineWidth := 0, -1, 0

	for i := 0; i < len(runes); i++ {
		if runes[i] == ' ' {
			lastSpace = i
		}
		rw := runewidth.RuneWidth(runes[i])
		if lineWidth+rw <= width {
			lineWidth += rw
			continue
		}
		if lastSpace >= lineStart {
			lines = append(lines, string(runes[lineStart:lastSpace]))
			i = lastSpace
			lineStart = lastSpace + 1
		} else {
			lines = append(lines, string(runes[lineStart:i]))
			lineStart = i
			i--
		}
		width = otherWidth
		lastSpace = -1
		lineWidth = 0
	}
	return append(lines, string(runes[lineStart:]))
}

// RenderPrompt renders the prompt box with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	frameW, _ := style.GetFrameSize()
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Width(max(width-frameW, 0)).Render(strings.Join(lines, "\n"))
}

func wrapTextWithPrefix(s, prefix, continuation string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	firstWidth := max(width-runewidth.StringWidth(prefix), 0)
	otherWidth := max(width-runewidth.StringWidth(continuation), 0)

	lines := WrapTextToWidths(s, firstWidth, otherWidth)
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = continuation + lines[i]
		}
	}
	return lines
}

func addEllipsis(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", max(width, 0))
	}
	return runewidth.Truncate(s, width-3, "") + "..."
}
