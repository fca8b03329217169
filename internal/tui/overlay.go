package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rota/internal/tui/view"
)

// modalOverlay centres a dialog over the grid.
type modalOverlay struct {
	bg lipgloss.Color
}

func newModalOverlay(bg lipgloss.Color) modalOverlay {
	return modalOverlay{bg: bg}
}

// Render draws content on top of base.
func (o modalOverlay) Render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 || content == "" {
		return base
	}
	return view.RenderModalOverlay(base, content, width, height, o.bg)
}
