package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds the data of a bordered table.
type TableViewState struct {
	Width        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
}

// RenderTable renders a rounded lipgloss table. Missing styles fall back to
// an empty style.
func RenderTable(state TableViewState) string {
	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleAt(state.HeaderStyles, col)
			}
			if row < 0 || row >= len(state.Content.CellStyles) {
				return lipgloss.NewStyle()
			}
			return styleAt(state.Content.CellStyles[row], col)
		})
	if state.Width > 0 {
		t = t.Width(state.Width)
	}
	return t.Render()
}

func styleAt(styles []lipgloss.Style, i int) lipgloss.Style {
	if i < 0 || i >= len(styles) {
		return lipgloss.NewStyle()
	}
	return styles[i]
}
