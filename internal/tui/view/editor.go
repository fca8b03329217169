package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EditorField is one labelled row of the assignment editor.
type EditorField struct {
	Label   string
	Value   string
	Focused bool
	Locked  bool
	Choice  bool // value cycles through options with left/right
}

// EditorModel contains what the editor body shows.
type EditorModel struct {
	Meta   []string
	Fields []EditorField
	Hint   string
	Error  string
}

// EditorStyles groups styles for the editor body.
type EditorStyles struct {
	TagStyle    lipgloss.Style
	LabelStyle  lipgloss.Style
	ValueStyle  lipgloss.Style
	FocusStyle  lipgloss.Style
	LockedStyle lipgloss.Style
	HintStyle   lipgloss.Style
	ErrorStyle  lipgloss.Style
	BodyStyle   lipgloss.Style
	LabelWidth  int
	ValueWidth  int
}

// RenderEditorBody renders the editor fields, one per line.
func RenderEditorBody(m EditorModel, styles EditorStyles) string {
	var b strings.Builder
	sep := styles.BodyStyle.Render(" ")

	if len(m.Meta) > 0 {
		tags := make([]string, 0, len(m.Meta))
		for _, t := range m.Meta {
			tags = append(tags, styles.TagStyle.Render(t))
		}
		b.WriteString(strings.Join(tags, sep) + "\n\n")
	}

	labelStyle := styles.LabelStyle.Width(styles.LabelWidth)
	for _, f := range m.Fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		if f.Choice && f.Focused && !f.Locked {
			value = "‹ " + value + " ›"
		}

		style := styles.ValueStyle
		switch {
		case f.Locked:
			style = styles.LockedStyle
		case f.Focused:
			style = styles.FocusStyle
		}
		if styles.ValueWidth > 0 {
			style = style.Width(styles.ValueWidth).MaxHeight(1)
		}

		label := f.Label
		if f.Locked {
			label += " ⊘"
		}
		b.WriteString(labelStyle.Render(label) + sep + style.Render(value) + "\n")
	}

	if m.Error != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.Error))
	} else if m.Hint != "" {
		b.WriteString("\n" + styles.HintStyle.Render(m.Hint))
	}

	return strings.TrimRight(b.String(), "\n")
}
