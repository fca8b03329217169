package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rota/internal/summary"
)

// SummaryLineStyle indicates how a summary line should be styled.
type SummaryLineStyle int

const (
	SummaryLineBody SummaryLineStyle = iota
	SummaryLineMeta
	SummaryLineSection
	SummaryLineAlert
)

// SummaryLine is a display-ready line of the day summary.
type SummaryLine struct {
	Text  string
	Style SummaryLineStyle
}

// SummaryStyles groups styles for the day summary body.
type SummaryStyles struct {
	BodyStyle    lipgloss.Style
	MetaStyle    lipgloss.Style
	SectionStyle lipgloss.Style
	AlertStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	BorderStyle  lipgloss.Style
}

// BuildSummaryLines turns a day summary into text lines. The per-type
// breakdown is rendered separately as a table.
func BuildSummaryLines(sum *summary.DaySummary) []SummaryLine {
	lines := []SummaryLine{
		{Text: sum.Date.Format("Monday 02 January 2006"), Style: SummaryLineMeta},
		{},
	}
	if sum.ActiveFilters > 0 {
		lines = append(lines,
			SummaryLine{Text: fmt.Sprintf("%d active filters", sum.ActiveFilters), Style: SummaryLineMeta},
			SummaryLine{})
	}

	if sum.Total == 0 {
		return append(lines, SummaryLine{Text: "No shifts on this day."})
	}

	lines = append(lines,
		SummaryLine{Text: fmt.Sprintf("Total: %d shifts (%.0f%% covered)", sum.Total, sum.CoveragePercent())},
		SummaryLine{Text: fmt.Sprintf("Covered: %d (%s)", sum.Covered, FormatHours(sum.CoveredHours))},
		SummaryLine{Text: fmt.Sprintf("Uncovered: %d (%s)", sum.Uncovered, FormatHours(sum.UncoveredHours))},
		SummaryLine{Text: fmt.Sprintf("Night: %d | Urgent: %d", sum.Night, len(sum.Urgent))},
	)

	if len(sum.Urgent) > 0 {
		lines = append(lines, SummaryLine{}, SummaryLine{Text: "URGENT", Style: SummaryLineSection})
		for _, s := range sum.Urgent {
			lines = append(lines, SummaryLine{
				Text:  fmt.Sprintf("#%d %s-%s %s", s.ID, s.Start, s.End, s.ServiceClient),
				Style: SummaryLineAlert,
			})
		}
	}
	return lines
}

// RenderSummaryBody renders the summary lines and the per-type table,
// wrapping lines to contentWidth.
func RenderSummaryBody(sum *summary.DaySummary, styles SummaryStyles, contentWidth int) string {
	var rendered []string
	for _, line := range BuildSummaryLines(sum) {
		style := styles.BodyStyle
		switch line.Style {
		case SummaryLineMeta:
			style = styles.MetaStyle
		case SummaryLineSection:
			style = styles.SectionStyle
		case SummaryLineAlert:
			style = styles.AlertStyle
		}
		for _, part := range WrapTextToWidths(line.Text, contentWidth, contentWidth) {
			rendered = append(rendered, style.Render(part))
		}
	}

	if len(sum.ByType) > 0 {
		rendered = append(rendered, "", styles.SectionStyle.Render("BY TYPE"), typeTable(sum, styles))
	}
	return strings.Join(rendered, "\n")
}

func typeTable(sum *summary.DaySummary, styles SummaryStyles) string {
	content := TableContent{}
	for _, tc := range sum.ByType {
		label := tc.Type
		if label == "" {
			label = "(none)"
		}
		content.Rows = append(content.Rows, []string{label, strconv.Itoa(tc.Count)})
		content.CellStyles = append(content.CellStyles, []lipgloss.Style{
			styles.BodyStyle.Padding(0, 1),
			styles.BodyStyle.Padding(0, 1).Align(lipgloss.Right),
		})
	}
	header := styles.HeaderStyle.Padding(0, 1)
	return RenderTable(TableViewState{
		Headers:      []string{"Type", "Shifts"},
		HeaderStyles: []lipgloss.Style{header, header},
		Content:      content,
		BorderStyle:  styles.BorderStyle,
	})
}

// SummaryCopyText is the plain text put on the clipboard.
func SummaryCopyText(sum *summary.DaySummary) string {
	var b strings.Builder
	for _, line := range BuildSummaryLines(sum) {
		b.WriteString(line.Text + "\n")
	}
	for _, tc := range sum.ByType {
		fmt.Fprintf(&b, "%s: %d\n", tc.Type, tc.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}
