package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/summary"
)

// PrintOpts configures shift printing behavior.
type PrintOpts struct {
	By            shift.ViewBy // view the shifts are grouped under
	Verbose       bool         // Show full notes
	MaxNotesWidth int          // Maximum notes width (0 = auto)
}

// CalcMaxNotesWidth calculates the maximum notes width based on options.
func (o PrintOpts) CalcMaxNotesWidth(defaultWidth int) int {
	if o.MaxNotesWidth > 0 {
		return o.MaxNotesWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// "  ● #NN  HH:MM-HH:MM  NNh  " plus the counterpart name
	available := termWidth() - 60
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// coverageSymbol returns the status indicator for a shift.
func coverageSymbol(s *shift.Shift) string {
	if s.IsCovered() {
		return formatCovered("●")
	}
	return formatUncovered("○")
}

// counterpart names the other side of the shift for a row of the view.
func counterpart(s *shift.Shift, by shift.ViewBy) string {
	if by == shift.ViewWorker {
		return s.ServiceClient
	}
	if s.WorkerName == "" {
		return formatUncovered("Unassigned")
	}
	return s.WorkerName
}

// PrintShiftRow prints a single shift row with consistent formatting.
func PrintShiftRow(w io.Writer, s *shift.Shift, opts PrintOpts, maxNotesWidth int) {
	var flags []string
	if s.IsNight() {
		flags = append(flags, "night")
	}
	if s.IsUrgent() {
		flags = append(flags, "urgent")
	}
	var flagStr string
	if len(flags) > 0 {
		flagStr = "  " + formatAlert("["+strings.Join(flags, ",")+"]")
	}

	notes := truncate(s.Notes, maxNotesWidth)
	fmt.Fprintf(w, "  %s #%-3d %s-%s  %3s  %-24s  %-22s  %s%s\n",
		coverageSymbol(s),
		s.ID,
		s.Start,
		s.End,
		FormatHours(s.DurationHours()),
		truncate(s.Type, 24),
		counterpart(s, opts.By),
		formatMuted(notes),
		flagStr,
	)
}

// truncate cuts s to width display cells, marking the cut with "...".
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// FormatHours formats a whole number of hours.
func FormatHours(h int) string {
	return fmt.Sprintf("%dh", h)
}

// CoverageBar creates an ASCII bar showing the covered share of shifts.
func CoverageBar(covered, total, width int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", width) + "] (no shifts)"
	}

	pct := (covered * 100) / total
	filled := (covered * width) / total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf("(%d%% covered)", pct)
	if covered < total {
		return fmt.Sprintf("[%s] %s", formatCovered(bar), formatUncovered(label))
	}
	return fmt.Sprintf("[%s] %s", formatCovered(bar), formatCovered(label))
}

// PrintSummary prints the coverage figures of a day.
func PrintSummary(w io.Writer, sum *summary.DaySummary) {
	fmt.Fprintf(w, "%s | %s | Total: %d shifts\n",
		formatCovered(fmt.Sprintf("Covered: %d (%s)", sum.Covered, FormatHours(sum.CoveredHours))),
		formatUncovered(fmt.Sprintf("Uncovered: %d (%s)", sum.Uncovered, FormatHours(sum.UncoveredHours))),
		sum.Total)

	if sum.Night > 0 || len(sum.Urgent) > 0 {
		fmt.Fprintf(w, "%s\n", formatAlert(fmt.Sprintf("Night: %d | Urgent: %d", sum.Night, len(sum.Urgent))))
	}

	if len(sum.ByType) > 0 {
		parts := make([]string, 0, len(sum.ByType))
		for _, tc := range sum.ByType {
			parts = append(parts, fmt.Sprintf("%s %d", tc.Type, tc.Count))
		}
		fmt.Fprintf(w, "%s\n", formatMuted("By type: "+strings.Join(parts, ", ")))
	}

	if sum.ActiveFilters > 0 {
		fmt.Fprintf(w, "%s\n", formatMuted(fmt.Sprintf("%d filter(s) active", sum.ActiveFilters)))
	}

	fmt.Fprintf(w, "Coverage: %s\n", CoverageBar(sum.Covered, sum.Total, 20))
}
