// Package export writes the filtered rota of a day to spreadsheet and PDF files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/summary"
)

// Format is an output file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Export errors.
var (
	ErrUnknownFormat = errors.New("format must be 'xlsx' or 'pdf'")
	ErrNoOutput      = errors.New("output path is required")
)

// ParseFormat parses a format name, accepting a leading dot.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", ErrUnknownFormat
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Row is one shift line of a report.
type Row struct {
	ID            int64
	Worker        string
	ServiceClient string
	Type          string
	RequiredRole  string
	Start         string
	End           string
	Hours         int
	Coverage      shift.Coverage
	Notes         string
}

// Cells returns the row as display strings, in Headers order.
func (r Row) Cells() []string {
	worker := r.Worker
	if worker == "" {
		worker = "Unassigned"
	}
	return []string{
		fmt.Sprintf("%d", r.ID),
		worker,
		r.ServiceClient,
		r.Type,
		r.RequiredRole,
		r.Start,
		r.End,
		fmt.Sprintf("%d", r.Hours),
		string(r.Coverage),
		r.Notes,
	}
}

// Headers returns the column titles of the shift table.
func Headers() []string {
	return []string{"ID", "Worker", "Service / Client", "Type", "Role", "Start", "End", "Hours", "Status", "Notes"}
}

// Report is the data written by every exporter.
type Report struct {
	Title     string
	Selection filter.Selection
	Entities  []shift.Entity // grid rows
	Shifts    []*shift.Shift // visible shifts
	Rows      []Row
	Summary   *summary.DaySummary
	Generated time.Time
}

// BuildReport applies the selection to the full lists and prepares a report.
func BuildReport(sel filter.Selection, entities []shift.Entity, shifts []*shift.Shift) *Report {
	sum := summary.SummarizeDay(sel, shifts)

	rows := make([]Row, 0, len(sum.Shifts))
	for _, s := range sum.Shifts {
		rows = append(rows, Row{
			ID:            s.ID,
			Worker:        s.WorkerName,
			ServiceClient: s.ServiceClient,
			Type:          s.Type,
			RequiredRole:  s.RequiredRole,
			Start:         s.Start,
			End:           s.End,
			Hours:         s.DurationHours(),
			Coverage:      s.Coverage,
			Notes:         s.Notes,
		})
	}

	return &Report{
		Title:     fmt.Sprintf("Rota for %s", dateutil.FormatDay(sel.Date)),
		Selection: sel,
		Entities:  filter.Entities(sel, entities),
		Shifts:    sum.Shifts,
		Rows:      rows,
		Summary:   sum,
		Generated: time.Now(),
	}
}

// Write renders the report to path in the given format.
func Write(path string, format Format, r *Report) error {
	if path == "" {
		return ErrNoOutput
	}
	switch format {
	case FormatXLSX:
		return WriteXLSX(path, r)
	case FormatPDF:
		return WritePDF(path, r)
	default:
		return ErrUnknownFormat
	}
}

func (r *Report) summaryLine() string {
	s := r.Summary
	return fmt.Sprintf("%d shifts | %d covered | %d uncovered | %d night | %d urgent | %.0f%% covered",
		s.Total, s.Covered, s.Uncovered, s.Night, len(s.Urgent), s.CoveragePercent())
}

func (r *Report) filterLine() string {
	sel := r.Selection
	return fmt.Sprintf("View: %s | Name: %s | Type: %s | Status: %s",
		sel.By, orAll(sel.Name), orAll(sel.Type), orAll(sel.Status))
}

func orAll(s string) string {
	if s == "" {
		return filter.All
	}
	return s
}
