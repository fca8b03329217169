package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

const (
	shiftsSheet = "Shifts"
	gridSheet   = "Grid"

	coveredFill   = "#C6EFCE"
	uncoveredFill = "#FFC7CE"
)

// WriteXLSX writes a workbook with the shift list and an hourly grid.
func WriteXLSX(path string, r *Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(shiftsSheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if _, err := f.NewSheet(gridSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}
	if err := writeShiftSheet(f, r, styles); err != nil {
		return err
	}
	if err := writeGridSheet(f, r, styles); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

type xlsxStyles struct {
	title     int
	header    int
	covered   int
	uncovered int
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return s, fmt.Errorf("creating title style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return s, fmt.Errorf("creating header style: %w", err)
	}

	s.covered, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{coveredFill}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("creating covered style: %w", err)
	}

	s.uncovered, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{uncoveredFill}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("creating uncovered style: %w", err)
	}

	return s, nil
}

func writeShiftSheet(f *excelize.File, r *Report, styles xlsxStyles) error {
	headers := Headers()
	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	if err := f.SetCellValue(shiftsSheet, "A1", r.Title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	_ = f.SetCellStyle(shiftsSheet, "A1", "A1", styles.title)
	_ = f.MergeCell(shiftsSheet, "A1", lastCol+"1")
	_ = f.SetCellValue(shiftsSheet, "A2", r.filterLine())
	_ = f.SetCellValue(shiftsSheet, "A3", r.summaryLine())

	const headerRow = 5
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(shiftsSheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	_ = f.SetCellStyle(shiftsSheet, first, last, styles.header)

	for i, row := range r.Rows {
		rowNum := headerRow + 1 + i
		for j, v := range row.Cells() {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			var value any = v
			switch j {
			case 0:
				value = row.ID
			case 7:
				value = row.Hours
			}
			if err := f.SetCellValue(shiftsSheet, cell, value); err != nil {
				return fmt.Errorf("writing shift %d: %w", row.ID, err)
			}
		}
		statusCell, _ := excelize.CoordinatesToCellName(9, rowNum)
		style := styles.covered
		if row.Coverage != shift.CoverageCovered {
			style = styles.uncovered
		}
		_ = f.SetCellStyle(shiftsSheet, statusCell, statusCell, style)
	}

	widths := []float64{6, 22, 22, 18, 20, 8, 8, 7, 11, 32}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(shiftsSheet, col, col, w)
	}
	return nil
}

// writeGridSheet lays the visible shifts out as entity rows against hour
// columns. A cell holds the service/client or worker of each shift occupying
// it, coloured by coverage.
func writeGridSheet(f *excelize.File, r *Report, styles xlsxStyles) error {
	idx := grid.NewIndex(r.Shifts, r.Entities, r.Selection.By)

	_ = f.SetCellValue(gridSheet, "A1", string(r.Selection.By))
	for slot, label := range grid.TimeSlots() {
		cell, _ := excelize.CoordinatesToCellName(slot+2, 1)
		if err := f.SetCellValue(gridSheet, cell, label); err != nil {
			return fmt.Errorf("writing slot header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(grid.SlotsPerDay+1, 1)
	_ = f.SetCellStyle(gridSheet, "A1", lastHeader, styles.header)

	for i, e := range r.Entities {
		rowNum := i + 2
		nameCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetCellValue(gridSheet, nameCell, e.Name); err != nil {
			return fmt.Errorf("writing entity %q: %w", e.Name, err)
		}

		for slot := 0; slot < grid.SlotsPerDay; slot++ {
			shifts := idx.ShiftsAt(e.ID, slot)
			if len(shifts) == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(slot+2, rowNum)
			_ = f.SetCellValue(gridSheet, cell, cellLabel(shifts[0].WorkerName, shifts[0].ServiceClient, r, len(shifts)))

			style := styles.covered
			for _, s := range shifts {
				if !s.IsCovered() {
					style = styles.uncovered
					break
				}
			}
			_ = f.SetCellStyle(gridSheet, cell, cell, style)
		}
	}

	_ = f.SetColWidth(gridSheet, "A", "A", 28)
	firstSlot, _ := excelize.ColumnNumberToName(2)
	lastSlot, _ := excelize.ColumnNumberToName(grid.SlotsPerDay + 1)
	_ = f.SetColWidth(gridSheet, firstSlot, lastSlot, 10)
	return nil
}

// cellLabel names the other side of the shift: the service/client under the
// worker view, the worker otherwise.
func cellLabel(worker, serviceClient string, r *Report, n int) string {
	label := worker
	if r.Selection.By == shift.ViewWorker {
		label = serviceClient
	}
	if label == "" {
		label = "Unassigned"
	}
	if n > 1 {
		label = fmt.Sprintf("%s +%d", label, n-1)
	}
	return label
}
