package export

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// pdfGrid sums to 12, the maroto column count.
var pdfGrid = []uint{1, 2, 2, 1, 1, 1, 1, 1, 1, 1}

// WritePDF writes the report as a landscape A4 table.
func WritePDF(path string, r *Report) error {
	m := pdf.NewMaroto(consts.Landscape, consts.A4)
	m.SetPageMargins(15, 10, 15)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(r.Title, props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(7, func() {
			m.Col(12, func() {
				m.Text(r.filterLine(), props.Text{
					Top:   1,
					Style: consts.Normal,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(r.summaryLine(), props.Text{
				Top:   3,
				Style: consts.Bold,
				Size:  11,
			})
		})
	})

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := row.Cells()
		cells[len(cells)-1] = shortNotes(row.Notes)
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("No shifts match the current filters.", props.Text{
					Top:   3,
					Style: consts.Italic,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	} else {
		m.TableList(Headers(), rows, props.TableList{
			HeaderProp: props.TableListContent{
				Size:      9,
				GridSizes: pdfGrid,
			},
			ContentProp: props.TableListContent{
				Size:      8,
				GridSizes: pdfGrid,
			},
			Align:                consts.Left,
			AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
			HeaderContentSpace:   1,
			Line:                 false,
		})
	}

	if n := len(r.Summary.Urgent); n > 0 {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%d urgent shift(s) need cover", n), props.Text{
					Top:   5,
					Style: consts.Bold,
					Align: consts.Right,
					Size:  11,
					Color: color.Color{Red: 200, Green: 0, Blue: 0},
				})
			})
		})
	}

	if err := m.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func shortNotes(notes string) string {
	const limit = 28
	r := []rune(notes)
	if len(r) <= limit {
		return notes
	}
	return string(r[:limit-3]) + "..."
}
