// Package export renders report tables into downloadable documents.
package export

import (
	"fmt"
	"io"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the table as a landscape A4 PDF grid and writes it to w.
func WritePDF(w io.Writer, table *models.ReportTable) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, table.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, "Generated on "+table.GeneratedAt.Format("2 Jan 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(table.Columns))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range table.Columns {
		pdf.CellFormat(colWidth, 9, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Rows) == 0 {
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(usable, 8, "No records", "1", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing report pdf: %w", err)
	}
	return nil
}
