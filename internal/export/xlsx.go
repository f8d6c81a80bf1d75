package export

import (
	"fmt"
	"io"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteXLSX renders the table as a single-sheet workbook and writes it to w.
// Row 1 is the header; data rows follow in table order.
func WriteXLSX(w io.Writer, table *models.ReportTable) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
	}

	for rowIdx, row := range table.Rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("resolving data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing data cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing report workbook: %w", err)
	}
	return nil
}
