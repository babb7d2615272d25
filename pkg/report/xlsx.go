package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet holding the report.
const SheetName = "Licenses"

// Column widths are cosmetic: wide for paths, URLs, and license text,
// narrower for name/license/version.
var fixedWidths = []float64{120, 60, 40, 24, 16}

const chunkWidth = 60

// WriteXLSX writes the table to path as a single-sheet workbook. The
// workbook handle is closed even when a row write fails, so a partially
// built file never leaks the handle.
func WriteXLSX(t *Table, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := setColumnWidths(f, len(t.Columns)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setColumnWidths(f *excelize.File, columns int) error {
	for i := 0; i < columns; i++ {
		width := float64(chunkWidth)
		if i < len(fixedWidths) {
			width = fixedWidths[i]
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return fmt.Errorf("set width %s: %w", name, err)
		}
	}
	return nil
}
