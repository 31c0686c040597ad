package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const columnWidth = 22

// Sheet is one worksheet of a workbook.
type Sheet struct {
	Name    string
	Columns []string
	Rows    []any
}

// WriteXLSX writes one worksheet per sheet. Numeric cells are stored as
// numbers.
func WriteXLSX(path string, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		table, err := Table(sheet.Columns, sheet.Rows)
		if err != nil {
			return fmt.Errorf("building sheet %q: %w", sheet.Name, err)
		}

		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
		}

		for r, line := range table {
			cells := make([]interface{}, len(line))
			for c, v := range line {
				cells[c] = cellValue(v, r == 0)
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &cells); err != nil {
				return fmt.Errorf("writing sheet %q: %w", sheet.Name, err)
			}
		}

		if len(sheet.Columns) > 0 {
			last, err := excelize.ColumnNumberToName(len(sheet.Columns))
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet.Name, "A", last, columnWidth); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func cellValue(v string, header bool) interface{} {
	if header {
		return v
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}
