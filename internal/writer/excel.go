// =============================================================================
// PDF to CSV Converter - XLSX Writer
// =============================================================================
//
// Spreadsheet output via excelize. One sheet per file, header row first,
// plain string cells throughout: values stay exactly as extracted, no
// numeric coercion (leading zeros and thousands formatting survive).
//
// =============================================================================

package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet every output workbook contains.
const sheetName = "Sheet1"

// ExcelWriter writes tables as single-sheet XLSX workbooks.
type ExcelWriter struct{}

// Ext returns ".xlsx".
func (ExcelWriter) Ext() string { return ".xlsx" }

// Write creates the workbook at path with a header row and the data rows.
func (ExcelWriter) Write(path string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheetRow(f, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeSheetRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheetRow writes one row of string cells at the given 1-based row
// number.
func writeSheetRow(f *excelize.File, rowNum int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	ref, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell reference: %w", err)
	}
	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	if err := f.SetSheetRow(sheetName, ref, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
