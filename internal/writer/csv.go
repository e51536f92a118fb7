// =============================================================================
// PDF to CSV Converter - CSV Writer
// =============================================================================
//
// Comma-separated output with minimal quoting, UTF-8 encoded with a leading
// byte-order marker. The BOM is what makes Excel open the file as UTF-8
// instead of the local ANSI code page, which matters for currency glyphs in
// statement descriptions.
//
// =============================================================================

package writer

import (
	"encoding/csv"
	"fmt"
	"os"
)

// utf8BOM is the UTF-8 byte-order marker written ahead of the header row.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes tables as BOM-prefixed CSV files.
type CSVWriter struct{}

// Ext returns ".csv".
func (CSVWriter) Ext() string { return ".csv" }

// Write creates the CSV file at path with a header row and the data rows.
func (CSVWriter) Write(path string, headers []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(file)
	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
