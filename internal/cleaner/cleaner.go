// =============================================================================
// PDF to CSV Converter - CSV Cleanup
// =============================================================================
//
// Post-processing for already-converted statement CSVs: currency glyphs that
// survived extraction into the Debit and Credit columns are stripped so the
// values import cleanly into spreadsheet and accounting tools. Cells holding
// the literal text "nan" (an artifact of older exports) are blanked for the
// same reason.
//
// Only the two named monetary columns are touched; every other column passes
// through byte-for-byte.
//
// =============================================================================

package cleaner

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Monetary columns targeted by the cleanup.
var targetColumns = []string{"Debit", "Credit"}

// currencyGlyphs strips the glyphs that leak out of statement extraction.
var currencyGlyphs = strings.NewReplacer("€", "", "$", "", "£", "")

// Stats reports what a cleanup run changed.
type Stats struct {
	// TotalRows is the number of data rows in the file.
	TotalRows int

	// CleanedCells counts cells that were modified, per column name.
	CleanedCells map[string]int
}

// Clean reads the CSV at inputPath, strips currency glyphs from the Debit
// and Credit columns, and writes the result to outputPath. Passing the same
// path for both rewrites the file in place.
func Clean(inputPath, outputPath string) (Stats, error) {
	stats := Stats{CleanedCells: make(map[string]int)}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return stats, fmt.Errorf("failed to read input file: %w", err)
	}

	// Tolerate the UTF-8 BOM our own writer emits.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return stats, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return stats, fmt.Errorf("file has no header row")
	}

	header := records[0]
	columns := make(map[string]int, len(targetColumns))
	for _, name := range targetColumns {
		idx := indexOf(header, name)
		if idx < 0 {
			return stats, fmt.Errorf("column %q not found in header", name)
		}
		columns[name] = idx
	}

	stats.TotalRows = len(records) - 1
	for _, row := range records[1:] {
		for name, idx := range columns {
			if idx >= len(row) {
				continue
			}
			cleaned := cleanCell(row[idx])
			if cleaned != row[idx] {
				row[idx] = cleaned
				stats.CleanedCells[name]++
			}
		}
	}

	if err := writeCSV(outputPath, records); err != nil {
		return stats, err
	}
	return stats, nil
}

// cleanCell strips currency glyphs and surrounding whitespace from one
// monetary cell. Literal "nan" cells from legacy exports become empty.
func cleanCell(value string) string {
	cleaned := strings.TrimSpace(currencyGlyphs.Replace(value))
	if cleaned == "nan" {
		return ""
	}
	return cleaned
}

// writeCSV rewrites the full record set with a UTF-8 BOM prefix.
func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	w.Flush()
	return w.Error()
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
