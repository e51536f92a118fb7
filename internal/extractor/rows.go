// =============================================================================
// PDF to CSV Converter - Generic Row Extractor
// =============================================================================
//
// Per-page row extraction. The extraction engine's table detection is tried
// first; if it fails or finds nothing usable, the page's plain text is split
// into lines and the cell tokenizer recovers rows from each line.
//
// Errors from the table-detection path are absorbed, never propagated: the
// text fallback is the failure-recovery mechanism. Only rows with at least
// one non-empty cell survive either path.
//
// =============================================================================

package extractor

import (
	"strings"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
)

// ExtractRows produces the rows of one page.
//
// Detected table rows have every cell trimmed (absent cells are already
// empty strings at the engine boundary) and fully-empty rows dropped. When
// the engine errors or yields zero usable rows, the page's plain text is
// tokenized line by line instead.
func ExtractRows(page pdf.Page) [][]string {
	var rows [][]string

	tables, err := page.Tables()
	if err == nil {
		for _, table := range tables {
			for _, raw := range table.Rows {
				cleaned := make([]string, len(raw))
				hasValue := false
				for i, cell := range raw {
					cleaned[i] = strings.TrimSpace(cell)
					if cleaned[i] != "" {
						hasValue = true
					}
				}
				if hasValue {
					rows = append(rows, cleaned)
				}
			}
		}
	}

	if len(rows) > 0 {
		return rows
	}

	// Fallback: recover rows from the page text with the whitespace-run
	// heuristic. A missing or empty text result is an empty page.
	text, err := page.Text()
	if err != nil {
		text = ""
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitLineToCells(line)
		if hasNonEmptyCell(cells) {
			rows = append(rows, cells)
		}
	}

	return rows
}

func hasNonEmptyCell(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return true
		}
	}
	return false
}
