// =============================================================================
// PDF to CSV Converter - Cell Tokenizer
// =============================================================================
//
// The tokenizer turns one line of extracted text into cell values. The
// load-bearing heuristic: a single space is assumed to separate words inside
// one field (multi-word descriptions), while a run of two or more whitespace
// characters, or any tab, is assumed to separate columns. This is what
// recovers tabular structure from justified or monospaced text layouts.
//
// =============================================================================

package extractor

import (
	"regexp"
	"strings"
)

// cellBoundary matches a column boundary: a run of two or more whitespace
// characters, or one or more tabs.
var cellBoundary = regexp.MustCompile(`\s{2,}|\t+`)

// SplitLineToCells splits a text line into cell values at column boundaries.
// Each cell is trimmed and empty cells are dropped. A line that yields no
// cells comes back as a single cell holding the trimmed line, so callers
// never see an empty row for non-empty input.
func SplitLineToCells(line string) []string {
	trimmed := strings.TrimSpace(line)

	var cells []string
	for _, part := range cellBoundary.Split(trimmed, -1) {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}

	if len(cells) == 0 {
		return []string{trimmed}
	}
	return cells
}
