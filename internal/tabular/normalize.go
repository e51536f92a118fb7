// =============================================================================
// PDF to CSV Converter - Row Normalizer
// =============================================================================
//
// This module guarantees the rectangular-row invariant: within any schema
// scope (one document's accumulated rows, or the combined batch rows), every
// row has exactly the same number of cells.
//
// NORMALIZATION RULES:
//   - An explicit target width wins; otherwise the widest row sets the width.
//   - Short rows are padded with trailing empty cells.
//   - Long rows are truncated from the right.
//   - An empty row set stays empty (width is undefined and irrelevant).
//
// Rows are replaced wholesale rather than mutated in place, so callers can
// safely hold references to the originals.
//
// =============================================================================

package tabular

// Normalize pads or truncates every row to a uniform width.
//
// If width is zero or negative, the maximum row length in the set is used.
// An empty input returns an empty (nil) result.
func Normalize(rows [][]string, width int) [][]string {
	if len(rows) == 0 {
		return nil
	}

	if width <= 0 {
		width = MaxWidth(rows)
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		fixed := make([]string, width)
		copy(fixed, row)
		normalized[i] = fixed
	}

	return normalized
}

// MaxWidth returns the length of the longest row in the set.
// An empty set has width 0.
func MaxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
