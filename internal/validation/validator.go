// =============================================================================
// PDF to CSV Converter - Output Validation
// =============================================================================
//
// Pre-write validation of an assembled table. By the time rows reach a
// writer they must be rectangular and match the chosen schema: every row
// exactly as wide as the header. Normalization is supposed to guarantee
// this; validation is the check that catches a pipeline bug before it
// produces a silently misaligned CSV.
//
// Validation failures are programming errors, not data errors, so the
// converter surfaces them as fatal rather than skipping rows.
//
// =============================================================================

package validation

import "fmt"

// Error describes a single violation found in an assembled table.
type Error struct {
	// Row is the 1-based data row index, or 0 for table-level problems.
	Row int

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

// ValidateTable checks an assembled table against its schema. It returns
// every violation found, or nil when the table is well formed.
func ValidateTable(headers []string, rows [][]string) []Error {
	var errs []Error

	if len(headers) == 0 {
		errs = append(errs, Error{Message: "schema has no columns"})
		return errs
	}

	seen := make(map[string]int, len(headers))
	for i, name := range headers {
		if name == "" {
			errs = append(errs, Error{Message: fmt.Sprintf("column %d has an empty name", i+1)})
		}
		if prev, dup := seen[name]; dup {
			errs = append(errs, Error{Message: fmt.Sprintf("duplicate column name %q (columns %d and %d)", name, prev+1, i+1)})
		}
		seen[name] = i
	}

	for i, row := range rows {
		if len(row) != len(headers) {
			errs = append(errs, Error{
				Row:     i + 1,
				Message: fmt.Sprintf("width %d does not match schema width %d", len(row), len(headers)),
			})
		}
	}

	return errs
}
