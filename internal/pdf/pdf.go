// =============================================================================
// PDF to CSV Converter - Extraction Engine Interfaces
// =============================================================================
//
// This module defines the boundary to the underlying PDF extraction engine.
// The converter only ever depends on these interfaces; the concrete engine
// lives behind them (see ledongthuc.go) and test doubles implement them
// directly.
//
// The engine is required to do exactly two things per page:
//   1. Detect zero or more tables, each an ordered sequence of cell rows.
//      This call is allowed to fail; the converter falls back to text.
//   2. Produce the page's plain text as a single string (possibly empty).
//
// Nothing else is asked of it. No OCR, no layout guarantees.
//
// =============================================================================

package pdf

// Table is one detected table: an ordered sequence of cell rows.
// Cells are raw strings; absent cells are represented as empty strings.
type Table struct {
	Rows [][]string
}

// Page exposes the two extraction capabilities required from one page of an
// opened document.
type Page interface {
	// Number is the 1-based page index within the document.
	Number() int

	// Tables returns the tables detected on the page. It may return an
	// error or an empty slice; callers treat both as "no tables".
	Tables() ([]Table, error)

	// Text returns the page's plain text. An empty string is a valid
	// result for pages with no extractable text.
	Text() (string, error)
}

// Document is an opened input file: an ordered sequence of pages.
type Document interface {
	Pages() []Page
	Close() error
}

// Opener opens an input file and hands back a Document.
// Opening is the only call that surfaces I/O errors to the batch level.
type Opener interface {
	Open(path string) (Document, error)
}
