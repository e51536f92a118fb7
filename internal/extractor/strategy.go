// =============================================================================
// PDF to CSV Converter - Extraction Strategies
// =============================================================================
//
// Per-page extraction is modeled as a small ranked chain of strategies, each
// exposing a uniform (page) -> rows capability with its own confidence gate.
// The selector tries strategies in priority order and accepts the first one
// whose gate passes. With the default chain this implements auto-detection:
// try the statement extractor, keep its rows only when it found at least
// MinStatementRows transactions, otherwise fall through to the generic
// extractor (which always accepts).
//
// =============================================================================

package extractor

import "github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"

// Kind identifies which extraction path produced a page's rows.
type Kind int

const (
	// KindGeneric marks rows produced by the generic row extractor.
	KindGeneric Kind = iota

	// KindStatement marks rows produced by the statement extractor.
	KindStatement
)

// MinStatementRows is the auto-detection confidence threshold: a page must
// yield at least this many statement rows for the statement strategy to
// claim it. Guards against false positives on pages that happen to contain
// one or two date-like and amount-like tokens.
const MinStatementRows = 3

// Strategy extracts rows from a page and reports whether it is confident
// enough to claim the page.
type Strategy interface {
	// Kind identifies the extraction path.
	Kind() Kind

	// Extract returns the page's rows and whether the strategy accepts
	// the page. Rows from a non-accepting strategy are discarded.
	Extract(page pdf.Page) (rows [][]string, ok bool)
}

// StatementStrategy extracts statement rows and accepts a page only when it
// finds at least MinRows transactions.
type StatementStrategy struct {
	// MinRows is the acceptance threshold; zero means MinStatementRows.
	MinRows int
}

func (s StatementStrategy) Kind() Kind { return KindStatement }

func (s StatementStrategy) Extract(page pdf.Page) ([][]string, bool) {
	min := s.MinRows
	if min <= 0 {
		min = MinStatementRows
	}
	rows := ExtractStatementRows(page)
	return rows, len(rows) >= min
}

// GenericStrategy extracts rows with the generic extractor and always
// accepts. It terminates every chain.
type GenericStrategy struct{}

func (GenericStrategy) Kind() Kind { return KindGeneric }

func (GenericStrategy) Extract(page pdf.Page) ([][]string, bool) {
	return ExtractRows(page), true
}

// Chain is an ordered list of strategies, highest priority first.
type Chain []Strategy

// AutoChain is the auto-detection chain: statement first, generic fallback.
func AutoChain() Chain {
	return Chain{StatementStrategy{}, GenericStrategy{}}
}

// Extract runs the chain against a page and returns the first accepted
// result together with the kind of strategy that produced it. An empty or
// fully non-accepting chain (not a configuration this package builds)
// yields no rows and KindGeneric.
func (c Chain) Extract(page pdf.Page) ([][]string, Kind) {
	for _, strategy := range c {
		if rows, ok := strategy.Extract(page); ok {
			return rows, strategy.Kind()
		}
	}
	return nil, KindGeneric
}
