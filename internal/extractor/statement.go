// =============================================================================
// PDF to CSV Converter - Statement Row Extractor
// =============================================================================
//
// Specialized extractor for bank statement pages. Each non-blank line of the
// page text is examined independently; a line becomes a transaction row only
// if it starts with a recognizable date token AND contains at least two
// monetary amount tokens after the date. Everything else (headers, footers,
// address blocks, noise) is silently skipped.
//
// LINE ANATOMY:
//   <date> <description ...> <amount> [markers] <balance>
//
//   - The LAST amount token on the line is the running balance.
//   - The second-to-last is the transaction amount.
//   - The description is everything between the date and the transaction
//     amount token's last occurrence. Matching the last occurrence avoids
//     truncating descriptions that contain numeric substrings of their own.
//
// DEBIT/CREDIT CLASSIFICATION:
//   A leading minus sign on the amount means debit. Failing that, a " DR"
//   marker anywhere in (or a "DR" suffix on) the description and trailing
//   text means debit. Everything else is credit. Statements that mark debits
//   with a trailing "-" or a bare "D" will be misclassified; that is a known
//   limit of the heuristic.
//
// =============================================================================

package extractor

import (
	"regexp"
	"strings"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
)

// Date patterns tried in priority order against the start of each line.
// The first match wins.
var datePatterns = []*regexp.Regexp{
	// Numeric: 31/12/2025
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
	// Abbreviated month: 1 Jan 2025
	regexp.MustCompile(`(?i)^\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`),
	// Full month with optional ordinal suffix: 1st January 2025
	regexp.MustCompile(`(?i)^\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`),
}

// amountPattern matches a monetary token: optional sign, optional currency
// glyph, 1-3 leading digits, comma-separated thousands groups, and exactly
// two decimal places.
var amountPattern = regexp.MustCompile(`[-+]?[€$£]?\d{1,3}(?:,\d{3})*\.\d{2}`)

// amountNoise strips the characters that decorate an amount token but are
// not part of the value: currency glyphs, spaces, and thousands separators.
var amountNoise = strings.NewReplacer("€", "", "$", "", "£", "", " ", "", ",", "")

// ExtractStatementRows scans one page for transaction lines and returns a
// 5-field row per recognized transaction:
//
//	[date, description, debit, credit, balance]
//
// Exactly one of debit/credit is populated; the other is empty.
func ExtractStatementRows(page pdf.Page) [][]string {
	text, err := page.Text()
	if err != nil {
		text = ""
	}

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if row, ok := ParseStatementLine(line); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// ParseStatementLine decomposes one line into a statement row. The second
// return value reports whether the line qualified as a transaction.
func ParseStatementLine(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	var date string
	for _, pattern := range datePatterns {
		if match := pattern.FindString(trimmed); match != "" {
			date = match
			break
		}
	}
	if date == "" {
		return nil, false
	}

	remainder := trimmed[len(date):]
	amounts := amountPattern.FindAllString(remainder, -1)
	if len(amounts) < 2 {
		// Not enough data to form a transaction.
		return nil, false
	}

	balance := amounts[len(amounts)-1]
	amount := amounts[len(amounts)-2]

	// Split on the amount token's last occurrence so descriptions that
	// contain numeric substrings stay intact.
	splitAt := strings.LastIndex(remainder, amount)
	description := strings.TrimSpace(remainder[:splitAt])
	tail := remainder[splitAt:]

	value := amountNoise.Replace(amount)

	var debit, credit string
	switch {
	case strings.HasPrefix(value, "-"):
		debit = strings.TrimPrefix(value, "-")
	case isDebitMarked(description, tail):
		debit = strings.TrimPrefix(value, "+")
	default:
		credit = strings.TrimPrefix(value, "+")
	}

	return []string{date, description, debit, credit, amountNoise.Replace(balance)}, true
}

// isDebitMarked reports whether the non-amount text around the transaction
// carries a DR marker.
func isDebitMarked(description, tail string) bool {
	combined := strings.ToUpper(description + " " + strings.TrimSpace(tail))
	return strings.Contains(combined, " DR") || strings.HasSuffix(combined, "DR")
}
