package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
		ok   bool
	}{
		{
			name: "negative amount classifies as debit",
			line: "31/12/2025 Grocery Store -45.00 1,200.50",
			want: []string{"31/12/2025", "Grocery Store", "45.00", "", "1200.50"},
			ok:   true,
		},
		{
			name: "plain amount classifies as credit",
			line: "01 Jan 2025 Salary Payment 2,000.00 CR 3,200.50",
			want: []string{"01 Jan 2025", "Salary Payment", "", "2000.00", "3200.50"},
			ok:   true,
		},
		{
			name: "DR marker classifies as debit",
			line: "02/01/2025 Card Purchase 15.99 DR 3,184.51",
			want: []string{"02/01/2025", "Card Purchase", "15.99", "", "3184.51"},
			ok:   true,
		},
		{
			name: "full month name with ordinal suffix",
			line: "3rd January 2025 Standing Order 120.00 DR 3,064.51",
			want: []string{"3rd January 2025", "Standing Order", "120.00", "", "3064.51"},
			ok:   true,
		},
		{
			name: "currency glyphs stripped from amounts",
			line: "04/01/2025 Refund €25.00 €3,089.51",
			want: []string{"04/01/2025", "Refund", "", "25.00", "3089.51"},
			ok:   true,
		},
		{
			name: "leading plus sign dropped from credit",
			line: "05/01/2025 Transfer In +75.00 3,164.51",
			want: []string{"05/01/2025", "Transfer In", "", "75.00", "3164.51"},
			ok:   true,
		},
		{
			name: "numeric substring in description survives",
			line: "06/01/2025 Invoice 2024 settlement 300.00 3,464.51",
			want: []string{"06/01/2025", "Invoice 2024 settlement", "", "300.00", "3464.51"},
			ok:   true,
		},
		{
			name: "no leading date token",
			line: "Opening Balance 1,245.50",
			ok:   false,
		},
		{
			name: "only one amount token",
			line: "07/01/2025 Interest 0.52",
			ok:   false,
		},
		{
			name: "header line",
			line: "Date  Description  Debit  Credit  Balance",
			ok:   false,
		},
		{
			name: "blank line",
			line: "   ",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := ParseStatementLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, row)
			}
		})
	}
}

func TestExtractStatementRows(t *testing.T) {
	page := &fakePage{
		number: 1,
		text: "ACME BANK STATEMENT\n" +
			"Date Description Amount Balance\n" +
			"01/01/2025 Coffee Shop -4.50 995.50\n" +
			"02/01/2025 Salary Payment 2,000.00 2,995.50\n" +
			"Page 1 of 3\n",
	}

	rows := ExtractStatementRows(page)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"01/01/2025", "Coffee Shop", "4.50", "", "995.50"}, rows[0])
	assert.Equal(t, []string{"02/01/2025", "Salary Payment", "", "2000.00", "2995.50"}, rows[1])
}
