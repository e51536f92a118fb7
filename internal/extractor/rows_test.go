package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
)

// fakePage is the shared test double for the extraction engine boundary.
type fakePage struct {
	number    int
	tables    []pdf.Table
	tablesErr error
	text      string
	textErr   error
}

func (p *fakePage) Number() int                 { return p.number }
func (p *fakePage) Tables() ([]pdf.Table, error) { return p.tables, p.tablesErr }
func (p *fakePage) Text() (string, error)        { return p.text, p.textErr }

func TestExtractRows_TableDetection(t *testing.T) {
	page := &fakePage{
		number: 1,
		tables: []pdf.Table{
			{Rows: [][]string{
				{" Name ", "Amount "},
				{"Widget", "12.00"},
				{"  ", ""}, // fully empty after trimming
			}},
			{Rows: [][]string{
				{"Gadget", "7.50"},
			}},
		},
		text: "this text must not be used",
	}

	rows := ExtractRows(page)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Amount"}, rows[0])
	assert.Equal(t, []string{"Widget", "12.00"}, rows[1])
	assert.Equal(t, []string{"Gadget", "7.50"}, rows[2])
}

func TestExtractRows_FallsBackOnTableError(t *testing.T) {
	page := &fakePage{
		number:    1,
		tablesErr: errors.New("detection failed"),
		text:      "Name  Amount\nWidget  12.00\n\n",
	}

	rows := ExtractRows(page)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Amount"}, rows[0])
	assert.Equal(t, []string{"Widget", "12.00"}, rows[1])
}

func TestExtractRows_FallsBackOnEmptyTables(t *testing.T) {
	page := &fakePage{
		number: 2,
		tables: nil,
		text:   "single line of prose",
	}

	rows := ExtractRows(page)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"single line of prose"}, rows[0])
}

func TestExtractRows_EmptyPage(t *testing.T) {
	page := &fakePage{number: 3, textErr: errors.New("no content stream")}

	rows := ExtractRows(page)
	assert.Empty(t, rows)
}

func TestChain_AutoDetection(t *testing.T) {
	statementText := "01/01/2025 Coffee -4.50 995.50\n" +
		"02/01/2025 Rent -800.00 195.50\n" +
		"03/01/2025 Salary 2,000.00 2,195.50\n"

	tests := []struct {
		name     string
		page     *fakePage
		wantKind Kind
		wantRows int
	}{
		{
			name:     "three transactions claim the page",
			page:     &fakePage{text: statementText},
			wantKind: KindStatement,
			wantRows: 3,
		},
		{
			name: "two transactions fall through to generic",
			page: &fakePage{text: "01/01/2025 Coffee -4.50 995.50\n" +
				"02/01/2025 Rent -800.00 195.50\n"},
			wantKind: KindGeneric,
			wantRows: 2,
		},
		{
			name:     "prose page is generic",
			page:     &fakePage{text: "Terms and Conditions\nSee appendix A"},
			wantKind: KindGeneric,
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, kind := AutoChain().Extract(tt.page)
			assert.Equal(t, tt.wantKind, kind)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestStatementStrategy_CustomThreshold(t *testing.T) {
	page := &fakePage{text: "01/01/2025 Coffee -4.50 995.50\n"}

	rows, ok := StatementStrategy{MinRows: 1}.Extract(page)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	_, ok = StatementStrategy{}.Extract(page)
	assert.False(t, ok)
}
