package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]string
		width int
		want  [][]string
	}{
		{
			name:  "pads short rows",
			rows:  [][]string{{"a"}, {"b", "c"}},
			width: 3,
			want:  [][]string{{"a", "", ""}, {"b", "c", ""}},
		},
		{
			name:  "truncates long rows",
			rows:  [][]string{{"a", "b", "c"}},
			width: 2,
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "zero width uses widest row",
			rows:  [][]string{{"a"}, {"b", "c", "d"}},
			width: 0,
			want:  [][]string{{"a", "", ""}, {"b", "c", "d"}},
		},
		{
			name:  "already uniform is unchanged",
			rows:  [][]string{{"a", "b"}, {"c", "d"}},
			width: 2,
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "empty input stays empty",
			rows:  nil,
			width: 4,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.rows, tt.width))
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}}
	Normalize(rows, 1)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, rows)
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 0, MaxWidth(nil))
	assert.Equal(t, 3, MaxWidth([][]string{{"a"}, {"b", "c", "d"}, {"e", "f"}}))
}

func TestNamedSchema(t *testing.T) {
	assert.Equal(t,
		[]string{"Date", "Description", "Debit", "Credit", "Balance"},
		NamedSchema(false))
	assert.Equal(t,
		[]string{"SourceFile", "PageNumber", "Date", "Description", "Debit", "Credit", "Balance"},
		NamedSchema(true))
}

func TestGenericSchema(t *testing.T) {
	assert.Equal(t, []string{"Col1", "Col2", "Col3"}, GenericSchema(3, false))
	assert.Equal(t,
		[]string{"SourceFile", "PageNumber", "Col1", "Col2"},
		GenericSchema(2, true))

	// A degenerate width still produces one column.
	assert.Equal(t, []string{"Col1"}, GenericSchema(0, false))
}

func TestGenericSchemaForWidth(t *testing.T) {
	// Without metadata the total width is all data columns.
	assert.Equal(t, []string{"Col1", "Col2", "Col3", "Col4"}, GenericSchemaForWidth(4, false))

	// With metadata two columns of the total are the prefix.
	assert.Equal(t,
		[]string{"SourceFile", "PageNumber", "Col1", "Col2"},
		GenericSchemaForWidth(4, true))
}
