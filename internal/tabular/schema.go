// =============================================================================
// PDF to CSV Converter - Column Schemas
// =============================================================================
//
// This module builds the column-name schemas assigned to a row set at output
// time. Two kinds exist:
//
//   Named schema   : the fixed 5-column statement layout
//                    (Date, Description, Debit, Credit, Balance)
//   Generic schema : anonymous Col1..ColN columns sized to the data width
//
// Either kind may be prefixed with the two metadata columns
// (SourceFile, PageNumber) when metadata inclusion is enabled.
//
// A schema is chosen once per output scope (one per document file, and
// separately for the combined batch output), never per row.
//
// =============================================================================

package tabular

import "fmt"

// StatementWidth is the number of data columns in a statement row.
const StatementWidth = 5

// MetadataWidth is the number of metadata columns prepended to rows when
// metadata inclusion is enabled.
const MetadataWidth = 2

// statementColumns is the fixed Named schema for statement output.
var statementColumns = []string{"Date", "Description", "Debit", "Credit", "Balance"}

// metadataColumns are the optional prefix columns identifying row origin.
var metadataColumns = []string{"SourceFile", "PageNumber"}

// NamedSchema returns the fixed statement schema, optionally prefixed with
// the metadata columns.
func NamedSchema(withMetadata bool) []string {
	return buildSchema(statementColumns, withMetadata)
}

// GenericSchema returns an anonymous Col1..ColN schema with n data columns,
// optionally prefixed with the metadata columns.
func GenericSchema(n int, withMetadata bool) []string {
	if n < 1 {
		n = 1
	}
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("Col%d", i+1)
	}
	return buildSchema(cols, withMetadata)
}

// GenericSchemaForWidth returns a Generic schema for a total row width.
// When metadata is enabled the two metadata columns are carved out of the
// total, so the generic columns cover only the data cells.
func GenericSchemaForWidth(totalWidth int, withMetadata bool) []string {
	n := totalWidth
	if withMetadata {
		n = totalWidth - MetadataWidth
	}
	return GenericSchema(n, withMetadata)
}

func buildSchema(dataCols []string, withMetadata bool) []string {
	schema := make([]string, 0, len(metadataColumns)+len(dataCols))
	if withMetadata {
		schema = append(schema, metadataColumns...)
	}
	return append(schema, dataCols...)
}
