// =============================================================================
// PDF to CSV Converter - Output Writers
// =============================================================================
//
// Tabular output serialization. Two formats are supported, selected by
// configuration: delimited text (CSV, the default) and XLSX spreadsheets.
// Both writers take a header schema plus pre-normalized rectangular rows;
// everything upstream guarantees the rows already match the schema width.
//
// A write failure is the one fatal condition in the pipeline: the batch
// aborts when an output artifact cannot be produced.
//
// =============================================================================

package writer

// TableWriter serializes one schema-plus-rows table to a file.
type TableWriter interface {
	// Write creates (or truncates) the file at path with the given header
	// row followed by the data rows.
	Write(path string, headers []string, rows [][]string) error

	// Ext is the file extension this writer produces, including the dot.
	Ext() string
}

// ForFormat returns the writer for the configured output format.
func ForFormat(excel bool) TableWriter {
	if excel {
		return ExcelWriter{}
	}
	return CSVWriter{}
}
