// =============================================================================
// PDF to CSV Converter - Document Converter
// =============================================================================
//
// This module converts a single PDF document into one tabular output file.
// It orchestrates the per-document pipeline:
//
//   1. Open the document through the extraction engine.
//   2. Per page, select an extraction mode (forced statement, forced
//      generic, or auto-detection via the strategy chain).
//   3. Normalize statement pages to the fixed 5-column width.
//   4. Optionally prepend the SourceFile/PageNumber metadata cells.
//   5. Accumulate all pages' rows, tracking which extraction paths ran.
//   6. Re-normalize the whole accumulation to its own maximum width
//      (statement and generic pages of the same document can differ in
//      width; this final pass restores the rectangular invariant).
//   7. Choose the schema: Named only when every row came from the
//      statement path, Generic otherwise.
//   8. Validate and write the output artifact.
//
// A document that produces zero rows still gets an output file with the
// appropriate header, so a batch always yields one artifact per readable
// input.
//
// =============================================================================

package converter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/extractor"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/tabular"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/validation"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/writer"
)

// =============================================================================
// MODES AND RESULTS
// =============================================================================

// Mode selects the per-page extraction behavior for a whole batch.
type Mode int

const (
	// ModeGeneric runs the generic row extractor on every page.
	ModeGeneric Mode = iota

	// ModeStatement forces the statement extractor on every page.
	ModeStatement

	// ModeAuto tries the statement extractor per page and falls back to
	// generic extraction below the confidence threshold.
	ModeAuto
)

// ModeFromConfig derives the extraction mode from the configuration.
// A forced statement mode wins over auto-detection when both are set.
func ModeFromConfig(cfg *config.Config) Mode {
	switch {
	case cfg.StatementMode:
		return ModeStatement
	case cfg.AutoStatementMode:
		return ModeAuto
	default:
		return ModeGeneric
	}
}

// Result is the outcome of converting a single document.
type Result struct {
	// FilePath is the input document that was processed.
	FilePath string

	// OutputFile is the written artifact. Empty if processing failed.
	OutputFile string

	// Rows holds the document's accumulated, normalized rows before the
	// schema decision. The batch assembler concatenates these for the
	// combined output.
	Rows [][]string

	// Success reports whether an output artifact was produced.
	Success bool

	// Error is set when processing failed.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one document conversion.
type Stats struct {
	// Pages is the number of pages examined.
	Pages int

	// Rows is the number of data rows written.
	Rows int

	// StatementPages counts pages extracted via the statement path.
	StatementPages int

	// GenericPages counts pages extracted via the generic path.
	GenericPages int

	// ProcessingTime is the wall-clock time for this document.
	ProcessingTime time.Duration
}

// WriteError marks a failure to produce an output artifact. Unlike every
// other per-document failure it aborts the whole batch.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// =============================================================================
// CONVERTER
// =============================================================================

// Converter converts single documents according to one batch configuration.
// It is reused across all documents of a batch.
type Converter struct {
	cfg    *config.Config
	opener pdf.Opener
	out    writer.TableWriter
	logger Logger
	mode   Mode
	chain  extractor.Chain
	dryRun bool
}

// New creates a Converter for the given configuration and extraction engine.
func New(cfg *config.Config, opener pdf.Opener, out writer.TableWriter, logger Logger, dryRun bool) *Converter {
	return &Converter{
		cfg:    cfg,
		opener: opener,
		out:    out,
		logger: logger,
		mode:   ModeFromConfig(cfg),
		chain:  extractor.AutoChain(),
		dryRun: dryRun,
	}
}

// Run converts one document and returns the outcome. Failures are reported
// in the Result, never panicked; only a WriteError in Result.Error is fatal
// to the batch.
func (c *Converter) Run(path string) Result {
	start := time.Now()
	result := Result{FilePath: path}

	doc, err := c.opener.Open(path)
	if err != nil {
		result.Error = fmt.Errorf("failed to open document: %w", err)
		return result
	}
	defer doc.Close()

	base := filepath.Base(path)
	rows, stats, usedStatement, usedGeneric := c.extractDocument(doc, base)
	result.Stats = stats

	// The whole accumulation is normalized to its own maximum width:
	// metadata-prefixed statement rows and generic rows from other pages
	// of the same document can differ in width until this pass.
	rows = tabular.Normalize(rows, 0)
	result.Rows = rows

	headers := c.chooseSchema(rows, usedStatement, usedGeneric)

	if errs := validation.ValidateTable(headers, rows); len(errs) > 0 {
		for _, ve := range errs {
			c.logger.Error("validation: %s: %v", base, ve)
		}
		result.Error = fmt.Errorf("output validation failed with %d error(s)", len(errs))
		return result
	}

	outPath := filepath.Join(c.cfg.OutputDir, outputName(base, c.out.Ext()))
	if !c.dryRun {
		if err := c.out.Write(outPath, headers, rows); err != nil {
			result.Error = &WriteError{Path: outPath, Err: err}
			return result
		}
	}

	result.OutputFile = outPath
	result.Success = true
	result.Stats.Rows = len(rows)
	result.Stats.ProcessingTime = time.Since(start)
	c.logger.Debug("converted %s: %d page(s), %d row(s)", base, result.Stats.Pages, len(rows))

	return result
}

// extractDocument walks the document's pages and accumulates their rows.
// The two returned flags fold the aggregate schema decision: did any page
// contribute statement rows, did any page contribute generic rows.
func (c *Converter) extractDocument(doc pdf.Document, base string) (all [][]string, stats Stats, usedStatement, usedGeneric bool) {
	for _, page := range doc.Pages() {
		stats.Pages++

		rows, kind := c.extractPage(page)
		if kind == extractor.KindStatement {
			// Statement rows are pinned to the fixed field count
			// before anything else touches them.
			rows = tabular.Normalize(rows, tabular.StatementWidth)
		}
		if len(rows) == 0 {
			continue
		}

		if kind == extractor.KindStatement {
			usedStatement = true
			stats.StatementPages++
		} else {
			usedGeneric = true
			stats.GenericPages++
		}

		if c.cfg.IncludeMetadata {
			pageNumber := strconv.Itoa(page.Number())
			for i, row := range rows {
				withMeta := make([]string, 0, tabular.MetadataWidth+len(row))
				withMeta = append(withMeta, base, pageNumber)
				rows[i] = append(withMeta, row...)
			}
		}

		all = append(all, rows...)
	}
	return all, stats, usedStatement, usedGeneric
}

// extractPage runs the configured extraction mode against one page.
func (c *Converter) extractPage(page pdf.Page) ([][]string, extractor.Kind) {
	switch c.mode {
	case ModeStatement:
		return extractor.ExtractStatementRows(page), extractor.KindStatement
	case ModeAuto:
		return c.chain.Extract(page)
	default:
		return extractor.ExtractRows(page), extractor.KindGeneric
	}
}

// chooseSchema picks the column schema for the document's output scope.
//
// The Named schema is only meaningful when every row genuinely carries the
// five statement fields; any admixture of generic rows invalidates the
// column semantics, so mixed documents fall back to anonymous columns sized
// to the data width. A document with no rows at all still gets a header:
// the Named one when statement extraction was requested (forced or auto),
// else a single generic column.
func (c *Converter) chooseSchema(rows [][]string, usedStatement, usedGeneric bool) []string {
	meta := c.cfg.IncludeMetadata

	if len(rows) == 0 {
		if c.mode == ModeStatement || c.mode == ModeAuto {
			return tabular.NamedSchema(meta)
		}
		return tabular.GenericSchema(1, meta)
	}

	if usedStatement && !usedGeneric {
		return tabular.NamedSchema(meta)
	}
	return tabular.GenericSchemaForWidth(tabular.MaxWidth(rows), meta)
}

// outputName derives the artifact name from the input base name.
func outputName(base, ext string) string {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ext
}
