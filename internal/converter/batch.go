// =============================================================================
// PDF to CSV Converter - Batch Assembler
// =============================================================================
//
// The batch assembler drives a whole conversion run: it discovers the input
// files from the configured glob pattern, processes them strictly one at a
// time in sorted order, and optionally concatenates every document's rows
// into one combined artifact.
//
// FAILURE MODEL:
//   - A document that fails to open (or to extract) is logged as a warning
//     and skipped everywhere, including the combined accumulation. The rest
//     of the batch continues.
//   - A failure to write an output artifact aborts the batch with a
//     surfaced error. Nothing downstream of a half-written run is
//     trustworthy.
//
// The combined output always uses the Generic schema, even when every
// contributing document was pure-statement: combination is defined
// generically, and rows from differently-shaped documents only share the
// anonymous column space.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/tabular"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/writer"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/pkg/utils"
)

// Batch runs the conversion pipeline over every input matching the
// configured pattern.
type Batch struct {
	cfg    *config.Config
	opener pdf.Opener
	out    writer.TableWriter
	files  *utils.FileManager
	logger Logger
	dryRun bool
}

// NewBatch creates a batch runner. The output format (CSV or XLSX) and all
// processing toggles come from the configuration.
func NewBatch(cfg *config.Config, opener pdf.Opener, logger Logger, dryRun bool) *Batch {
	return &Batch{
		cfg:    cfg,
		opener: opener,
		out:    writer.ForFormat(cfg.Excel),
		files:  utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir, cfg.ArchiveProcessed),
		logger: logger,
		dryRun: dryRun,
	}
}

// Run executes the batch and returns the run summary. The summary's Outputs
// field lists every artifact produced, per-document outputs first, the
// combined artifact (when requested) last. The returned error is non-nil
// only for batch-fatal conditions: discovery/setup problems or an output
// write failure.
func (b *Batch) Run() (*utils.ProcessingSummary, error) {
	summary := &utils.ProcessingSummary{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}

	inputs, err := utils.DiscoverInputFiles(b.cfg.InputPattern)
	if err != nil {
		return summary, err
	}
	summary.TotalFiles = len(inputs)

	if !b.dryRun {
		if err := b.files.EnsureDirectories(); err != nil {
			return summary, err
		}
	}

	conv := New(b.cfg, b.opener, b.out, b.logger, b.dryRun)

	// Retained only in combine mode; otherwise each document's rows are
	// released as soon as its output is written.
	var combined [][]string

	for _, input := range inputs {
		result := conv.Run(input)

		if result.Error != nil {
			var we *WriteError
			if errors.As(result.Error, &we) {
				summary.EndTime = time.Now()
				return summary, result.Error
			}
			b.logger.Warn("skipping %s: %v", input, result.Error)
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    input,
				ErrorMessage: result.Error.Error(),
			})
			continue
		}

		summary.SuccessfulFiles++
		summary.TotalRows += result.Stats.Rows
		summary.Outputs = append(summary.Outputs, result.OutputFile)
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   input,
			OutputFile:  result.OutputFile,
			Pages:       result.Stats.Pages,
			Rows:        result.Stats.Rows,
			ProcessTime: result.Stats.ProcessingTime,
		})

		if b.cfg.Combine {
			combined = append(combined, result.Rows...)
		}

		if !b.dryRun && b.cfg.ArchiveProcessed {
			if _, err := b.files.ArchiveInputFile(input); err != nil {
				b.logger.Warn("failed to archive %s: %v", input, err)
			}
		}
	}

	if b.cfg.Combine {
		combinedPath, err := b.writeCombined(combined)
		if err != nil {
			summary.EndTime = time.Now()
			return summary, err
		}
		summary.Outputs = append(summary.Outputs, combinedPath)
	}

	summary.EndTime = time.Now()

	if !b.dryRun {
		if logPath, err := b.files.WriteSummaryLog(*summary); err != nil {
			b.logger.Warn("failed to write summary log: %v", err)
		} else {
			b.logger.Debug("summary log written to %s", logPath)
		}
	}

	return summary, nil
}

// writeCombined emits the single combined artifact from every successful
// document's pre-schema rows. The combined set is normalized to its own
// maximum width and always receives the Generic schema.
func (b *Batch) writeCombined(rows [][]string) (string, error) {
	rows = tabular.Normalize(rows, 0)

	var headers []string
	if len(rows) == 0 {
		headers = tabular.GenericSchema(1, b.cfg.IncludeMetadata)
	} else {
		headers = tabular.GenericSchemaForWidth(tabular.MaxWidth(rows), b.cfg.IncludeMetadata)
	}

	path := filepath.Join(b.cfg.OutputDir, b.cfg.CombinedName+b.out.Ext())
	if !b.dryRun {
		if err := b.out.Write(path, headers, rows); err != nil {
			return "", fmt.Errorf("failed to write combined output %s: %w", path, err)
		}
	}
	b.logger.Info("wrote combined output: %s", path)
	return path, nil
}
