// =============================================================================
// PDF to CSV Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command for converting
// PDF documents to tabular files. It resolves the effective configuration
// (file values overridden by flags) and hands the run to the batch
// assembler.
//
// COMMAND USAGE:
//   pdf2csv convert [flags]
//
// FLAGS:
//   --input          : Glob pattern for input PDFs
//   --output-dir     : Directory to write output files
//   --combine        : Also write one combined file with all documents
//   --no-meta        : Do not include SourceFile/PageNumber columns
//   --excel          : Write XLSX workbooks instead of CSV
//   --statement      : Force the bank statement extractor for every page
//   --auto-statement : Detect statement pages automatically, per page
//   --dry-run        : Simulate processing without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration and apply flag overrides
//   2. Discover input PDFs from the glob pattern
//   3. For each file, strictly in order:
//      a. Extract rows page by page (tables first, text fallback,
//         statement extractor per the configured mode)
//      b. Normalize row widths and prepend metadata columns
//      c. Choose the column schema and write the output file
//   4. Optionally write the combined file
//   5. Write the run summary log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/converter"
	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/pdf"
)

// Convert command flags. Only flags the user actually set override the
// configuration file, so booleans can toggle in either direction.
var (
	inputPattern  string
	outputDir     string
	combine       bool
	noMeta        bool
	excelOut      bool
	statementMode bool
	autoStatement bool
	dryRun        bool
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert PDF documents to CSV or XLSX files",
	Long: `The convert command scans the input pattern for PDF documents and converts
each one to a tabular output file, plus an optional combined file holding
every document's rows.

Each page is extracted independently: detected tables are preferred, and a
whitespace-run tokenizer recovers rows from the page text when table
detection fails or finds nothing. With --statement every page goes through
the bank statement extractor; with --auto-statement each page is probed and
statement extraction is kept only when it recognizes enough transaction
lines.

Errors in one document do not affect the processing of others: unreadable
files are skipped with a warning and the batch continues.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// init registers the convert command and its flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&inputPattern, "input", "", "Glob pattern for input PDFs (default from config)")
	convertCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to write output files (default from config)")
	convertCmd.Flags().BoolVar(&combine, "combine", false, "Also write one combined file with all documents")
	convertCmd.Flags().BoolVar(&noMeta, "no-meta", false, "Do not include SourceFile/PageNumber columns")
	convertCmd.Flags().BoolVar(&excelOut, "excel", false, "Write XLSX workbooks instead of CSV")
	convertCmd.Flags().BoolVar(&statementMode, "statement", false, "Force the bank statement extractor for every page")
	convertCmd.Flags().BoolVar(&autoStatement, "auto-statement", false, "Detect statement pages automatically, per page")
	convertCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate processing without writing output files")
}

// runConvert resolves the configuration and runs the batch.
func runConvert(cmd *cobra.Command) error {
	start := time.Now()

	fmt.Println("=== PDF to CSV Converter ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	logger := converter.NewLogger(verbose)
	batch := converter.NewBatch(cfg, pdf.NewOpener(), logger, dryRun)

	fmt.Printf("Input pattern: %s\n", cfg.InputPattern)
	fmt.Printf("Output dir:    %s\n", cfg.OutputDir)
	if dryRun {
		fmt.Println("Dry run: no files will be written")
	}
	fmt.Println("Processing files...")

	summary, err := batch.Run()
	if err != nil {
		return err
	}

	for _, pf := range summary.ProcessedFiles {
		fmt.Printf("  ✓ %s -> %s (%d rows)\n", filepath.Base(pf.InputFile), pf.OutputFile, pf.Rows)
	}
	for _, ff := range summary.FailedFilesList {
		fmt.Printf("  ✗ %s: %s\n", filepath.Base(ff.InputFile), ff.ErrorMessage)
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:  %d\n", summary.TotalFiles)
	fmt.Printf("Successful:   %d\n", summary.SuccessfulFiles)
	fmt.Printf("Failed:       %d\n", summary.FailedFiles)
	fmt.Printf("Rows written: %d\n", summary.TotalRows)
	fmt.Printf("Time elapsed: %s\n", time.Since(start))

	return nil
}

// applyFlagOverrides copies explicitly-set flags over the file
// configuration. Unset flags leave the file values alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("input") {
		cfg.InputPattern = inputPattern
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("combine") {
		cfg.Combine = combine
	}
	if cmd.Flags().Changed("no-meta") {
		cfg.IncludeMetadata = !noMeta
	}
	if cmd.Flags().Changed("excel") {
		cfg.Excel = excelOut
	}
	if cmd.Flags().Changed("statement") {
		cfg.StatementMode = statementMode
	}
	if cmd.Flags().Changed("auto-statement") {
		cfg.AutoStatementMode = autoStatement
	}
}
