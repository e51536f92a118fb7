// =============================================================================
// PDF to CSV Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (convert, clean, version) are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pdf2csv)
//   ├── convertCmd (pdf2csv convert)
//   ├── cleanCmd   (pdf2csv clean)
//   └── versionCmd (pdf2csv version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose). The
//   configuration file is optional; every processing option has a built-in
//   default and a flag override on the convert command.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pdf2csv",
	Short: "PDF to CSV Converter - Extract tabular data from PDF documents",
	Long: `PDF to CSV Converter is a CLI tool that extracts tabular data from PDF
documents and writes it out as CSV or XLSX files.

Extraction is best-effort and heuristic: detected tables are used when the
engine finds them, and a whitespace-run tokenizer recovers rows from plain
text when it does not. A specialized extractor recognizes bank statement
transaction lines and decomposes them into Date, Description, Debit, Credit
and Balance columns.

Example Usage:
  pdf2csv convert                          # Convert every PDF in ~/Downloads
  pdf2csv convert --input './in/*.pdf'     # Convert a specific set
  pdf2csv convert --statement --combine    # Statement mode plus combined CSV
  pdf2csv clean output/statement.csv       # Strip currency symbols`,

	// With no subcommand, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
