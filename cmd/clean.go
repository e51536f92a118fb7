// =============================================================================
// PDF to CSV Converter - Clean Command
// =============================================================================
//
// This file defines the 'clean' command, a small post-processing utility for
// already-converted statement CSVs: it strips currency symbols from the
// Debit and Credit columns so the values import cleanly into spreadsheet
// and accounting tools.
//
// COMMAND USAGE:
//   pdf2csv clean <input.csv> [output.csv]
//
// With no output path the input file is rewritten in place.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/cleaner"
)

// cleanCmd represents the 'clean' command.
var cleanCmd = &cobra.Command{
	Use:   "clean <input.csv> [output.csv]",
	Short: "Strip currency symbols from the Debit and Credit columns of a CSV",
	Args:  cobra.RangeArgs(1, 2),

	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		outputPath := inputPath
		if len(args) == 2 {
			outputPath = args[1]
		}

		fmt.Printf("Processing file: %s\n", inputPath)

		stats, err := cleaner.Clean(inputPath, outputPath)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		fmt.Printf("Total rows: %d\n", stats.TotalRows)
		for column, count := range stats.CleanedCells {
			fmt.Printf("Cleaned cells in %s column: %d\n", column, count)
		}
		fmt.Printf("Cleaned CSV written to: %s\n", outputPath)

		return nil
	},
}

// init registers the clean command.
func init() {
	rootCmd.AddCommand(cleanCmd)
}
