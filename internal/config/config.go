// =============================================================================
// PDF to CSV Converter - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. Settings come
// from an optional YAML file (config.yaml by default), and every processing
// option can also be overridden by a CLI flag on the convert command.
//
// CONFIGURATION PRECEDENCE:
//   1. CLI flags (highest)
//   2. config.yaml values
//   3. Built-in defaults
//
// The two statement toggles interact as follows: statement_mode forces the
// statement extractor on every page; auto_statement_mode tries it per page
// and falls back to generic extraction below the confidence threshold. When
// both are set, the forced mode wins. When neither is set, every page uses
// the generic extractor.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputPattern is the glob pattern selecting input PDF files.
	// Default: "<home>/Downloads/*.pdf"
	InputPattern string `yaml:"input_pattern"`

	// OutputDir is the directory where output files are written.
	// Created if absent. Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// IncludeMetadata prepends SourceFile and PageNumber columns to every
	// row. Default: true
	IncludeMetadata bool `yaml:"include_metadata"`

	// Combine also emits one combined artifact holding every document's
	// rows. Default: false
	Combine bool `yaml:"combine"`

	// Excel selects XLSX output instead of delimited text.
	// Default: false
	Excel bool `yaml:"excel"`

	// StatementMode forces the statement row extractor for every page.
	StatementMode bool `yaml:"statement_mode"`

	// AutoStatementMode tries the statement extractor per page and falls
	// back to generic extraction below the confidence threshold.
	AutoStatementMode bool `yaml:"auto_statement_mode"`

	// CombinedName is the base name (no extension) of the combined
	// artifact. Default: "all_pdfs_combined"
	CombinedName string `yaml:"combined_name"`

	// ArchiveProcessed moves successfully converted PDFs into ArchiveDir.
	// Default: false
	ArchiveProcessed bool `yaml:"archive_processed"`

	// ArchiveDir is the archive directory for processed inputs.
	// Default: "./processed"
	ArchiveDir string `yaml:"archive_dir"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputPattern:    defaultInputPattern(),
		OutputDir:       "./output",
		IncludeMetadata: true,
		CombinedName:    "all_pdfs_combined",
		ArchiveDir:      "./processed",
	}
}

// Load reads the configuration from a YAML file. A missing file is not an
// error: the built-in defaults are returned, so the tool works without any
// configuration on disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from the defaults so that booleans that default to true
	// (include_metadata) survive being absent from the file.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills any string options the file explicitly blanked.
func applyDefaults(cfg *Config) {
	if cfg.InputPattern == "" {
		cfg.InputPattern = defaultInputPattern()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.CombinedName == "" {
		cfg.CombinedName = "all_pdfs_combined"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./processed"
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if filepath.Ext(cfg.CombinedName) != "" {
		return fmt.Errorf("combined_name must not carry an extension: %s", cfg.CombinedName)
	}
	return nil
}

// defaultInputPattern matches PDFs in the user's Downloads directory, the
// most common drop location for exported statements. Falls back to the
// working directory when the home directory cannot be resolved.
func defaultInputPattern() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "*.pdf"
	}
	return filepath.Join(home, "Downloads", "*.pdf")
}
