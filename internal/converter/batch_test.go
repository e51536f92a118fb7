package converter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/PDF-to-CSV-conversion/internal/config"
)

// seedInputs creates empty stand-in input files so glob discovery finds them.
// Document content comes from the stub opener, keyed by base name.
func seedInputs(t *testing.T, names ...string) (dir string) {
	t.Helper()
	dir = t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644))
	}
	return dir
}

func batchConfig(t *testing.T, inputDir string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.InputPattern = filepath.Join(inputDir, "*.pdf")
	cfg.OutputDir = t.TempDir()
	return cfg
}

func statementDoc(pages ...string) *stubDocument {
	doc := &stubDocument{}
	for i, text := range pages {
		doc.pages = append(doc.pages, &stubPage{number: i + 1, text: text})
	}
	return doc
}

func TestBatch_PartialFailureSkipsDocument(t *testing.T) {
	inputDir := seedInputs(t, "a.pdf", "b.pdf", "c.pdf")
	cfg := batchConfig(t, inputDir)
	cfg.Combine = true
	cfg.AutoStatementMode = true

	opener := &stubOpener{
		docs: map[string]*stubDocument{
			"a.pdf": statementDoc(statementPageText),
			"c.pdf": statementDoc(statementPageText),
		},
		errs: map[string]error{"b.pdf": errors.New("encrypted document")},
	}

	summary, err := NewBatch(cfg, opener, NewLogger(false), false).Run()
	require.NoError(t, err, "an open failure must not abort the batch")

	assert.Equal(t, 3, summary.TotalFiles)
	assert.Equal(t, 2, summary.SuccessfulFiles)
	assert.Equal(t, 1, summary.FailedFiles)
	assert.Equal(t, 6, summary.TotalRows)
	require.Len(t, summary.FailedFilesList, 1)
	assert.Equal(t, filepath.Join(inputDir, "b.pdf"), summary.FailedFilesList[0].InputFile)
	assert.Contains(t, summary.FailedFilesList[0].ErrorMessage, "encrypted")

	// Per-document outputs in sorted input order, combined artifact last.
	require.Len(t, summary.Outputs, 3)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "a.csv"), summary.Outputs[0])
	assert.Equal(t, filepath.Join(cfg.OutputDir, "c.csv"), summary.Outputs[1])
	assert.Equal(t, filepath.Join(cfg.OutputDir, "all_pdfs_combined.csv"), summary.Outputs[2])

	// The skipped document contributes nothing to the combined output.
	combined := readOutput(t, summary.Outputs[2])
	assert.Contains(t, combined, "a.pdf,1,")
	assert.Contains(t, combined, "c.pdf,1,")
	assert.NotContains(t, combined, "b.pdf")
}

func TestBatch_CombinedSchemaIsAlwaysGeneric(t *testing.T) {
	inputDir := seedInputs(t, "jan.pdf")
	cfg := batchConfig(t, inputDir)
	cfg.Combine = true
	cfg.StatementMode = true

	opener := &stubOpener{docs: map[string]*stubDocument{
		"jan.pdf": statementDoc(statementPageText),
	}}

	summary, err := NewBatch(cfg, opener, NewLogger(false), false).Run()
	require.NoError(t, err)

	// The per-document artifact keeps the named statement schema...
	perDoc := readOutput(t, summary.Outputs[0])
	assert.True(t, strings.HasPrefix(perDoc,
		"SourceFile,PageNumber,Date,Description,Debit,Credit,Balance\n"))

	// ...but the combined artifact is anonymous even for pure statements.
	combined := readOutput(t, summary.Outputs[1])
	assert.True(t, strings.HasPrefix(combined,
		"SourceFile,PageNumber,Col1,Col2,Col3,Col4,Col5\n"))
}

func TestBatch_EmptyDiscoveryWithCombine(t *testing.T) {
	inputDir := seedInputs(t) // no files
	cfg := batchConfig(t, inputDir)
	cfg.Combine = true

	summary, err := NewBatch(cfg, &stubOpener{}, NewLogger(false), false).Run()
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalFiles)
	require.Len(t, summary.Outputs, 1)

	// Header-only combined artifact.
	assert.Equal(t,
		"SourceFile,PageNumber,Col1\n",
		readOutput(t, summary.Outputs[0]))
}

func TestBatch_WriteFailureAborts(t *testing.T) {
	inputDir := seedInputs(t, "a.pdf", "b.pdf")
	cfg := batchConfig(t, inputDir)

	// A directory squatting on the first output path makes its write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.OutputDir, "a.csv"), 0o755))

	opener := &stubOpener{docs: map[string]*stubDocument{
		"a.pdf": statementDoc(statementPageText),
		"b.pdf": statementDoc(statementPageText),
	}}

	summary, err := NewBatch(cfg, opener, NewLogger(false), false).Run()
	require.Error(t, err)

	var we *WriteError
	assert.True(t, errors.As(err, &we))

	// The batch stopped before the second document.
	assert.Equal(t, 0, summary.SuccessfulFiles)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "b.csv"))
}

func TestBatch_ArchivesProcessedInputs(t *testing.T) {
	inputDir := seedInputs(t, "done.pdf")
	cfg := batchConfig(t, inputDir)
	cfg.ArchiveProcessed = true
	cfg.ArchiveDir = t.TempDir()

	opener := &stubOpener{docs: map[string]*stubDocument{
		"done.pdf": statementDoc(statementPageText),
	}}

	_, err := NewBatch(cfg, opener, NewLogger(false), false).Run()
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(inputDir, "done.pdf"))
	assert.FileExists(t, filepath.Join(cfg.ArchiveDir, "done.pdf"))
}

func TestBatch_WritesSummaryLog(t *testing.T) {
	inputDir := seedInputs(t, "a.pdf")
	cfg := batchConfig(t, inputDir)

	opener := &stubOpener{docs: map[string]*stubDocument{
		"a.pdf": statementDoc(statementPageText),
	}}

	summary, err := NewBatch(cfg, opener, NewLogger(false), false).Run()
	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)

	logs, err := filepath.Glob(filepath.Join(cfg.OutputDir, "conversion_summary_*.txt"))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), summary.RunID)
	assert.Contains(t, string(data), "Successful:  1")
}

func TestBatch_DryRunTouchesNothing(t *testing.T) {
	inputDir := seedInputs(t, "a.pdf")
	cfg := batchConfig(t, inputDir)
	cfg.Combine = true

	opener := &stubOpener{docs: map[string]*stubDocument{
		"a.pdf": statementDoc(statementPageText),
	}}

	summary, err := NewBatch(cfg, opener, NewLogger(false), true).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessfulFiles)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write any artifacts")
}
