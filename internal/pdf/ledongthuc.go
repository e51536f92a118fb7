// =============================================================================
// PDF to CSV Converter - ledongthuc/pdf Backend
// =============================================================================
//
// This is the concrete extraction engine, built on github.com/ledongthuc/pdf.
// The library exposes positioned text fragments per page; this backend turns
// them into the two capabilities the converter needs:
//
//   Tables() : groups each visual text row into cells wherever the horizontal
//              gap between fragments exceeds a threshold. Rows that split
//              into at least two cells form the page's detected table.
//   Text()   : reconstructs the page as plain text lines, rendering wide
//              gaps as double spaces so the downstream whitespace tokenizer
//              can still recover column boundaries.
//
// GAP HEURISTICS:
//   - cellGapPoints: a horizontal gap of at least this many points separates
//     two cells. Justified tables in bank statements typically leave 15-40pt
//     between columns.
//   - wordGapFactor: a gap wider than this fraction of the font size (but
//     narrower than a cell gap) is an ordinary word space.
//
// =============================================================================

package pdf

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Layout tuning for cell and word boundary detection.
const (
	// cellGapPoints is the minimum horizontal gap treated as a column
	// boundary.
	cellGapPoints = 12.0

	// wordGapFactor scales the font size to the minimum gap treated as a
	// word space.
	wordGapFactor = 0.3
)

// fileOpener opens PDF files with the ledongthuc/pdf reader.
type fileOpener struct{}

// NewOpener returns the standard file-backed Opener.
func NewOpener() Opener {
	return fileOpener{}
}

// Open opens the PDF at path. The returned Document owns the underlying
// file handle; Close releases it.
func (fileOpener) Open(path string) (Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &document{file: f, reader: reader}, nil
}

// document wraps an open ledongthuc/pdf reader.
type document struct {
	file   *os.File
	reader *pdf.Reader
}

// Pages returns the document's pages in order. Null page objects (seen in
// some malformed PDFs) are skipped.
func (d *document) Pages() []Page {
	total := d.reader.NumPage()
	pages := make([]Page, 0, total)
	number := 0
	for i := 1; i <= total; i++ {
		p := d.reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		number++
		pages = append(pages, &page{page: p, number: number})
	}
	return pages
}

func (d *document) Close() error {
	return d.file.Close()
}

// page adapts one ledongthuc/pdf page to the Page interface.
type page struct {
	page   pdf.Page
	number int
}

func (p *page) Number() int {
	return p.number
}

// Tables groups the page's positioned text rows into cells by horizontal
// gap. Rows that yield at least two cells are collected into a single
// detected table; if no row does, no table is reported and the caller is
// expected to fall back to Text().
func (p *page) Tables() ([]Table, error) {
	rows, err := p.page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("failed to read positioned text: %w", err)
	}

	var cellRows [][]string
	for _, row := range rows {
		cells := splitRowIntoCells(row.Content)
		if len(cells) >= 2 {
			cellRows = append(cellRows, cells)
		}
	}

	if len(cellRows) == 0 {
		return nil, nil
	}
	return []Table{{Rows: cellRows}}, nil
}

// Text reconstructs the page's plain text from its positioned rows, top to
// bottom. Cell-sized gaps are rendered as double spaces so column structure
// survives into the text representation.
func (p *page) Text() (string, error) {
	rows, err := p.page.GetTextByRow()
	if err != nil {
		// Positioned extraction can fail on exotic encodings where the
		// plain text walk still works.
		text, perr := p.page.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("failed to extract text: %w", perr)
		}
		return text, nil
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := splitRowIntoCells(row.Content)
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n"), nil
}

// splitRowIntoCells merges one visual row's text fragments into cell
// strings, starting a new cell whenever the horizontal gap between
// fragments reaches cellGapPoints.
func splitRowIntoCells(fragments []pdf.Text) []string {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var current strings.Builder
	lastEnd := sorted[0].X

	for i, frag := range sorted {
		if i > 0 {
			gap := frag.X - lastEnd
			switch {
			case gap >= cellGapPoints:
				if cell := strings.TrimSpace(current.String()); cell != "" {
					cells = append(cells, cell)
				}
				current.Reset()
			case gap >= wordGapFactor*frag.FontSize:
				current.WriteByte(' ')
			}
		}
		current.WriteString(frag.S)
		if end := frag.X + frag.W; end > lastEnd {
			lastEnd = end
		}
	}

	if cell := strings.TrimSpace(current.String()); cell != "" {
		cells = append(cells, cell)
	}
	return cells
}
