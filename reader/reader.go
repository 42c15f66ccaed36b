// Package reader extracts per-page plain text from PDF documents. It is the
// standard source-side collaborator of the processing pipeline: the core
// consumes the page texts it produces and never touches the PDF itself.
package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader reads page texts from one PDF file.
type Reader struct {
	file *os.File
	pdf  *pdf.Reader
}

// Open opens a PDF file for page-text extraction. An unreadable document is
// the one user-visible failure category of the system; everything past this
// point degrades to warnings.
func Open(path string) (*Reader, error) {
	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Reader{file: file, pdf: r}, nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// PageTexts extracts the text of every page in document order. Rows are
// emitted top to bottom with words joined by single spaces and rows
// separated by newlines, preserving the line structure the field extractor
// relies on. A page that fails text extraction contributes an empty string
// rather than aborting the document.
func (r *Reader) PageTexts() ([]string, error) {
	texts := make([]string, 0, r.pdf.NumPage())
	for n := 1; n <= r.pdf.NumPage(); n++ {
		page := r.pdf.Page(n)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			texts = append(texts, "")
			continue
		}
		var sb strings.Builder
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
		texts = append(texts, sb.String())
	}
	return texts, nil
}

// Close releases the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
