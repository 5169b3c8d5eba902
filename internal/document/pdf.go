package document

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	app_errors "pdf-chat/internal/errors"
)

// TextExtractor turns a document on disk into per-page plain text.
type TextExtractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// PDFExtractor extracts page text with github.com/ledongthuc/pdf.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages returns the plain text of every page in page order. Any
// failure to parse the file is reported as ErrExtraction.
func (e *PDFExtractor) ExtractPages(ctx context.Context, path string) (pages []string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", app_errors.ErrExtraction, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrExtraction, err)
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", app_errors.ErrExtraction, i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
