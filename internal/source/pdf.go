// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts page text from PDF files. The underlying reader
// exposes no raster images and no table grids, so Pages carry text only;
// a layout-aware source can be substituted where figure and table
// regions are needed.
type PDFSource struct{}

// NewPDFSource returns a text-only PDF source.
func NewPDFSource() *PDFSource { return &PDFSource{} }

// Extract opens the PDF at path and returns one Page per document page.
// Any open or decode failure is returned as-is; the document is either
// extracted completely or rejected.
func (s *PDFSource) Extract(ctx context.Context, path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{}
	for i := 1; i <= r.NumPage(); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := r.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d of %s: %w", i, path, err)
		}
		doc.Pages = append(doc.Pages, Page{Text: text})
	}

	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("pdf %s contains no pages", path)
	}

	return doc, nil
}
