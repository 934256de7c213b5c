package pdf

import (
	"fmt"

	pdfscan "github.com/ledongthuc/pdf"
)

// PageExtractor pulls per-page text out of a PDF file.
type PageExtractor interface {
	PageTexts(path string) ([]string, error)
}

// TextExtractor reads the embedded text layer of a PDF. Scanned documents
// without a text layer yield empty pages; OCR is out of scope here.
type TextExtractor struct{}

var _ PageExtractor = (*TextExtractor)(nil)

func (TextExtractor) PageTexts(path string) ([]string, error) {
	f, reader, err := pdfscan.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
