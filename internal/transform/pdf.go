package transform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// PageLoader loads a document file into a sequence of page texts. Satisfied
// by LoadPDFPages; tests substitute their own.
type PageLoader func(path string) ([]string, error)

// LoadPDFPages extracts plain text from every page of the PDF at path.
// Pages that fail text extraction are skipped rather than failing the whole
// document.
func LoadPDFPages(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer file.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from %s", path)
	}
	return pages, nil
}

// ChunkPages splits page texts per the source type's options and tags every
// chunk with the source so it can serve as a retrieval filter later.
func ChunkPages(pages []string, source vectordb.SourceType, opts SplitOptions) []vectordb.Document {
	var docs []vectordb.Document
	for _, page := range pages {
		for _, chunk := range SplitText(page, opts) {
			docs = append(docs, vectordb.Document{
				ID:       "chunk:" + uuid.NewString(),
				Content:  chunk,
				Metadata: vectordb.Metadata{Source: source},
			})
		}
	}
	return docs
}
