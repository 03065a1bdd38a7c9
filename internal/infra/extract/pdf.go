package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"

	"insurai/internal/domain/entity"
	"insurai/internal/errors"
)

// extractPDF renders a PDF's text content page by page.
func extractPDF(path string) (*entity.DocumentContent, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open pdf")
	}
	defer f.Close()

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, errors.Wrap(err, "extract pdf text")
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, errors.Wrap(err, "read pdf text")
	}

	return &entity.DocumentContent{Text: buf.String()}, nil
}
