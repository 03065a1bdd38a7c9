// Package extract implements document text extraction for the ingestion
// pipeline. A single entry point dispatches on file extension to the
// format-specific readers.
package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/service"
	"insurai/internal/errors"
)

// fileExtractor implements service.DocumentExtractor.
type fileExtractor struct{}

// NewFileExtractor is the constructor for fileExtractor.
func NewFileExtractor() service.DocumentExtractor {
	return &fileExtractor{}
}

// Extract reads the file at path and returns its textual content. The
// original filename decides the format; path may carry a temp-file suffix.
func (e *fileExtractor) Extract(ctx context.Context, path string, originalName string) (*entity.DocumentContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".pdf":
		return extractPDF(path)
	case ".doc", ".docx":
		return extractWord(path)
	case ".xls", ".xlsx":
		return extractExcel(path)
	case ".csv":
		return extractCSV(path)
	case ".txt":
		return extractPlainText(path)
	default:
		return nil, service.ErrUnsupportedFileType
	}
}

func extractPlainText(path string) (*entity.DocumentContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read text file")
	}

	return &entity.DocumentContent{Text: string(raw)}, nil
}
