package service

import (
	"context"
	"errors"

	"insurai/internal/domain/entity"
)

// ErrUnsupportedFileType is returned when a file's extension maps to no
// known extractor.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// DocumentExtractor defines the interface for pulling plain text and tables
// out of an uploaded insurance document. The concrete implementation
// dispatches on file extension (.pdf, .docx, .xlsx, .xls, .csv, .txt).
type DocumentExtractor interface {
	// Extract reads the file at path and returns its textual content.
	Extract(ctx context.Context, path string, originalName string) (*entity.DocumentContent, error)
}
