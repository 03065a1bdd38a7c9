package usecase

import (
	"context"

	"insurai/internal/domain/entity"
)

// UploadedDocument is one staged upload: the temp file on disk plus the name
// the admin's browser sent. Temp files are always removed before Ingest
// returns, whatever the outcome.
type UploadedDocument struct {
	TempPath     string
	OriginalName string
	Size         int64
}

// IngestInput is one document batch to process. ProviderName is an optional
// manual override that applies only when the model cannot name the provider
// itself.
type IngestInput struct {
	StateID      uint
	ProviderName string
	Documents    []UploadedDocument
}

// DocumentResult reports the extraction outcome for one file.
type DocumentResult struct {
	File   string
	Status string // "success" or "failed"
	Error  string // Populated on failure.
}

// IngestOutput summarises a completed ingestion run.
type IngestOutput struct {
	ProviderName    string
	PlansAdded      int
	PlansReplaced   int64
	FilesSuccessful int
	FilesFailed     int
	Details         []DocumentResult
	Plans           []*entity.Plan
}

// IngestionUsecase coordinates the document-to-plan pipeline: extract text
// from each file, run one model pass over the combined batch, then replace
// the provider's plans for the target state in a single transaction.
type IngestionUsecase interface {
	Ingest(ctx context.Context, input IngestInput) (*IngestOutput, error)
}
