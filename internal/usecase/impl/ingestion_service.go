package impl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/extraction"
	"insurai/internal/domain/repository"
	"insurai/internal/domain/service"
	"insurai/internal/usecase"
	"insurai/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ingestionService struct {
	stateRepo repository.StateRepository
	txManager repository.TransactionManager
	extractor service.DocumentExtractor
	advisor   service.AdvisorClient
	logger    *slog.Logger
}

// IngestionServiceParams holds dependencies for IngestionService, injected by Fx.
type IngestionServiceParams struct {
	fx.In

	StateRepo repository.StateRepository
	TxManager repository.TransactionManager
	Extractor service.DocumentExtractor
	Advisor   service.AdvisorClient
	Logger    *slog.Logger
}

// NewIngestionService creates a new document ingestion service instance.
func NewIngestionService(params IngestionServiceParams) usecase.IngestionUsecase {
	return &ingestionService{
		stateRepo: params.StateRepo,
		txManager: params.TxManager,
		extractor: params.Extractor,
		advisor:   params.Advisor,
		logger:    params.Logger,
	}
}

// Ingest runs the document batch through the pipeline: per-file text
// extraction, one model pass over the combined content, then a transactional
// replacement of the provider's plans in the target state. A file that fails
// extraction is skipped; the batch only fails when every file does. Temp
// files are removed before returning, whatever the outcome.
func (s *ingestionService) Ingest(ctx context.Context, input usecase.IngestInput) (*usecase.IngestOutput, error) {
	if len(input.Documents) == 0 {
		return nil, domainerrors.ErrNoFilesUploaded
	}

	defer s.cleanupTempFiles(ctx, input.Documents)

	state, err := s.stateRepo.FindByID(ctx, input.StateID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrInvalidState
		}

		return nil, errors.Wrap(err, "failed to verify state")
	}

	// Step 1: extract text from each file.
	var (
		names    []string
		contents []*entity.DocumentContent
		details  []usecase.DocumentResult
	)
	for _, doc := range input.Documents {
		content, err := s.extractor.Extract(ctx, doc.TempPath, doc.OriginalName)
		if err != nil {
			s.logger.WarnContext(ctx, "Document extraction failed",
				slog.String("file", doc.OriginalName),
				slog.Any("error", err),
			)
			details = append(details, usecase.DocumentResult{
				File:   doc.OriginalName,
				Status: "failed",
				Error:  err.Error(),
			})

			continue
		}

		s.logger.DebugContext(ctx, "Document extracted",
			slog.String("file", doc.OriginalName),
			slog.String("size", util.FormatBytes(doc.Size)),
		)

		names = append(names, doc.OriginalName)
		contents = append(contents, content)
		details = append(details, usecase.DocumentResult{
			File:   doc.OriginalName,
			Status: "success",
		})
	}

	failed := len(input.Documents) - len(names)
	if len(names) == 0 {
		return nil, domainerrors.ErrAllExtractionsFailed
	}

	// Step 2: one model pass over the combined batch.
	combined, tables := extraction.CombineDocuments(names, contents)
	batchName := fmt.Sprintf("Combined_%d_files", len(names))

	extracted, err := s.advisor.ExtractPlans(ctx, batchName, combined, tables)
	if err != nil {
		s.logger.ErrorContext(ctx, "Model extraction failed",
			slog.Int("files", len(names)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAIExtractionFailed.WithDetails(err.Error())
	}

	// The admin's provider name only fills in for the fallback placeholder;
	// a provider the model actually identified wins.
	if input.ProviderName != "" && (extracted.UsedFallback || extracted.ProviderName == extraction.ProviderFallbackName) {
		extracted.ProviderName = input.ProviderName
	}

	// Step 3: replace the provider's plans for this state atomically.
	documentSource := strings.Join(names, ", ")
	plans := make([]*entity.Plan, 0, len(extracted.Plans))
	for _, p := range extracted.Plans {
		plans = append(plans, planFromExtraction(p, state.ID, documentSource))
	}

	var replaced int64
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		providerRepo := factory.NewProviderRepository()
		planRepo := factory.NewPlanRepository()

		provider, err := providerRepo.FindByName(ctx, extracted.ProviderName)
		if errors.Is(err, repository.ErrProviderNotFound) {
			provider = &entity.Provider{Name: extracted.ProviderName}
			if err := providerRepo.Create(ctx, provider); err != nil {
				return errors.Wrap(err, "failed to create provider")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find provider")
		}

		replaced, err = planRepo.DeleteByProviderAndState(ctx, provider.ID, state.ID)
		if err != nil {
			return errors.Wrap(err, "failed to clear existing plans")
		}

		for _, plan := range plans {
			plan.ProviderID = provider.ID
		}

		return planRepo.CreateBatch(ctx, plans)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Plan replacement transaction failed",
			slog.String("provider", extracted.ProviderName),
			slog.Uint64("stateId", uint64(state.ID)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPersistenceFailed.WithDetails(err.Error())
	}

	s.logger.InfoContext(ctx, "Document batch ingested",
		slog.String("provider", extracted.ProviderName),
		slog.String("state", state.Name),
		slog.Int("plansAdded", len(plans)),
		slog.Int64("plansReplaced", replaced),
		slog.Int("filesFailed", failed),
	)

	return &usecase.IngestOutput{
		ProviderName:    extracted.ProviderName,
		PlansAdded:      len(plans),
		PlansReplaced:   replaced,
		FilesSuccessful: len(names),
		FilesFailed:     failed,
		Details:         details,
		Plans:           plans,
	}, nil
}

// planFromExtraction turns one model-produced plan into a persistable
// entity.
func planFromExtraction(p entity.ExtractedPlan, stateID uint, documentSource string) *entity.Plan {
	return &entity.Plan{
		StateID:             stateID,
		Name:                p.PlanName,
		Type:                entity.PlanType(p.PlanType),
		MonthlyCost:         p.MonthlyCost,
		AnnualCost:          p.AnnualCost,
		Deductible:          p.Deductible,
		MaxCoverage:         p.MaxCoverage,
		CoverageType:        p.CoverageType,
		Features:            p.Features,
		EligibilityCriteria: p.EligibilityCriteria,
		Exclusions:          p.Exclusions,
		BenefitsTable:       p.BenefitsTable,
		AgeBandPricing:      p.AgeBandPricing,
		StructuredFeatures:  p.StructuredFeatures,
		DocumentSource:      documentSource,
		IsActive:            true,
	}
}

// cleanupTempFiles removes the staged uploads. Missing files are fine; a
// failed removal is only logged.
func (s *ingestionService) cleanupTempFiles(ctx context.Context, docs []usecase.UploadedDocument) {
	for _, doc := range docs {
		if doc.TempPath == "" {
			continue
		}
		if err := os.Remove(doc.TempPath); err != nil && !os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "Failed to remove temp file",
				slog.String("path", doc.TempPath),
				slog.Any("error", err),
			)
		}
	}
}
