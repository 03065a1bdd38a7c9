package impl

import (
	"context"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type planService struct {
	planRepo repository.PlanRepository
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	PlanRepo repository.PlanRepository
}

// NewPlanService creates a new plan browsing service instance.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{planRepo: params.PlanRepo}
}

// Search lists active plans matching the filters, cheapest first. When no
// state filter is given the requesting user's home state applies.
func (s *planService) Search(ctx context.Context, user *entity.User, input usecase.SearchPlansInput) (*usecase.SearchPlansOutput, error) {
	if input.PlanType != "" && !entity.PlanType(input.PlanType).IsValid() {
		return nil, domainerrors.ErrInvalidPlanType
	}

	stateID := input.StateID
	if stateID == 0 && user != nil {
		stateID = user.StateID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	plans, total, err := s.planRepo.Search(ctx, repository.PlanFilter{
		PlanType:      input.PlanType,
		StateID:       stateID,
		MaxDeductible: input.MaxDeductible,
		MaxCost:       input.MaxCost,
		MinCoverage:   input.MinCoverage,
		CoverageType:  input.CoverageType,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search plans")
	}

	return &usecase.SearchPlansOutput{
		Plans:   plans,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(plans)) < total,
	}, nil
}

// GetByID loads one active plan with its provider and state.
func (s *planService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	// Inactive plans are invisible outside the admin surface.
	if !plan.IsActive {
		return nil, domainerrors.ErrPlanNotFound
	}

	return plan, nil
}

// ListPlanTypes returns the valid plan type values.
func (s *planService) ListPlanTypes(_ context.Context) []entity.PlanType {
	return entity.PlanTypes
}
