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

// defaultAdminPageSize is the page size of the administrative plan listing
// when the request does not name one.
const defaultAdminPageSize = 100

type adminService struct {
	planRepo     repository.PlanRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	PlanRepo     repository.PlanRepository
	ProviderRepo repository.ProviderRepository
	UserRepo     repository.UserRepository
}

// NewAdminService creates a new administrative service instance.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		planRepo:     params.PlanRepo,
		providerRepo: params.ProviderRepo,
		userRepo:     params.UserRepo,
	}
}

// ListPlans returns plans including inactive ones, newest first.
func (s *adminService) ListPlans(ctx context.Context, input usecase.ListPlansInput) (*usecase.ListPlansOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultAdminPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	plans, total, err := s.planRepo.FindAllForAdmin(ctx, repository.AdminPlanFilter{
		StateID:  input.StateID,
		IsActive: input.IsActive,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return &usecase.ListPlansOutput{
		Plans:   plans,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(plans)) < total,
	}, nil
}

// UpdatePlan applies a partial update and returns the updated plan.
func (s *adminService) UpdatePlan(ctx context.Context, id uuid.UUID, patch repository.PlanPatch) (*entity.Plan, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	if err := s.planRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to update plan")
	}

	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload plan")
	}

	return plan, nil
}

// DeletePlan deactivates a plan, or permanently removes it when hard is set.
func (s *adminService) DeletePlan(ctx context.Context, id uuid.UUID, hard bool) error {
	var err error
	if hard {
		err = s.planRepo.Delete(ctx, id)
	} else {
		err = s.planRepo.Deactivate(ctx, id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return errors.Wrap(err, "failed to delete plan")
	}

	return nil
}

// Stats aggregates the platform overview for the admin dashboard.
func (s *adminService) Stats(ctx context.Context) (*usecase.PlatformStats, error) {
	totalPlans, err := s.planRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count plans")
	}
	activePlans, err := s.planRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active plans")
	}
	totalProviders, err := s.providerRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count providers")
	}
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	byType, err := s.planRepo.CountByType(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate plans by type")
	}
	byState, err := s.planRepo.CountByState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate plans by state")
	}

	stats := &usecase.PlatformStats{
		TotalPlans:     totalPlans,
		ActivePlans:    activePlans,
		TotalProviders: totalProviders,
		TotalUsers:     totalUsers,
		PlansByType:    make([]usecase.PlanTypeStat, 0, len(byType)),
		PlansByState:   make([]usecase.PlanStateStat, 0, len(byState)),
	}
	for _, row := range byType {
		stats.PlansByType = append(stats.PlansByType, usecase.PlanTypeStat{
			PlanType: row.PlanType,
			Count:    row.Count,
		})
	}
	for _, row := range byState {
		stats.PlansByState = append(stats.PlansByState, usecase.PlanStateStat{
			StateID:   row.StateID,
			StateName: row.StateName,
			Count:     row.Count,
		})
	}

	return stats, nil
}
