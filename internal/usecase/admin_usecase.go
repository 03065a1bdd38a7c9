package usecase

import (
	"context"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/repository"

	"github.com/google/uuid"
)

// PlanTypeStat is one row of the plans-per-type breakdown.
type PlanTypeStat struct {
	PlanType string
	Count    int64
}

// PlanStateStat is one row of the plans-per-state breakdown.
type PlanStateStat struct {
	StateID   uint
	StateName string
	Count     int64
}

// PlatformStats is the admin dashboard overview.
type PlatformStats struct {
	TotalPlans     int64
	ActivePlans    int64
	TotalProviders int64
	TotalUsers     int64
	PlansByType    []PlanTypeStat
	PlansByState   []PlanStateStat
}

// ListPlansInput defines the optional filters for the administrative plan
// listing. IsActive nil means both active and inactive plans.
type ListPlansInput struct {
	StateID  uint
	IsActive *bool
	Limit    int
	Offset   int
}

// ListPlansOutput is one page of plans with pagination state.
type ListPlansOutput struct {
	Plans   []*entity.Plan
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}

// AdminUsecase defines the interface for administrative plan management.
type AdminUsecase interface {
	// ListPlans returns plans including inactive ones, newest first.
	ListPlans(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error)

	// UpdatePlan applies a partial update and returns the updated plan.
	// An empty patch is rejected.
	UpdatePlan(ctx context.Context, id uuid.UUID, patch repository.PlanPatch) (*entity.Plan, error)

	// DeletePlan deactivates a plan, or permanently removes it when hard is
	// set.
	DeletePlan(ctx context.Context, id uuid.UUID, hard bool) error

	// Stats aggregates the platform overview for the admin dashboard.
	Stats(ctx context.Context) (*PlatformStats, error)
}
