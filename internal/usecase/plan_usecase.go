package usecase

import (
	"context"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchPlansInput defines the optional filters for browsing active plans.
// A zero StateID falls back to the requesting user's home state.
type SearchPlansInput struct {
	PlanType      string
	StateID       uint
	MaxDeductible *float64
	MaxCost       *float64
	MinCoverage   *float64
	CoverageType  string
	Limit         int
	Offset        int
}

// SearchPlansOutput is one page of matching plans with pagination state.
type SearchPlansOutput struct {
	Plans   []*entity.Plan
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}

// PlanUsecase defines the interface for plan browsing operations.
type PlanUsecase interface {
	// Search lists active plans matching the filters, cheapest first.
	Search(ctx context.Context, user *entity.User, input SearchPlansInput) (*SearchPlansOutput, error)

	// GetByID loads one active plan with its provider and state.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// ListPlanTypes returns the valid plan type values.
	ListPlanTypes(ctx context.Context) []entity.PlanType
}
