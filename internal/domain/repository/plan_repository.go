package repository

import (
	"context"
	"errors"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a plan is not found.
var ErrPlanNotFound = errors.New("plan not found")

// PlanFilter holds the optional criteria for searching active plans.
// Zero-valued fields are ignored.
type PlanFilter struct {
	PlanType      string
	StateID       uint
	MaxDeductible *float64
	MaxCost       *float64
	MinCoverage   *float64
	CoverageType  string // Case-insensitive substring match.
	Limit         int
	Offset        int
}

// PlanPatch holds the fields of a partial plan update. Nil fields are left
// untouched.
type PlanPatch struct {
	PlanName     *string
	MonthlyCost  *float64
	AnnualCost   *float64
	Deductible   *float64
	MaxCoverage  *float64
	CoverageType *string
	Features     []string
	IsActive     *bool
}

// IsEmpty reports whether the patch carries no changes at all.
func (p PlanPatch) IsEmpty() bool {
	return p.PlanName == nil && p.MonthlyCost == nil && p.AnnualCost == nil &&
		p.Deductible == nil && p.MaxCoverage == nil && p.CoverageType == nil &&
		p.Features == nil && p.IsActive == nil
}

// AdminPlanFilter holds the optional criteria for the administrative plan
// listing. Zero-valued fields are ignored; IsActive nil means both states.
type AdminPlanFilter struct {
	StateID  uint
	IsActive *bool
	Limit    int
	Offset   int
}

// PlanTypeCount is one row of the plans-per-type aggregation.
type PlanTypeCount struct {
	PlanType string
	Count    int64
}

// PlanStateCount is one row of the plans-per-state aggregation.
type PlanStateCount struct {
	StateID   uint
	StateName string
	Count     int64
}

// PlanRepository defines the interface for insurance plan persistence.
type PlanRepository interface {
	// Search retrieves active plans matching the filter, ordered by monthly
	// cost ascending, together with the total match count before pagination.
	// Provider and state associations are preloaded.
	Search(ctx context.Context, filter PlanFilter) ([]*entity.Plan, int64, error)

	// FindByID retrieves a single plan by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// FindAllForAdmin retrieves plans including inactive ones, newest first,
	// together with the total match count before pagination.
	FindAllForAdmin(ctx context.Context, filter AdminPlanFilter) ([]*entity.Plan, int64, error)

	// CreateBatch persists a batch of new plans.
	CreateBatch(ctx context.Context, plans []*entity.Plan) error

	// Update applies a partial update to a plan.
	Update(ctx context.Context, id uuid.UUID, patch PlanPatch) error

	// Deactivate soft-deletes a plan by clearing its active flag.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Delete permanently removes a plan.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProviderAndState removes all plans for a provider within a
	// state and returns the number of rows deleted. Document ingestion uses
	// this to replace a provider's catalog atomically.
	DeleteByProviderAndState(ctx context.Context, providerID uuid.UUID, stateID uint) (int64, error)

	// CountAll returns the total number of plans, including inactive ones.
	CountAll(ctx context.Context) (int64, error)

	// CountActive returns the number of active plans.
	CountActive(ctx context.Context) (int64, error)

	// CountByType aggregates active plans per plan type.
	CountByType(ctx context.Context) ([]PlanTypeCount, error)

	// CountByState aggregates active plans per state.
	CountByState(ctx context.Context) ([]PlanStateCount, error)
}
