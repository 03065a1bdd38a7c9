package impl

import (
	"context"
	"testing"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (usecase.AdminUsecase, *fakePlanRepo, *fakeProviderRepo, *fakeUserRepo) {
	plans := newFakePlanRepo()
	providers := newFakeProviderRepo()
	users := newFakeUserRepo()

	svc := NewAdminService(AdminServiceParams{
		PlanRepo:     plans,
		ProviderRepo: providers,
		UserRepo:     users,
	})

	return svc, plans, providers, users
}

func TestAdminService_ListPlansIncludesInactive(t *testing.T) {
	t.Parallel()

	svc, plans, _, _ := newAdminFixture()
	plans.plans = []*entity.Plan{
		{ID: uuid.New(), Name: "Active", IsActive: true},
		{ID: uuid.New(), Name: "Retired", IsActive: false},
	}

	got, err := svc.ListPlans(context.Background(), usecase.ListPlansInput{})
	require.NoError(t, err)
	assert.Len(t, got.Plans, 2)
	assert.Equal(t, int64(2), got.Total)
	assert.Equal(t, 100, got.Limit)
	assert.False(t, got.HasMore)
}

func TestAdminService_ListPlansFilters(t *testing.T) {
	t.Parallel()

	svc, plans, _, _ := newAdminFixture()
	plans.plans = []*entity.Plan{
		{ID: uuid.New(), Name: "Dubai Active", StateID: 2, IsActive: true},
		{ID: uuid.New(), Name: "Dubai Retired", StateID: 2, IsActive: false},
		{ID: uuid.New(), Name: "Abu Dhabi Active", StateID: 1, IsActive: true},
	}

	active := true
	got, err := svc.ListPlans(context.Background(), usecase.ListPlansInput{StateID: 2, IsActive: &active})
	require.NoError(t, err)
	require.Len(t, got.Plans, 1)
	assert.Equal(t, "Dubai Active", got.Plans[0].Name)

	// Pagination reports the remaining rows.
	got, err = svc.ListPlans(context.Background(), usecase.ListPlansInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got.Plans, 2)
	assert.Equal(t, int64(3), got.Total)
	assert.True(t, got.HasMore)
}

func TestAdminService_UpdatePlan(t *testing.T) {
	t.Parallel()

	svc, plans, _, _ := newAdminFixture()
	plan := &entity.Plan{ID: uuid.New(), Name: "Gold", IsActive: true}
	plans.plans = append(plans.plans, plan)

	name := "Gold Plus"
	cost := 450.0
	got, err := svc.UpdatePlan(context.Background(), plan.ID, repository.PlanPatch{
		PlanName:    &name,
		MonthlyCost: &cost,
	})
	require.NoError(t, err)

	assert.Equal(t, "Gold Plus", got.Name)
	require.NotNil(t, got.MonthlyCost)
	assert.Equal(t, 450.0, *got.MonthlyCost)
}

func TestAdminService_UpdatePlanEmptyPatch(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newAdminFixture()

	_, err := svc.UpdatePlan(context.Background(), uuid.New(), repository.PlanPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdatePlanNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newAdminFixture()

	name := "whatever"
	_, err := svc.UpdatePlan(context.Background(), uuid.New(), repository.PlanPatch{PlanName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestAdminService_DeletePlan(t *testing.T) {
	t.Parallel()

	svc, plans, _, _ := newAdminFixture()
	soft := &entity.Plan{ID: uuid.New(), Name: "Soft", IsActive: true}
	hard := &entity.Plan{ID: uuid.New(), Name: "Hard", IsActive: true}
	plans.plans = append(plans.plans, soft, hard)

	// Soft delete only clears the active flag.
	require.NoError(t, svc.DeletePlan(context.Background(), soft.ID, false))
	assert.False(t, soft.IsActive)
	assert.Len(t, plans.plans, 2)

	// Hard delete removes the row.
	require.NoError(t, svc.DeletePlan(context.Background(), hard.ID, true))
	assert.Len(t, plans.plans, 1)

	err := svc.DeletePlan(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestAdminService_Stats(t *testing.T) {
	t.Parallel()

	svc, plans, providers, users := newAdminFixture()

	require.NoError(t, providers.Create(context.Background(), &entity.Provider{Name: "GulfShield"}))
	users.users["a@b.com"] = &entity.User{ID: uuid.New(), Email: "a@b.com"}

	plans.plans = []*entity.Plan{
		{ID: uuid.New(), StateID: 1, Type: entity.PlanTypeHealth, IsActive: true},
		{ID: uuid.New(), StateID: 1, Type: entity.PlanTypeHealth, IsActive: true},
		{ID: uuid.New(), StateID: 2, Type: entity.PlanTypeAuto, IsActive: true},
		{ID: uuid.New(), StateID: 2, Type: entity.PlanTypeAuto, IsActive: false},
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalPlans)
	assert.Equal(t, int64(3), stats.ActivePlans)
	assert.Equal(t, int64(1), stats.TotalProviders)
	assert.Equal(t, int64(1), stats.TotalUsers)

	byType := map[string]int64{}
	for _, row := range stats.PlansByType {
		byType[row.PlanType] = row.Count
	}
	assert.Equal(t, int64(2), byType["Health"])
	assert.Equal(t, int64(1), byType["Auto"])

	byState := map[uint]int64{}
	for _, row := range stats.PlansByState {
		byState[row.StateID] = row.Count
	}
	assert.Equal(t, int64(2), byState[1])
	assert.Equal(t, int64(1), byState[2])
}
