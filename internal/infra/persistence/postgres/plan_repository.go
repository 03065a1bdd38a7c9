package postgres

import (
	"context"
	"encoding/json"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

// applyFilter narrows a query to the active plans matching the filter,
// without ordering or pagination so the same scope serves both the page
// query and the total count.
func (repo *planRepository) applyFilter(ctx context.Context, filter repository.PlanFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("is_active = ?", true)

	if filter.PlanType != "" {
		query = query.Where("plan_type = ?", filter.PlanType)
	}
	if filter.StateID != 0 {
		query = query.Where("state_id = ?", filter.StateID)
	}
	if filter.MaxDeductible != nil {
		query = query.Where("deductible <= ?", *filter.MaxDeductible)
	}
	if filter.MaxCost != nil {
		query = query.Where("monthly_cost <= ?", *filter.MaxCost)
	}
	if filter.MinCoverage != nil {
		query = query.Where("max_coverage >= ?", *filter.MinCoverage)
	}
	if filter.CoverageType != "" {
		query = query.Where("coverage_type ILIKE ?", "%"+filter.CoverageType+"%")
	}

	return query
}

// Search retrieves active plans matching the filter ordered by monthly cost,
// plus the total match count before pagination.
func (repo *planRepository) Search(ctx context.Context, filter repository.PlanFilter) ([]*entity.Plan, int64, error) {
	var total int64
	if err := repo.applyFilter(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count plans")
	}

	query := repo.applyFilter(ctx, filter).
		Preload("Provider").
		Preload("State").
		Order("monthly_cost ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var planModels []*model.PlanModel
	if err := query.Find(&planModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, total, nil
}

// FindByID retrieves a single plan by its unique ID, active or not.
func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Provider").
		Preload("State").
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	return toPlanDomain(&planM), nil
}

// applyAdminFilter narrows a query to the plans matching the administrative
// filter, without ordering or pagination so the same scope serves both the
// page query and the total count.
func (repo *planRepository) applyAdminFilter(ctx context.Context, filter repository.AdminPlanFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.PlanModel{})

	if filter.StateID != 0 {
		query = query.Where("state_id = ?", filter.StateID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}

// FindAllForAdmin retrieves plans including inactive ones, newest first, plus
// the total match count before pagination.
func (repo *planRepository) FindAllForAdmin(ctx context.Context, filter repository.AdminPlanFilter) ([]*entity.Plan, int64, error) {
	var total int64
	if err := repo.applyAdminFilter(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count plans")
	}

	query := repo.applyAdminFilter(ctx, filter).
		Preload("Provider").
		Preload("State").
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var planModels []*model.PlanModel
	if err := query.Find(&planModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, total, nil
}

// CreateBatch persists a batch of new plans.
func (repo *planRepository) CreateBatch(ctx context.Context, plans []*entity.Plan) error {
	if len(plans) == 0 {
		return nil
	}

	planModels := make([]*model.PlanModel, 0, len(plans))
	for _, plan := range plans {
		planModels = append(planModels, fromPlanDomain(plan))
	}

	if err := repo.db.WithContext(ctx).Create(&planModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("invalid provider or state reference")
		}
		if isRowConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("extracted plan rows violate schema constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plans")
	}

	for i, planM := range planModels {
		plans[i].ID = planM.ID
		plans[i].CreatedAt = planM.CreatedAt
		plans[i].UpdatedAt = planM.UpdatedAt
	}

	return nil
}

// Update applies a partial update to a plan.
func (repo *planRepository) Update(ctx context.Context, id uuid.UUID, patch repository.PlanPatch) error {
	updates := map[string]any{}
	if patch.PlanName != nil {
		updates["plan_name"] = *patch.PlanName
	}
	if patch.MonthlyCost != nil {
		updates["monthly_cost"] = *patch.MonthlyCost
	}
	if patch.AnnualCost != nil {
		updates["annual_cost"] = *patch.AnnualCost
	}
	if patch.Deductible != nil {
		updates["deductible"] = *patch.Deductible
	}
	if patch.MaxCoverage != nil {
		updates["max_coverage"] = *patch.MaxCoverage
	}
	if patch.CoverageType != nil {
		updates["coverage_type"] = *patch.CoverageType
	}
	if patch.Features != nil {
		updates["features"] = marshalJSONColumn(patch.Features, "[]")
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Deactivate soft-deletes a plan by clearing its active flag.
func (repo *planRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Delete permanently removes a plan.
func (repo *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlanModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// DeleteByProviderAndState removes all plans for a provider within a state.
func (repo *planRepository) DeleteByProviderAndState(ctx context.Context, providerID uuid.UUID, stateID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("provider_id = ? AND state_id = ?", providerID, stateID).
		Delete(&model.PlanModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete provider plans")
	}

	return result.RowsAffected, nil
}

// CountAll returns the total number of plans, including inactive ones.
func (repo *planRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count plans")
	}

	return count, nil
}

// CountActive returns the number of active plans.
func (repo *planRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active plans")
	}

	return count, nil
}

// CountByType aggregates active plans per plan type.
func (repo *planRepository) CountByType(ctx context.Context) ([]repository.PlanTypeCount, error) {
	var rows []repository.PlanTypeCount

	if err := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Select("plan_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("plan_type").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate plans by type")
	}

	return rows, nil
}

// CountByState aggregates active plans per state.
func (repo *planRepository) CountByState(ctx context.Context) ([]repository.PlanStateCount, error) {
	var rows []repository.PlanStateCount

	if err := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Select("plans.state_id, states.name AS state_name, COUNT(*) AS count").
		Joins("JOIN states ON states.id = plans.state_id").
		Where("plans.is_active = ?", true).
		Group("plans.state_id, states.name").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate plans by state")
	}

	return rows, nil
}

// --- Mapper Functions ---

// toPlanDomain converts a GORM PlanModel to a domain Plan entity,
// deserializing the JSON columns.
func toPlanDomain(data *model.PlanModel) *entity.Plan {
	if data == nil {
		return nil
	}

	plan := &entity.Plan{
		ID:                  data.ID,
		ProviderID:          data.ProviderID,
		StateID:             data.StateID,
		Provider:            toProviderDomain(data.Provider),
		State:               toStateDomain(data.State),
		Name:                data.PlanName,
		Type:                entity.PlanType(data.PlanType),
		MonthlyCost:         data.MonthlyCost,
		AnnualCost:          data.AnnualCost,
		Deductible:          data.Deductible,
		MaxCoverage:         data.MaxCoverage,
		CoverageType:        data.CoverageType,
		EligibilityCriteria: data.EligibilityCriteria,
		Exclusions:          data.Exclusions,
		BenefitsTable:       data.BenefitsTable,
		DocumentSource:      data.DocumentSource,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	// Unparseable JSON columns degrade to empty values rather than failing
	// the whole read.
	_ = json.Unmarshal([]byte(data.Features), &plan.Features)
	_ = json.Unmarshal([]byte(data.AgeBasedPricing), &plan.AgeBandPricing)
	if data.StructuredFeatures != "" && data.StructuredFeatures != "{}" {
		var sf entity.StructuredFeatures
		if err := json.Unmarshal([]byte(data.StructuredFeatures), &sf); err == nil {
			plan.StructuredFeatures = &sf
		}
	}

	return plan
}

// fromPlanDomain converts a domain Plan entity to a GORM PlanModel,
// serializing the JSON columns.
func fromPlanDomain(data *entity.Plan) *model.PlanModel {
	if data == nil {
		return nil
	}

	planM := &model.PlanModel{
		ID:                  data.ID,
		ProviderID:          data.ProviderID,
		StateID:             data.StateID,
		PlanName:            data.Name,
		PlanType:            data.Type.String(),
		MonthlyCost:         data.MonthlyCost,
		AnnualCost:          data.AnnualCost,
		Deductible:          data.Deductible,
		MaxCoverage:         data.MaxCoverage,
		CoverageType:        data.CoverageType,
		EligibilityCriteria: data.EligibilityCriteria,
		Exclusions:          data.Exclusions,
		BenefitsTable:       data.BenefitsTable,
		DocumentSource:      data.DocumentSource,
		IsActive:            data.IsActive,
	}

	planM.Features = marshalJSONColumn(data.Features, "[]")
	planM.AgeBasedPricing = marshalJSONColumn(data.AgeBandPricing, "[]")
	if data.StructuredFeatures != nil {
		planM.StructuredFeatures = marshalJSONColumn(data.StructuredFeatures, "{}")
	} else {
		planM.StructuredFeatures = "{}"
	}

	return planM
}

// marshalJSONColumn renders v as JSON text, falling back to the given empty
// literal when v is nil or fails to marshal.
func marshalJSONColumn(v any, empty string) string {
	if v == nil {
		return empty
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return empty
	}

	return string(raw)
}
