package postgres

import (
	"context"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindByID retrieves a provider by its unique ID.
func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	return toProviderDomain(&providerM), nil
}

// FindByName retrieves a provider by its exact, case-sensitive name.
func (repo *providerRepository) FindByName(ctx context.Context, name string) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by name")
	}

	return toProviderDomain(&providerM), nil
}

// Create persists a new provider.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// CountAll returns the total number of providers.
func (repo *providerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count providers")
	}

	return count, nil
}

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:          data.ID,
		Name:        data.Name,
		LogoURL:     data.LogoURL,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:          data.ID,
		Name:        data.Name,
		LogoURL:     data.LogoURL,
		Description: data.Description,
	}
}
