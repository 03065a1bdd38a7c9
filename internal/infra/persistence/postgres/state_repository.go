package postgres

import (
	"context"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/repository"
	"insurai/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stateRepository implements the repository.StateRepository interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

// FindByID retrieves a single state by its numeric ID.
func (repo *stateRepository) FindByID(ctx context.Context, id uint) (*entity.State, error) {
	var stateM model.StateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by id")
	}

	return toStateDomain(&stateM), nil
}

// FindAll retrieves all states ordered by ID.
func (repo *stateRepository) FindAll(ctx context.Context) ([]*entity.State, error) {
	var stateModels []*model.StateModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&stateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	states := make([]*entity.State, 0, len(stateModels))
	for _, stateM := range stateModels {
		states = append(states, toStateDomain(stateM))
	}

	return states, nil
}

// toStateDomain converts a GORM StateModel to a domain State entity.
func toStateDomain(data *model.StateModel) *entity.State {
	if data == nil {
		return nil
	}

	return &entity.State{
		ID:   data.ID,
		Name: data.Name,
		Code: data.Code,
	}
}
