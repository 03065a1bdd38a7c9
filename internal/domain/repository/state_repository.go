package repository

import (
	"context"
	"errors"

	"insurai/internal/domain/entity"
)

// ErrStateNotFound is returned when a state (emirate) is not found.
var ErrStateNotFound = errors.New("state not found")

// StateRepository defines read operations for the fixed emirate reference data.
type StateRepository interface {
	// FindByID retrieves a single state by its numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.State, error)

	// FindAll retrieves all states ordered by ID.
	FindAll(ctx context.Context) ([]*entity.State, error)
}
