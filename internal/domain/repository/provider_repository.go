package repository

import (
	"context"
	"errors"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderNotFound is returned when a provider is not found.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines the interface for insurance provider persistence.
type ProviderRepository interface {
	// FindByID retrieves a provider by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// FindByName retrieves a provider by its exact, case-sensitive name.
	FindByName(ctx context.Context, name string) (*entity.Provider, error)

	// Create persists a new provider.
	Create(ctx context.Context, provider *entity.Provider) error

	// CountAll returns the total number of providers.
	CountAll(ctx context.Context) (int64, error)
}
