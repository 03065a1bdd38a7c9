// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. New
// accounts always get the regular user role.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	StateID  uint
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GetUser loads a user by ID. The auth middleware uses it to resolve
	// the token subject against current database state on every request.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListStates returns the emirate reference data for registration forms.
	ListStates(ctx context.Context) ([]*entity.State, error)
}
