// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"regexp"
	"strings"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/domain/service"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailPattern is deliberately loose: one @ with something on both sides and
// a dot in the domain. Real validation happens when mail is delivered.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authService struct {
	userRepo  repository.UserRepository
	stateRepo repository.StateRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	StateRepo repository.StateRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:  params.UserRepo,
		stateRepo: params.StateRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
	}
}

// Register creates a new user account and signs them in. Registration never
// grants the admin role.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email format")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}
	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	state, err := s.stateRepo.FindByID(ctx, input.StateID)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrInvalidState
		}

		return nil, errors.Wrap(err, "failed to verify state")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hash failed")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         entity.RoleUser,
		StateID:      state.ID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user")
	}
	user.State = state

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GetUser loads a user by ID.
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListStates returns the emirate reference data.
func (s *authService) ListStates(ctx context.Context) ([]*entity.State, error) {
	states, err := s.stateRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}
