package impl

import (
	"context"
	"testing"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo, states *fakeStateRepo, hasher *fakeHasher, tokens *fakeTokens) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:  users,
		StateRepo: states,
		Hasher:    hasher,
		Tokens:    tokens,
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	out, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "  Ahmed@Example.COM ",
		Password: "Secret@123",
		FullName: " Ahmed Hassan ",
		StateID:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "ahmed@example.com", out.User.Email)
	assert.Equal(t, "Ahmed Hassan", out.User.FullName)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, uint(2), out.User.StateID)
	require.NotNil(t, out.User.State)
	assert.Equal(t, "Dubai", out.User.State.Name)
	assert.NotEmpty(t, out.Token)

	stored, ok := users.users["ahmed@example.com"]
	require.True(t, ok)
	assert.Equal(t, "hashed:Secret@123", stored.PasswordHash)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   usecase.RegisterInput
		wantErr error
	}{
		{
			name:    "invalid email",
			input:   usecase.RegisterInput{Email: "not-an-email", Password: "Secret@123", FullName: "A", StateID: 1},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing full name",
			input:   usecase.RegisterInput{Email: "a@b.com", Password: "Secret@123", FullName: "  ", StateID: 1},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown state",
			input:   usecase.RegisterInput{Email: "a@b.com", Password: "Secret@123", FullName: "A", StateID: 99},
			wantErr: domainerrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newAuthService(newFakeUserRepo(), newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

			_, err := svc.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RegisterWeakPassword(t *testing.T) {
	t.Parallel()

	hasher := &fakeHasher{strengthErr: domainerrors.ErrPasswordTooShort}
	svc := newAuthService(newFakeUserRepo(), newFakeStateRepo(), hasher, &fakeTokens{})

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "short",
		FullName: "A",
		StateID:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	input := usecase.RegisterInput{Email: "a@b.com", Password: "Secret@123", FullName: "A", StateID: 1}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "Secret@123",
		FullName: "A",
		StateID:  1,
	})
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), usecase.LoginInput{Email: "A@B.com", Password: "Secret@123"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", out.User.Email)
	assert.NotEmpty(t, out.Token)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "Secret@123",
		FullName: "A",
		StateID:  1,
	})
	require.NoError(t, err)

	// Unknown email and wrong password surface the same error.
	_, err = svc.Login(context.Background(), usecase.LoginInput{Email: "nobody@b.com", Password: "Secret@123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), usecase.LoginInput{Email: "a@b.com", Password: "Wrong@123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GetUser(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	out, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "Secret@123",
		FullName: "A",
		StateID:  1,
	})
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, got.ID)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ListStates(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), newFakeStateRepo(), &fakeHasher{}, &fakeTokens{})

	states, err := svc.ListStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "Abu Dhabi", states[0].Name)
}
