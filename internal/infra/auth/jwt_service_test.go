package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurai/config"
	"insurai/internal/domain/entity"
)

func newTestJWTConfig(expiry time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key-for-jwt-signing"
	cfg.Auth = &config.AuthConfig{TokenExpiry: expiry}
	return cfg
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "user@example.com", entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_AdminRole(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "admin@insurai.com", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "user@example.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "user@example.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc1, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	other := &config.Config{}
	other.SecretKey.Access = "a-completely-different-secret"
	other.Auth = &config.AuthConfig{TokenExpiry: time.Hour}
	svc2, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := svc1.GenerateToken(uuid.New(), "user@example.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc2.ValidateToken(token)
	assert.Error(t, err)
}
