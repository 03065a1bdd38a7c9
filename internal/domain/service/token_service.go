package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"insurai/internal/domain/entity"
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token carrying the user's identity
	// and role.
	GenerateToken(userID uuid.UUID, email string, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
