// Package middleware contains the HTTP middleware of the application.
package middleware

import (
	"strings"

	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/service"
	"insurai/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the Bearer token and resolves its subject against
// the database, so a deleted account stops working immediately even with a
// live token. The loaded user is stored on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		user, err := m.authUC.GetUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// RequireAdmin rejects requests from non-administrator accounts. It must be
// used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return domainerrors.ErrAdminRequired
		}

		return next(c)
	}
}
