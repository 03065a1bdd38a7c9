package middleware

import (
	"insurai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CurrentUser returns the authenticated user stored by Authenticate, or nil
// on unauthenticated routes.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return user
	}

	return nil
}

// CurrentUserID returns the authenticated user's ID, or uuid.Nil.
func CurrentUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
