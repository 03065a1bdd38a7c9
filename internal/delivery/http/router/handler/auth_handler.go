// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"insurai/internal/delivery/http/middleware"
	"insurai/internal/delivery/http/response"
	"insurai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	StateID  uint   `json:"state_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		StateID:  req.StateID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		Token: output.Token,
		User:  toUserView(output.User),
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		Token: output.Token,
		User:  toUserView(output.User),
	}, "Login successful")
}

// Profile returns the authenticated user's account.
func (h *AuthHandler) Profile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile retrieved successfully")
}

// ListStates returns the emirate reference data for registration forms.
func (h *AuthHandler) ListStates(c echo.Context) error {
	states, err := h.uc.ListStates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*stateView, 0, len(states))
	for _, s := range states {
		views = append(views, toStateView(s))
	}

	return response.Success(c, http.StatusOK, views, "States retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
