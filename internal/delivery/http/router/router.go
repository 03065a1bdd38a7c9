// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"insurai/internal/delivery/http/middleware"
	"insurai/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router wires up,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PlanHandler    *handler.PlanHandler
	ChatHandler    *handler.ChatHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	authHandler    *handler.AuthHandler
	planHandler    *handler.PlanHandler
	chatHandler    *handler.ChatHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		planHandler:    params.PlanHandler,
		chatHandler:    params.ChatHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Profile, r.authMiddleware.Authenticate)
		authGroup.GET("/states", r.authHandler.ListStates)
	}

	// Plan browsing requires a signed-in user: the home state default
	// depends on who is asking.
	planGroup := api.Group("/plans")
	planGroup.Use(r.authMiddleware.Authenticate)
	{
		planGroup.GET("", r.planHandler.Search)
		planGroup.GET("/meta/types", r.planHandler.ListTypes)
		planGroup.GET("/:id", r.planHandler.GetByID)
	}

	// Advisor chat
	chatGroup := api.Group("/chat")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.POST("", r.chatHandler.SendMessage)
		chatGroup.GET("/history", r.chatHandler.History)
		chatGroup.DELETE("/history/:sessionId", r.chatHandler.DeleteSession)
		chatGroup.GET("/sessions", r.chatHandler.ListSessions)
	}

	// Administrative surface
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/upload-plans", r.adminHandler.UploadPlans)
		adminGroup.GET("/plans", r.adminHandler.ListPlans)
		adminGroup.PUT("/plans/:id", r.adminHandler.UpdatePlan)
		adminGroup.DELETE("/plans/:id", r.adminHandler.DeletePlan)
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
