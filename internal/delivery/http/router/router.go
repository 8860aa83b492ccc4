// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"profiled/internal/delivery/http/middleware"
	"profiled/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler  *handler.ProfileHandler
	UsernameHandler *handler.UsernameHandler
	PageHandler     *handler.PageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler  *handler.ProfileHandler
	usernameHandler *handler.UsernameHandler
	pageHandler     *handler.PageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:  params.ProfileHandler,
		usernameHandler: params.UsernameHandler,
		pageHandler:     params.PageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Pages. The host router middleware rewrites subdomain requests onto
	// /portfolio/:username before these routes are matched.
	e.GET("/", r.pageHandler.Landing)
	e.GET("/dashboard", r.pageHandler.Dashboard)
	e.GET("/dashboard/*", r.pageHandler.Dashboard)
	e.GET("/preview", r.pageHandler.Preview)
	e.GET("/preview/*", r.pageHandler.Preview)
	e.GET("/portfolio/:username", r.pageHandler.Portfolio)
	e.GET("/portfolio/:username/*", r.pageHandler.Portfolio)

	api := e.Group("/api")

	// Public profile data, keyed by username.
	api.GET("/portfolio/:username", r.profileHandler.GetPublicProfile)

	// Owner routes that require a valid session.
	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.RequireSession)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.DELETE("", r.profileHandler.DeleteProfile)
		profileGroup.POST("/publish", r.profileHandler.SetPublished)
		profileGroup.GET("/share/qr", r.profileHandler.ShareQR)
	}

	usernameGroup := api.Group("/username")
	usernameGroup.Use(r.authMiddleware.RequireSession)
	{
		usernameGroup.POST("/check", r.usernameHandler.CheckUsername)
	}
}
