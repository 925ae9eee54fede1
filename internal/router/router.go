package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gig-booking-dashboard/internal/handler"
	"github.com/iliyamo/gig-booking-dashboard/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check backed by a database ping.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health(db))
}

// RegisterAuth registers all authentication‑related routes.  Session
// operations live under /v1/auth behind the rate limiter, while the
// endpoints describing the current user live under /v1 and only need a
// valid access token.  They are open to users without a role so that
// such users can learn they have nothing to see.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token and keeps the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout takes a refresh token, a bearer token, or both.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.GET("/navigation", a.Navigation)
}
