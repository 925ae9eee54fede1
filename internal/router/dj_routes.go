package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gig-booking-dashboard/internal/handler"
	"github.com/iliyamo/gig-booking-dashboard/internal/middleware"
	"github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// RegisterDJ registers the DJ self-service endpoints under /v1/dj.
// Responses depend on the caller, so none of them are cached.
func RegisterDJ(e *echo.Echo, h *handler.DJHandler, jwtSecret string) {
	g := e.Group(
		"/v1/dj",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleDJ),
	)
	g.GET("/schedule", h.Schedule)
	g.GET("/payouts", h.Payouts)
}
