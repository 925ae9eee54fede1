package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gig-booking-dashboard/internal/handler"
	"github.com/iliyamo/gig-booking-dashboard/internal/middleware"
	"github.com/iliyamo/gig-booking-dashboard/internal/model"
	"github.com/iliyamo/gig-booking-dashboard/internal/queue"
)

// RegisterAdmin registers admin endpoints under /v1/admin.
// All routes require a valid JWT and the admin role.  Reads are cached
// per resource; writes publish a data-changed event that drops them.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, cache *middleware.ResponseCache) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Customers ----
	customers := cache.For(queue.ResourceCustomers)
	g.POST("/customers", h.CreateCustomer)
	g.GET("/customers", h.ListCustomers, customers)
	g.GET("/customers/:id", h.GetCustomer, customers)
	g.DELETE("/customers/:id", h.DeleteCustomer)

	// ---- Venues ----
	g.POST("/venue-types", h.CreateVenueType)
	g.GET("/venue-types", h.ListVenueTypes, cache.For(queue.ResourceVenueTypes))
	venues := cache.For(queue.ResourceVenues)
	g.POST("/venues", h.CreateVenue)
	g.GET("/venues", h.ListVenues, venues)
	g.GET("/venues/:id", h.GetVenue, venues)

	// ---- Gigs ----
	gigs := cache.For(queue.ResourceGigs)
	g.POST("/gigs", h.CreateGig)
	g.GET("/gigs", h.ListGigs, gigs)
	g.GET("/gigs/:id", h.GetGig, gigs)
	g.GET("/gigs/:id/occurrences", h.ListGigOccurrences, gigs)

	// ---- DJs and roles ----
	g.POST("/djs", h.CreateDJ)
	g.GET("/djs", h.ListDJs, cache.For(queue.ResourceDJs))
	g.PUT("/users/:id/role", h.SetUserRole)

	// ---- Billing ----
	billing := cache.For(queue.ResourceBilling)
	g.GET("/billing/summary", h.BillingSummary, billing)
	g.GET("/billing/invoices", h.BillingInvoices, billing)
	g.GET("/billing/payouts", h.BillingPayouts, billing)
}
