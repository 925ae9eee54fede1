package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
)

// CreateVenueType handles POST /v1/admin/venue-types.
func (h *AdminHandler) CreateVenueType(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req struct {
        Name string `json:"name"`
    }
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    vt, err := h.Venues.CreateType(ctx, req.Name)
    if err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "venue type already exists"})
        }
        h.Log.Error("create venue type", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create venue type failed"})
    }
    h.changed(queue.ResourceVenueTypes, queue.ActionCreate, vt.ID, uid)
    return c.JSON(http.StatusCreated, vt)
}

// ListVenueTypes handles GET /v1/admin/venue-types.
func (h *AdminHandler) ListVenueTypes(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    list, err := h.Venues.ListTypes(ctx)
    if err != nil {
        h.Log.Error("list venue types", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list venue types failed"})
    }
    return c.JSON(http.StatusOK, list)
}

type venueReq struct {
    Name        string        `json:"name"`
    VenueTypeID *string       `json:"venue_type_id"`
    Address     model.Address `json:"address"`
}

// CreateVenue handles POST /v1/admin/venues.
func (h *AdminHandler) CreateVenue(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req venueReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    v := &model.Venue{
        Name:        req.Name,
        VenueTypeID: optString(req.VenueTypeID),
        Address:     req.Address,
        CreatedBy:   &uid,
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    if err := h.Venues.Create(ctx, v); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown venue_type_id"})
        }
        h.Log.Error("create venue", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create venue failed"})
    }
    h.changed(queue.ResourceVenues, queue.ActionCreate, v.ID, uid)
    return c.JSON(http.StatusCreated, v)
}

// ListVenues handles GET /v1/admin/venues.
func (h *AdminHandler) ListVenues(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    list, err := h.Venues.List(ctx)
    if err != nil {
        h.Log.Error("list venues", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list venues failed"})
    }
    return c.JSON(http.StatusOK, list)
}

// GetVenue handles GET /v1/admin/venues/:id.
func (h *AdminHandler) GetVenue(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    v, err := h.Venues.GetByID(ctx, c.Param("id"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
        }
        h.Log.Error("get venue", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get venue failed"})
    }
    return c.JSON(http.StatusOK, v)
}
