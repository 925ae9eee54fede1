package handler

import (
    "context"
    "errors"
    "net/http"
    "net/mail"
    "strings"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/model"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
)

type customerReq struct {
    FullName       string                `json:"full_name"`
    BusinessName   *string               `json:"business_name"`
    Email          string                `json:"email"`
    Phone          string                `json:"phone"`
    BillingAddress *model.BillingAddress `json:"billing_address"`
}

// CreateCustomer handles POST /v1/admin/customers.
func (h *AdminHandler) CreateCustomer(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req customerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.FullName = strings.TrimSpace(req.FullName)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Phone = strings.TrimSpace(req.Phone)
    if req.FullName == "" || req.Email == "" || req.Phone == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name, email and phone are required"})
    }
    if _, err := mail.ParseAddress(req.Email); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
    }

    cust := &model.Customer{
        FullName:       req.FullName,
        BusinessName:   optString(req.BusinessName),
        Email:          req.Email,
        Phone:          req.Phone,
        BillingAddress: req.BillingAddress,
        CreatedBy:      &uid,
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    if err := h.Customers.Create(ctx, cust); err != nil {
        h.Log.Error("create customer", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create customer failed"})
    }
    h.changed(queue.ResourceCustomers, queue.ActionCreate, cust.ID, uid)
    return c.JSON(http.StatusCreated, cust)
}

// ListCustomers handles GET /v1/admin/customers.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    list, err := h.Customers.List(ctx)
    if err != nil {
        h.Log.Error("list customers", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list customers failed"})
    }
    return c.JSON(http.StatusOK, list)
}

// GetCustomer handles GET /v1/admin/customers/:id.
func (h *AdminHandler) GetCustomer(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    cust, err := h.Customers.GetByID(ctx, c.Param("id"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
        }
        h.Log.Error("get customer", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get customer failed"})
    }
    return c.JSON(http.StatusOK, cust)
}

// DeleteCustomer handles DELETE /v1/admin/customers/:id.  Customers with
// gigs cannot be deleted.
func (h *AdminHandler) DeleteCustomer(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id := c.Param("id")
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    switch err := h.Customers.Delete(ctx, id); {
    case errors.Is(err, repository.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": "customer has gigs"})
    case err != nil:
        h.Log.Error("delete customer", zap.String("id", id), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete customer failed"})
    }
    h.changed(queue.ResourceCustomers, queue.ActionDelete, id, uid)
    return c.NoContent(http.StatusNoContent)
}
