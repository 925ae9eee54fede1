package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/billing"
)

// BillingSummary handles GET /v1/admin/billing/summary.
func (h *AdminHandler) BillingSummary(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    gigs, err := h.Gigs.ListAll(ctx)
    if err != nil {
        h.Log.Error("billing summary: load gigs", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load gigs failed"})
    }
    assignments, err := h.Assignments.ListAll(ctx)
    if err != nil {
        h.Log.Error("billing summary: load assignments", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load assignments failed"})
    }
    sum, err := billing.Summarize(gigs, assignments)
    if err != nil {
        h.Log.Error("billing summary", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "billing data is malformed"})
    }
    return c.JSON(http.StatusOK, sum)
}

// BillingInvoices handles GET /v1/admin/billing/invoices.
func (h *AdminHandler) BillingInvoices(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    lines, err := h.Gigs.ListInvoices(ctx)
    if err != nil {
        h.Log.Error("billing invoices", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list invoices failed"})
    }
    return c.JSON(http.StatusOK, lines)
}

// BillingPayouts handles GET /v1/admin/billing/payouts.
func (h *AdminHandler) BillingPayouts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    lines, err := h.Assignments.ListPayouts(ctx)
    if err != nil {
        h.Log.Error("billing payouts", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payouts failed"})
    }
    return c.JSON(http.StatusOK, lines)
}
