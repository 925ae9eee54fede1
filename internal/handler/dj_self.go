package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/billing"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
)

// DJHandler serves the screens of a signed-in DJ.  Every query is scoped
// to the caller's own user ID.
type DJHandler struct {
    Assignments *repository.AssignmentRepo
    Log         *zap.Logger
}

func NewDJHandler(a *repository.AssignmentRepo, log *zap.Logger) *DJHandler {
    return &DJHandler{Assignments: a, Log: log}
}

// Schedule handles GET /v1/dj/schedule.
func (h *DJHandler) Schedule(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    entries, err := h.Assignments.ScheduleForDJ(ctx, uid)
    if err != nil {
        h.Log.Error("dj schedule", zap.String("dj_id", uid), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load schedule failed"})
    }
    return c.JSON(http.StatusOK, entries)
}

// Payouts handles GET /v1/dj/payouts.
func (h *DJHandler) Payouts(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    lines, err := h.Assignments.ListPayoutsForDJ(ctx, uid)
    if err != nil {
        h.Log.Error("dj payouts", zap.String("dj_id", uid), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load payouts failed"})
    }
    total, err := billing.SumPayoutLines(lines)
    if err != nil {
        h.Log.Error("dj payouts total", zap.String("dj_id", uid), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payout data is malformed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"payouts": lines, "total": total})
}
