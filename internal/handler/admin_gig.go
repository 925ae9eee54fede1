package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/database"
    "github.com/iliyamo/gig-booking-dashboard/internal/model"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
    "github.com/iliyamo/gig-booking-dashboard/internal/recurrence"
    "github.com/iliyamo/gig-booking-dashboard/internal/repository"
)

type gigReq struct {
    CustomerID      string          `json:"customer_id"`
    VenueID         string          `json:"venue_id"`
    StartDatetime   string          `json:"start_datetime"`
    EndDatetime     string          `json:"end_datetime"`
    QuotedAmount    decimal.Decimal `json:"quoted_amount"`
    IsRecurring     bool            `json:"is_recurring"`
    Frequency       *string         `json:"frequency"`
    RecurrenceCount *int            `json:"recurrence_count"`
}

type gigSeriesResp struct {
    Gig         model.Gig   `json:"gig"`
    Occurrences []model.Gig `json:"occurrences"`
    Created     int         `json:"created"`
}

// buildGig validates req and returns the parent gig.  The returned message
// is meant for the client.
func (h *AdminHandler) buildGig(req gigReq, uid string) (model.Gig, string) {
    req.CustomerID = strings.TrimSpace(req.CustomerID)
    req.VenueID = strings.TrimSpace(req.VenueID)
    if req.CustomerID == "" || req.VenueID == "" {
        return model.Gig{}, "customer_id and venue_id are required"
    }
    start, err := parseFormTime(req.StartDatetime, h.Cfg.Location)
    if err != nil {
        return model.Gig{}, "invalid start_datetime"
    }
    end, err := parseFormTime(req.EndDatetime, h.Cfg.Location)
    if err != nil {
        return model.Gig{}, "invalid end_datetime"
    }
    if !end.After(start) {
        return model.Gig{}, "end_datetime must be after start_datetime"
    }
    if req.QuotedAmount.IsNegative() {
        return model.Gig{}, "quoted_amount must not be negative"
    }

    g := model.Gig{
        ID:           uuid.NewString(),
        CustomerID:   req.CustomerID,
        VenueID:      req.VenueID,
        StartAt:      start,
        EndAt:        end,
        QuotedAmount: req.QuotedAmount,
        Status:       model.GigStatusDraft,
        IsRecurring:  req.IsRecurring,
        CreatedBy:    &uid,
    }
    if !req.IsRecurring {
        return g, ""
    }
    if req.Frequency == nil || !model.Frequency(*req.Frequency).Valid() {
        return model.Gig{}, "frequency must be weekly, bi-weekly or monthly"
    }
    if req.RecurrenceCount == nil || *req.RecurrenceCount < 2 {
        return model.Gig{}, "recurrence_count must be at least 2"
    }
    freq := model.Frequency(*req.Frequency)
    count := *req.RecurrenceCount
    g.Frequency, g.RecurrenceCount = &freq, &count
    return g, ""
}

// CreateGig handles POST /v1/admin/gigs.  A recurring gig is stored with
// all of its occurrences or not at all.
func (h *AdminHandler) CreateGig(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req gigReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    parent, msg := h.buildGig(req, uid)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    occurrences := []model.Gig{}
    if parent.IsRecurring {
        for _, o := range recurrence.Expand(recurrence.Parent{
            ID:           parent.ID,
            CustomerID:   parent.CustomerID,
            VenueID:      parent.VenueID,
            Start:        parent.StartAt,
            End:          parent.EndAt,
            QuotedAmount: parent.QuotedAmount,
            Frequency:    *parent.Frequency,
            Count:        *parent.RecurrenceCount,
        }) {
            occurrences = append(occurrences, o.Gig(&uid))
        }
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    if err := h.Gigs.CreateSeries(ctx, &parent, occurrences); err != nil {
        if database.IsForeignKey(err) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customer_id or venue_id"})
        }
        h.Log.Error("create gig series", zap.Int("occurrences", len(occurrences)), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "gig series not created", "created": 0})
    }

    h.changed(queue.ResourceGigs, queue.ActionCreate, parent.ID, uid)
    return c.JSON(http.StatusCreated, gigSeriesResp{
        Gig:         parent,
        Occurrences: occurrences,
        Created:     1 + len(occurrences),
    })
}

// ListGigs handles GET /v1/admin/gigs.
func (h *AdminHandler) ListGigs(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    list, err := h.Gigs.List(ctx)
    if err != nil {
        h.Log.Error("list gigs", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list gigs failed"})
    }
    return c.JSON(http.StatusOK, list)
}

// GetGig handles GET /v1/admin/gigs/:id.
func (h *AdminHandler) GetGig(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    g, err := h.Gigs.GetByID(ctx, c.Param("id"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "gig not found"})
        }
        h.Log.Error("get gig", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get gig failed"})
    }
    return c.JSON(http.StatusOK, g)
}

// ListGigOccurrences handles GET /v1/admin/gigs/:id/occurrences.
func (h *AdminHandler) ListGigOccurrences(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
    defer cancel()
    id := c.Param("id")
    if _, err := h.Gigs.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "gig not found"})
        }
        h.Log.Error("get gig", zap.String("gig_id", id), zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get gig failed"})
    }
    list, err := h.Gigs.ListOccurrences(ctx, id)
    if err != nil {
        h.Log.Error("list occurrences", zap.Error(err))
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list occurrences failed"})
    }
    return c.JSON(http.StatusOK, list)
}
