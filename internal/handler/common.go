package handler // handler defines http handlers

import (
    "errors"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/gig-booking-dashboard/internal/middleware"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
)

// requestTimeout bounds the database work of one request.
const requestTimeout = 5 * time.Second

// ChangeNotifier receives an event after every successful write.
type ChangeNotifier interface {
    Notify(ev queue.DataChangedEvent)
}

// getUserID returns the authenticated user's ID set by JWTAuth.
func getUserID(c echo.Context) (string, error) {
    if s, ok := c.Get(middleware.CtxUserID).(string); ok && s != "" {
        return s, nil
    }
    return "", errors.New("invalid user_id in context")
}

// Accepted layouts for gig times.  RFC3339 carries its own offset; the
// datetime-local forms are read in the configured zone.
var localLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// parseFormTime parses an RFC3339 or datetime-local value.  The result is
// always in loc, so calendar offsets applied later keep the local
// wall-clock time across DST changes whatever form the client sent.
func parseFormTime(s string, loc *time.Location) (time.Time, error) {
    s = strings.TrimSpace(s)
    if loc == nil {
        loc = time.UTC
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t.In(loc), nil
    }
    for _, layout := range localLayouts {
        if t, err := time.ParseInLocation(layout, s, loc); err == nil {
            return t, nil
        }
    }
    return time.Time{}, errors.New("invalid datetime")
}

// optString trims s and returns nil when nothing is left.
func optString(s *string) *string {
    if s == nil {
        return nil
    }
    v := strings.TrimSpace(*s)
    if v == "" {
        return nil
    }
    return &v
}
