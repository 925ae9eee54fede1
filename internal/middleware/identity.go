package middleware

import "github.com/labstack/echo/v4"

// userID returns the authenticated user's ID, or "anon" on public routes.
func userID(c echo.Context) string {
    if s, ok := c.Get(CtxUserID).(string); ok && s != "" {
        return s
    }
    return "anon"
}
