package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"
)

// RequestLogger writes one structured line per request.  5xx responses
// are logged at error level, 4xx at warn and the rest at info.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                // Let Echo's error handler set the status before we read it.
                c.Error(err)
            }
            req, res := c.Request(), c.Response()
            fields := []zap.Field{
                zap.String("method", req.Method),
                zap.String("route", c.Path()),
                zap.String("uri", req.RequestURI),
                zap.Int("status", res.Status),
                zap.Duration("latency", time.Since(start)),
                zap.String("remote_ip", c.RealIP()),
                zap.String("user_id", userID(c)),
            }
            if err != nil {
                fields = append(fields, zap.Error(err))
            }
            switch {
            case res.Status >= 500:
                log.Error("request", fields...)
            case res.Status >= 400:
                log.Warn("request", fields...)
            default:
                log.Info("request", fields...)
            }
            return nil
        }
    }
}
