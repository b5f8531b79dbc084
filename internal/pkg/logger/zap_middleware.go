package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
)

// ZapEchoMiddleware logs every request with the operator and user type the
// session middleware resolved for it
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error response so the logged status is the real one
				c.Error(err)
			}

			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			entry := RequestLog{
				Method:    c.Request().Method,
				Path:      path,
				ClientIP:  c.RealIP(),
				Operator:  "anonymous",
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			}
			if operator, ok := c.Get(appcontext.EchoOperatorKey).(string); ok && operator != "" {
				entry.Operator = operator
			}
			if userType, ok := c.Get(appcontext.EchoUserTypeKey).(models.UserType); ok {
				entry.UserType = string(userType)
			}

			logger.LogHTTPRequest(entry)
			return nil
		}
	}
}
