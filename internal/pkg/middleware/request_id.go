package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
)

// RequestIDMiddleware adds a unique request ID to each request. An inbound
// X-Request-ID is kept so the operator UI can correlate its own logs.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(string(appcontext.RequestIDKey), requestID)
			c.SetRequest(c.Request().WithContext(appcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
