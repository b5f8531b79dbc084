package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	Logger *logger.ZapLogger
	// DisableStack omits the stack trace from the log entry
	DisableStack bool
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zapLogger})
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) error {
	req := c.Request()

	operator := "anonymous"
	if v, ok := c.Get(appcontext.EchoOperatorKey).(string); ok && v != "" {
		operator = v
	}
	userType, _ := c.Get(appcontext.EchoUserTypeKey).(models.UserType)

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("caller", getCaller(5)),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("operator", operator),
		logger.String("user_type", string(userType)),
		logger.String("request_id", getRequestID(c)),
		logger.Any("headers", extractSafeHeaders(req.Header)),
	}
	if !config.DisableStack {
		fields = append(fields, logger.String("stack_trace", string(debug.Stack())))
	}
	config.Logger.Error("Panic recovered during request processing", fields...)

	if c.Response().Committed {
		return nil
	}
	return utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
}

func extractSafeHeaders(headers http.Header) map[string]string {
	safe := make(map[string]string)
	sensitiveHeaders := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
	}

	for name, values := range headers {
		if !sensitiveHeaders[strings.ToLower(name)] && len(values) > 0 {
			safe[name] = values[0]
		}
	}
	return safe
}

func getCaller(skip int) string {
	if pc, file, line, ok := runtime.Caller(skip); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
	return "unknown"
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
