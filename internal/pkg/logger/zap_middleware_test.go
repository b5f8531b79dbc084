package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{Logger: zap.New(core)}, logs
}

func TestZapEchoMiddleware_LogsSessionFields(t *testing.T) {
	zapLogger, logs := observedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(zapLogger))
	e.GET("/api/dashboard/bookings", func(c echo.Context) error {
		c.Set(appcontext.EchoOperatorKey, "priya@urbancabz.in")
		c.Set(appcontext.EchoUserTypeKey, models.UserTypeAdmin)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/bookings?q=airport", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "Request processed", entry.Message)
	assert.Equal(t, "priya@urbancabz.in", fields["operator"])
	assert.Equal(t, "admin", fields["user_type"])
	assert.Equal(t, "/api/dashboard/bookings?q=airport", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestZapEchoMiddleware_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		level   zapcore.Level
		message string
	}{
		{name: "unauthenticated", status: http.StatusUnauthorized, level: zapcore.InfoLevel, message: "Session required"},
		{name: "conflict", status: http.StatusConflict, level: zapcore.WarnLevel, message: "Client error"},
		{name: "upstream down", status: http.StatusBadGateway, level: zapcore.ErrorLevel, message: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zapLogger, logs := observedLogger()

			e := echo.New()
			e.Use(ZapEchoMiddleware(zapLogger))
			e.POST("/api/admin/bookings/:id/start", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/admin/bookings/bk-1/start", nil)
			e.ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, "anonymous", entry.ContextMap()["operator"])
		})
	}
}
