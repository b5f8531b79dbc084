package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentConfig().EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newBufferLogger(&logBuffer)

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"panic_type",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"*errors.errorString",
			},
		},
		{
			name:         "panic with operator",
			panicValue:   "operator panic",
			expectInLogs: []string{"operator panic", "Priya", `"user_type":"admin"`},
			setupContext: func(c echo.Context) {
				c.Set(appcontext.EchoOperatorKey, "Priya")
				c.Set(appcontext.EchoUserTypeKey, models.UserTypeAdmin)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()
			e := echo.New()

			panicHandler := func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			}
			handler := PanicRecoveryWithZapMiddleware(zapLogger)(panicHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			req.Header.Set("Authorization", "Bearer secret-token")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "An unexpected error occurred while processing your request", response["message"])

			logOutput := logBuffer.String()
			for _, expectedLog := range tt.expectInLogs {
				assert.Contains(t, logOutput, expectedLog)
			}
			assert.Contains(t, logOutput, "/api/admin/bookings")
			assert.NotContains(t, logOutput, "secret-token")
		})
	}
}

func TestPanicRecoveryMiddleware_DisableStack(t *testing.T) {
	var logBuffer bytes.Buffer
	handler := PanicRecoveryMiddleware(PanicRecoveryConfig{
		Logger:       newBufferLogger(&logBuffer),
		DisableStack: true,
	})(func(c echo.Context) error { panic("quiet") })

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.NoError(t, handler(c))
	assert.NotContains(t, logBuffer.String(), "stack_trace")
}

func TestPanicRecoveryMiddleware_NoPanicPassesThrough(t *testing.T) {
	handler := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestExtractSafeHeaders(t *testing.T) {
	headers := http.Header{
		"Content-Type":  []string{"application/json"},
		"Authorization": []string{"Bearer secret"},
		"Cookie":        []string{"session=secret"},
		"X-Request-Id":  []string{"request-123"},
	}

	safe := extractSafeHeaders(headers)

	assert.Equal(t, "application/json", safe["Content-Type"])
	assert.Equal(t, "request-123", safe["X-Request-Id"])
	assert.NotContains(t, safe, "Authorization")
	assert.NotContains(t, safe, "Cookie")
}

func TestGetCaller(t *testing.T) {
	caller := getCaller(1)

	assert.Contains(t, caller, "panic_recovery_test.go")
	assert.Contains(t, caller, "TestGetCaller")
}
