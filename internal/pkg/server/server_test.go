package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
)

func TestNewEcho_Middleware(t *testing.T) {
	e := NewEcho(models.ServerConfig{AllowedOrigins: []string{"https://console.urbancabz.in"}}, logger.NewNopLogger())
	e.GET("/boom", func(c echo.Context) error { panic("boom") })
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	t.Run("request id and CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(echo.HeaderOrigin, "https://console.urbancabz.in")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "https://console.urbancabz.in", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	e := NewEcho(models.ServerConfig{}, logger.NewNopLogger())
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 2})

	var cleaned bool
	gs.OnShutdown(func(context.Context) error {
		cleaned = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, cleaned)
}

func TestGracefulServer_RunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port})

	err = gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	sm := NewShutdownManager(nil)
	var order []string

	sm.Register(func(context.Context) error {
		order = append(order, "syncer")
		return nil
	})
	sm.Register(nil)
	sm.Register(func(context.Context) error {
		order = append(order, "nats")
		return errors.New("already closed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, "redis")
		return nil
	})

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"syncer", "nats", "redis"}, order)
}
