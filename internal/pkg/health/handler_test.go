package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/database"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	e.GET("/ping", NewPingHandler("console"))

	rec := serve(e, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "console", info.ServiceName)
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints_Healthy(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer redisClient.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	svc := NewHealthService(nil)
	svc.AddChecker("redis", NewRedisHealthChecker(redisClient))
	svc.AddChecker("api", NewUpstreamHealthChecker(upstream.URL))
	svc.AddChecker("nats", NewNATSHealthChecker(nil))

	e := echo.New()
	RegisterHealthEndpoints(e, "console", "1.0.0", svc)

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/ready").Code)

	rec := serve(e, "/health/detailed")
	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Len(t, response.Dependencies, 3)
	assert.Equal(t, []string{"api", "nats", "redis"}, svc.Names())
}

func TestRegisterHealthEndpoints_Unhealthy(t *testing.T) {
	svc := NewHealthService(nil)
	svc.AddChecker("api", CheckerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	e := echo.New()
	RegisterHealthEndpoints(e, "console", "1.0.0", svc)

	rec := serve(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, "connection refused", response.Dependencies["api"].Error)

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
}

func TestUpstreamHealthChecker_Unreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	assert.Error(t, NewUpstreamHealthChecker(url).CheckHealth(context.Background()))
}
