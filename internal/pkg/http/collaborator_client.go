package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/urbancabz/console/internal/pkg/circuitbreaker"
	"github.com/urbancabz/console/internal/pkg/logger"
)

// CollaboratorClient calls third-party JSON services (geocoding, routing) behind a
// circuit breaker per host. Failures surface immediately; there is no retry.
type CollaboratorClient struct {
	client         *nethttp.Client
	circuitManager *circuitbreaker.Manager
	userAgent      string
}

// NewCollaboratorClient creates a collaborator client
func NewCollaboratorClient(log *logger.ZapLogger, timeout time.Duration, userAgent string) *CollaboratorClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CollaboratorClient{
		client:         &nethttp.Client{Timeout: timeout},
		circuitManager: circuitbreaker.NewManager(log),
		userAgent:      userAgent,
	}
}

// GetJSON fetches url and decodes the JSON body into result
func (c *CollaboratorClient) GetJSON(ctx context.Context, url string, result interface{}) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	name := req.URL.Host
	if name == "" {
		name = "unknown"
	}

	return c.circuitManager.Execute(ctx, name, func(ctx context.Context) error {
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= nethttp.StatusBadRequest {
			_, _ = io.Copy(io.Discard, resp.Body)
			return &HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
		}

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode %s response: %w", name, err)
		}
		return nil
	})
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (c *CollaboratorClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

// HTTPError is a non-2xx answer from a collaborator
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("collaborator answered %d: %s", e.StatusCode, e.Message)
}
