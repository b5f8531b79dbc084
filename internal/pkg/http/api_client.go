package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"time"

	"github.com/urbancabz/console/internal/pkg/apperror"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/envelope"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 15 * time.Second
	// maxBodySize caps how much of an API response is read
	maxBodySize = 10 << 20
)

// TokenSource resolves the stored bearer token for a user type
type TokenSource interface {
	Token(ctx context.Context, userType models.UserType) (string, error)
}

// APIClient talks to the Urban Cabz REST API. Every call carries the bearer token of
// the user type found in the request context and answers with the decoded envelope.
// It never retries.
type APIClient struct {
	client  *nethttp.Client
	baseURL string
	tokens  TokenSource
}

// NewAPIClient creates an API client. A nil TokenSource sends anonymous requests.
func NewAPIClient(config models.APIConfig, tokens TokenSource) *APIClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		client:  &nethttp.Client{Timeout: timeout},
		baseURL: config.BaseURL,
		tokens:  tokens,
	}
}

// BaseURL returns the API base URL
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON request and returns the response envelope
func (c *APIClient) Do(ctx context.Context, method, path string, body interface{}) (*envelope.Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, req)
}

// GetJSON performs a GET and decodes the envelope's data into result
func (c *APIClient) GetJSON(ctx context.Context, path string, result interface{}) error {
	return c.call(ctx, nethttp.MethodGet, path, nil, result)
}

// PostJSON performs a POST and decodes the envelope's data into result
func (c *APIClient) PostJSON(ctx context.Context, path string, body, result interface{}) error {
	return c.call(ctx, nethttp.MethodPost, path, body, result)
}

// PutJSON performs a PUT and decodes the envelope's data into result
func (c *APIClient) PutJSON(ctx context.Context, path string, body, result interface{}) error {
	return c.call(ctx, nethttp.MethodPut, path, body, result)
}

// PatchJSON performs a PATCH and decodes the envelope's data into result
func (c *APIClient) PatchJSON(ctx context.Context, path string, body, result interface{}) error {
	return c.call(ctx, nethttp.MethodPatch, path, body, result)
}

// DeleteJSON performs a DELETE and decodes the envelope's data into result
func (c *APIClient) DeleteJSON(ctx context.Context, path string, result interface{}) error {
	return c.call(ctx, nethttp.MethodDelete, path, nil, result)
}

// GetList performs a GET on a list endpoint and returns the unwrapped JSON array
func (c *APIClient) GetList(ctx context.Context, path, entity string) (json.RawMessage, error) {
	env, err := c.Do(ctx, nethttp.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return envelope.ListFromBody(env.Body, entity), nil
}

// GetObject performs a GET and decodes data.<entity>, or data itself, into result
func (c *APIClient) GetObject(ctx context.Context, path, entity string, result interface{}) error {
	env, err := c.Do(ctx, nethttp.MethodGet, path, nil)
	if err != nil {
		return err
	}
	env.Data = envelope.UnwrapObject(env.Data, entity)
	return decodeData(env, result)
}

// Upload sends one file as multipart/form-data
func (c *APIClient) Upload(ctx context.Context, path, field, filename string, content io.Reader, result interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, nethttp.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	env, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	return decodeData(env, result)
}

// Close is a no-op kept for interface compatibility
func (c *APIClient) Close() error {
	return nil
}

func (c *APIClient) call(ctx context.Context, method, path string, body, result interface{}) error {
	env, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeData(env, result)
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*nethttp.Request, error) {
	url := c.baseURL + path

	req, err := nethttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if requestID := appcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx, appcontext.GetUserType(ctx))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *APIClient) send(ctx context.Context, req *nethttp.Request) (*envelope.Envelope, error) {
	logger.Debug("Making API request",
		logger.String("method", req.Method),
		logger.String("url", req.URL.String()))

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("API request failed",
			logger.String("method", req.Method),
			logger.String("url", req.URL.String()),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", apperror.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", apperror.ErrNetwork, err)
	}

	env, err := envelope.Decode(raw)
	if err != nil {
		logger.Warn("API answered with an undecodable body",
			logger.String("url", req.URL.String()),
			logger.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("%w: %v", apperror.ErrNetwork, err)
	}

	if env.Failed() || resp.StatusCode >= nethttp.StatusBadRequest {
		message := env.Message
		if message == "" {
			message = nethttp.StatusText(resp.StatusCode)
		}
		return nil, &apperror.BusinessError{StatusCode: resp.StatusCode, Message: message}
	}

	logger.Debug("API request completed",
		logger.String("url", req.URL.String()),
		logger.Int("status_code", resp.StatusCode))

	return env, nil
}

func decodeData(env *envelope.Envelope, result interface{}) error {
	if result == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("%w: decode data: %v", apperror.ErrNetwork, err)
	}
	return nil
}

// IsUnauthorized reports whether the API rejected the bearer token
func IsUnauthorized(err error) bool {
	var berr *apperror.BusinessError
	if errors.As(err, &berr) {
		return berr.StatusCode == nethttp.StatusUnauthorized
	}
	return errors.Is(err, apperror.ErrUnauthenticated)
}
