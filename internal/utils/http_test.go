package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/urbancabz/console/internal/pkg/apperror"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Vehicle created",
			data:       map[string]interface{}{"id": "v-1", "name": "Innova Crysta"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newContext()

	err := ErrorResponseHandler(c, http.StatusBadRequest, "Invalid request")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid request", response.Message)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		message  string
		hasField string
	}{
		{
			name:     "validation error lists fields",
			err:      apperror.NewValidationError("reason", "Cancellation reason is required"),
			status:   http.StatusBadRequest,
			message:  "Please correct the highlighted fields",
			hasField: "reason",
		},
		{
			name:    "business error is verbatim",
			err:     &apperror.BusinessError{StatusCode: http.StatusOK, Message: "Driver already on another trip"},
			status:  http.StatusUnprocessableEntity,
			message: "Driver already on another trip",
		},
		{
			name:    "network error",
			err:     fmt.Errorf("get bookings: %w", apperror.ErrNetwork),
			status:  http.StatusBadGateway,
			message: apperror.NetworkMessage,
		},
		{
			name:    "collaborator error is consolidated",
			err:     &apperror.CollaboratorError{Op: "route", Err: errors.New("NoRoute")},
			status:  http.StatusUnprocessableEntity,
			message: apperror.CollaboratorMessage,
		},
		{
			name:    "duplicate submission",
			err:     apperror.ErrActionInFlight,
			status:  http.StatusConflict,
			message: apperror.ErrActionInFlight.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			if tt.hasField != "" {
				assert.Contains(t, response.Fields, tt.hasField)
			} else {
				assert.Empty(t, response.Fields)
			}
		})
	}
}

func TestAppErrorResponse_UnauthorizedRedirectsToLogin(t *testing.T) {
	c, rec := newContext()
	c.Set(appcontext.EchoUserTypeKey, models.UserTypeBusiness)

	err := &apperror.BusinessError{StatusCode: http.StatusUnauthorized, Message: "Token expired"}
	assert.NoError(t, AppErrorResponse(c, err))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Token expired", response.Message)
	assert.Equal(t, "/business/login", response.Redirect)
}

func TestRedirectResponse(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, RedirectResponse(c, "", "/admin/login"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response.Message)
	assert.Equal(t, "/admin/login", response.Redirect)
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		respond  func(echo.Context, string) error
		status   int
		expected string
	}{
		{"bad request keeps message", BadRequestResponse, http.StatusBadRequest, ""},
		{"forbidden", ForbiddenResponse, http.StatusForbidden, "Forbidden"},
		{"too many requests", TooManyRequestsResponse, http.StatusTooManyRequests, "Too many requests"},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, tt.respond(c, ""))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expected, response.Message)
		})
	}
}
