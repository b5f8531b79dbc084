package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/internal/pkg/apperror"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	// Redirect is set on 401 so the UI can send the user to the right login page
	Redirect string `json:"redirect,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: errorMessage,
		Code:    statusCode,
	})
}

// AppErrorResponse renders err with the status and message its error class maps to
func AppErrorResponse(c echo.Context, err error) error {
	status := apperror.StatusCode(err)
	resp := ErrorResponse{
		Success: false,
		Message: apperror.Message(err),
		Code:    status,
	}
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		resp.Message = "Please correct the highlighted fields"
		resp.Fields = verr.Fields
	}
	if status == http.StatusUnauthorized {
		userType, ok := c.Get(appcontext.EchoUserTypeKey).(models.UserType)
		if !ok {
			userType = models.UserTypeAdmin
		}
		resp.Redirect = userType.LoginPath()
	}
	return c.JSON(status, resp)
}

// RedirectResponse sends a 401 carrying the login path to redirect to
func RedirectResponse(c echo.Context, errorMessage, redirect string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success:  false,
		Message:  errorMessage,
		Code:     http.StatusUnauthorized,
		Redirect: redirect,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Too many requests"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DocumentResponse streams a generated file as an attachment
func DocumentResponse(c echo.Context, doc *models.Document) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}
