package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/internal/pkg/models"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// UserTypeKey selects which stored bearer token outbound API calls use
	UserTypeKey ContextKey = "user_type"
	// OperatorKey is the key for the acting operator's name in context
	OperatorKey ContextKey = "operator"
	// SessionIDKey identifies the browser session whose tokens a request uses
	SessionIDKey ContextKey = "session_id"
)

// Echo context keys set by the session middleware
const (
	EchoUserTypeKey  = "user_type"
	EchoOperatorKey  = "operator"
	EchoSessionIDKey = "session_id"
)

// A client presents its console session either as a cookie or as a header
const (
	SessionCookie   = "console_session"
	HeaderSessionID = "X-Session-ID"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithUserType adds the user type discriminator to the context
func WithUserType(ctx context.Context, userType models.UserType) context.Context {
	return context.WithValue(ctx, UserTypeKey, userType)
}

// GetUserType retrieves the user type, defaulting to admin for console calls
func GetUserType(ctx context.Context) models.UserType {
	if userType, ok := ctx.Value(UserTypeKey).(models.UserType); ok && userType.Valid() {
		return userType
	}
	return models.UserTypeAdmin
}

// WithOperator adds the acting operator's name to the context
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, OperatorKey, operator)
}

// GetOperator retrieves the acting operator's name from context
func GetOperator(ctx context.Context) string {
	if operator, ok := ctx.Value(OperatorKey).(string); ok && operator != "" {
		return operator
	}
	return "unknown"
}

// WithSessionID adds the client's session id to the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetSessionID retrieves the client's session id, empty when the client has none
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// RequestSessionID reads the session id the client presented, preferring the cookie
func RequestSessionID(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return c.Request().Header.Get(HeaderSessionID)
}

// FromEcho builds the request context carried into usecases and outbound calls
func FromEcho(c echo.Context) context.Context {
	ctx := c.Request().Context()

	ctx = WithRequestID(ctx, c.Response().Header().Get(echo.HeaderXRequestID))

	if userType, ok := c.Get(EchoUserTypeKey).(models.UserType); ok {
		ctx = WithUserType(ctx, userType)
	}
	if operator, ok := c.Get(EchoOperatorKey).(string); ok {
		ctx = WithOperator(ctx, operator)
	}
	if sessionID, ok := c.Get(EchoSessionIDKey).(string); ok {
		ctx = WithSessionID(ctx, sessionID)
	} else if sessionID := RequestSessionID(c); sessionID != "" {
		ctx = WithSessionID(ctx, sessionID)
	}
	return ctx
}
