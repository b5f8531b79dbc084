package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/identity"
	httpHandler "github.com/urbancabz/console/services/identity/handler/http"
)

// Handler combines all handlers for the identity service
type Handler struct {
	sessionHTTP *httpHandler.SessionHandler
}

// NewHandler creates a new combined handler
func NewHandler(sessionUC identity.SessionUC, identityUC identity.IdentityUC) *Handler {
	return &Handler{
		sessionHTTP: httpHandler.NewSessionHandler(sessionUC, identityUC),
	}
}

// RegisterPublicRoutes registers the session routes that work without a live token
func (h *Handler) RegisterPublicRoutes(api *echo.Group) {
	api.POST("/session", h.sessionHTTP.Login)
	api.GET("/session", h.sessionHTTP.Session)
	api.DELETE("/session", h.sessionHTTP.Logout)
}

// RegisterRoutes registers the routes that need a live session
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/admin/me", h.sessionHTTP.Me)
}
