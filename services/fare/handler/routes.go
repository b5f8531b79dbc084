package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/fare"
	httpHandler "github.com/urbancabz/console/services/fare/handler/http"
)

// Handler combines all handlers for the fare service
type Handler struct {
	fareHTTP *httpHandler.FareHandler
}

// NewHandler creates a new combined handler
func NewHandler(fareUC fare.FareUC) *Handler {
	return &Handler{
		fareHTTP: httpHandler.NewFareHandler(fareUC),
	}
}

// RegisterRoutes registers the fare routes. quoteLimit guards the quote endpoint,
// which fans out to the paid collaborators.
func (h *Handler) RegisterRoutes(api *echo.Group, quoteLimit echo.MiddlewareFunc) {
	fareGroup := api.Group("/fare")
	if quoteLimit != nil {
		fareGroup.POST("/quote", h.fareHTTP.Quote, quoteLimit)
	} else {
		fareGroup.POST("/quote", h.fareHTTP.Quote)
	}

	api.GET("/geo/reverse", h.fareHTTP.Reverse)
}
