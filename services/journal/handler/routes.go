package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/journal"
	httpHandler "github.com/urbancabz/console/services/journal/handler/http"
	nsqHandler "github.com/urbancabz/console/services/journal/handler/nsq"
)

// Handler combines all handlers for the journal service
type Handler struct {
	journalHTTP *httpHandler.JournalHandler
	journalNSQ  *nsqHandler.JournalHandler
}

// NewHandler creates a new combined handler
func NewHandler(journalUC journal.JournalUC) *Handler {
	return &Handler{
		journalHTTP: httpHandler.NewJournalHandler(journalUC),
		journalNSQ:  nsqHandler.NewJournalHandler(journalUC),
	}
}

// RegisterRoutes registers the journal routes
func (h *Handler) RegisterRoutes(api *echo.Group, adminOnly echo.MiddlewareFunc) {
	api.GET("/admin/journal", h.journalHTTP.List, adminOnly)
}

// Consumer exposes the NSQ handler for subscription at startup
func (h *Handler) Consumer() *nsqHandler.JournalHandler {
	return h.journalNSQ
}
