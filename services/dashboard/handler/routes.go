package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/dashboard"
	httpHandler "github.com/urbancabz/console/services/dashboard/handler/http"
	natsHandler "github.com/urbancabz/console/services/dashboard/handler/nats"
)

// Handler combines all handlers for the dashboard service
type Handler struct {
	dashboardHTTP *httpHandler.DashboardHandler
	refreshNATS   *natsHandler.RefreshHandler
}

// NewHandler creates a new combined handler
func NewHandler(dashboardUC dashboard.DashboardUC, streamer httpHandler.Streamer) *Handler {
	return &Handler{
		dashboardHTTP: httpHandler.NewDashboardHandler(dashboardUC, streamer),
		refreshNATS:   natsHandler.NewRefreshHandler(dashboardUC),
	}
}

// RegisterRoutes registers the dashboard routes behind adminOnly
func (h *Handler) RegisterRoutes(api *echo.Group, adminOnly echo.MiddlewareFunc) {
	dashboardGroup := api.Group("/dashboard", adminOnly)
	dashboardGroup.POST("/resync", h.dashboardHTTP.Resync)
	dashboardGroup.GET("/stream", h.dashboardHTTP.Stream)
	dashboardGroup.GET("/:collection", h.dashboardHTTP.List)
	dashboardGroup.GET("/:collection/export.xlsx", h.dashboardHTTP.Export)
}

// InitNATSConsumers subscribes to refresh notices from other console instances
func (h *Handler) InitNATSConsumers(client natsHandler.Subscriber) error {
	return h.refreshNATS.InitNATSConsumers(client)
}
