package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/pricing"
	httpHandler "github.com/urbancabz/console/services/pricing/handler/http"
)

// Handler combines all handlers for the pricing service
type Handler struct {
	pricingHTTP *httpHandler.PricingHandler
}

// NewHandler creates a new combined handler
func NewHandler(pricingUC pricing.PricingUC) *Handler {
	return &Handler{
		pricingHTTP: httpHandler.NewPricingHandler(pricingUC),
	}
}

// RegisterRoutes registers the pricing routes; changing settings needs adminOnly
func (h *Handler) RegisterRoutes(api *echo.Group, adminOnly echo.MiddlewareFunc) {
	pricingGroup := api.Group("/pricing")
	pricingGroup.GET("", h.pricingHTTP.GetSettings)
	pricingGroup.PUT("", h.pricingHTTP.UpdateSettings, adminOnly)
	pricingGroup.GET("/services", h.pricingHTTP.EnabledServices)
}
