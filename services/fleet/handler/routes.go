package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/fleet"
	httpHandler "github.com/urbancabz/console/services/fleet/handler/http"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
}

// NewHandler creates a new combined handler
func NewHandler(fleetUC fleet.FleetUC) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
	}
}

// RegisterRoutes registers the vehicle and driver routes. Only the active vehicle
// list is open to every user type.
func (h *Handler) RegisterRoutes(api *echo.Group, adminOnly echo.MiddlewareFunc) {
	fleetGroup := api.Group("/fleet")
	fleetGroup.GET("/active", h.fleetHTTP.ActiveVehicles)
	fleetGroup.GET("", h.fleetHTTP.ListVehicles, adminOnly)
	fleetGroup.POST("", h.fleetHTTP.CreateVehicle, adminOnly)
	fleetGroup.PUT("/:id", h.fleetHTTP.UpdateVehicle, adminOnly)
	fleetGroup.DELETE("/:id", h.fleetHTTP.DeactivateVehicle, adminOnly)
	fleetGroup.POST("/:id/image", h.fleetHTTP.UploadImage, adminOnly)

	driverGroup := api.Group("/admin/drivers", adminOnly)
	driverGroup.GET("", h.fleetHTTP.ListDrivers)
	driverGroup.POST("", h.fleetHTTP.CreateDriver)
	driverGroup.PUT("/:id", h.fleetHTTP.UpdateDriver)
	driverGroup.DELETE("/:id", h.fleetHTTP.DeactivateDriver)
}
