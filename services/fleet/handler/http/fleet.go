package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/fleet"
)

// MaxImageBytes caps a vehicle photo upload
const MaxImageBytes = 5 << 20

// FleetHandler handles HTTP requests for vehicles and drivers
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// ListVehicles handles GET /api/fleet
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.fleetUC.ListVehicles(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// ActiveVehicles handles GET /api/fleet/active
func (h *FleetHandler) ActiveVehicles(c echo.Context) error {
	vehicles, err := h.fleetUC.ActiveVehicles(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// CreateVehicle handles POST /api/fleet
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
	var input models.VehicleInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.fleetUC.CreateVehicle(appcontext.FromEcho(c), input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle added", vehicle)
}

// UpdateVehicle handles PUT /api/fleet/:id
func (h *FleetHandler) UpdateVehicle(c echo.Context) error {
	var input models.VehicleInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.fleetUC.UpdateVehicle(appcontext.FromEcho(c), c.Param("id"), input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated", vehicle)
}

// DeactivateVehicle handles DELETE /api/fleet/:id
func (h *FleetHandler) DeactivateVehicle(c echo.Context) error {
	if err := h.fleetUC.DeactivateVehicle(appcontext.FromEcho(c), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deactivated", nil)
}

// UploadImage handles POST /api/fleet/:id/image as multipart form field "image"
func (h *FleetHandler) UploadImage(c echo.Context) error {
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, MaxImageBytes+1<<10)

	header, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "Choose an image of at most 5 MB")
	}
	if header.Size > MaxImageBytes {
		return utils.BadRequestResponse(c, "Choose an image of at most 5 MB")
	}

	file, err := header.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid image: "+err.Error())
	}
	defer file.Close()

	vehicle, err := h.fleetUC.UploadVehicleImage(appcontext.FromEcho(c), c.Param("id"), header.Filename, file)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle image updated", vehicle)
}

// ListDrivers handles GET /api/admin/drivers
func (h *FleetHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.fleetUC.ListDrivers(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", drivers)
}

// CreateDriver handles POST /api/admin/drivers
func (h *FleetHandler) CreateDriver(c echo.Context) error {
	var input models.DriverInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.fleetUC.CreateDriver(appcontext.FromEcho(c), input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver added", driver)
}

// UpdateDriver handles PUT /api/admin/drivers/:id
func (h *FleetHandler) UpdateDriver(c echo.Context) error {
	var input models.DriverInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.fleetUC.UpdateDriver(appcontext.FromEcho(c), c.Param("id"), input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver updated", driver)
}

// DeactivateDriver handles DELETE /api/admin/drivers/:id
func (h *FleetHandler) DeactivateDriver(c echo.Context) error {
	if err := h.fleetUC.DeactivateDriver(appcontext.FromEcho(c), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deactivated", nil)
}
