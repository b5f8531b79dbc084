package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/dashboard"
)

// Streamer upgrades a request into a browser change-event stream
type Streamer interface {
	HandleConnection(c echo.Context, operator string) error
}

// DashboardHandler handles HTTP requests for dashboard collections
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
	streamer    Streamer
}

// NewDashboardHandler creates a new dashboard HTTP handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC, streamer Streamer) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		streamer:    streamer,
	}
}

// List handles GET /api/dashboard/:collection?q=&status=&month=
func (h *DashboardHandler) List(c echo.Context) error {
	var filter models.CollectionFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid filter: "+err.Error())
	}

	view, err := h.dashboardUC.List(appcontext.FromEcho(c), c.Param("collection"), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// Resync handles POST /api/dashboard/resync
func (h *DashboardHandler) Resync(c echo.Context) error {
	report, err := h.dashboardUC.Resync(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	message := "Dashboard refreshed"
	if len(report.Failed) > 0 {
		message = "Dashboard partially refreshed"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, report)
}

// Export handles GET /api/dashboard/:collection/export.xlsx
func (h *DashboardHandler) Export(c echo.Context) error {
	var filter models.CollectionFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid filter: "+err.Error())
	}

	doc, err := h.dashboardUC.Export(appcontext.FromEcho(c), c.Param("collection"), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.DocumentResponse(c, doc)
}

// Stream handles GET /api/dashboard/stream
func (h *DashboardHandler) Stream(c echo.Context) error {
	return h.streamer.HandleConnection(c, appcontext.GetOperator(appcontext.FromEcho(c)))
}
