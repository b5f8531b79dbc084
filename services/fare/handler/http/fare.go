package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/fare"
)

// FareHandler handles HTTP requests for fare quotes and geocoding
type FareHandler struct {
	fareUC fare.FareUC
}

// NewFareHandler creates a new fare HTTP handler
func NewFareHandler(fareUC fare.FareUC) *FareHandler {
	return &FareHandler{
		fareUC: fareUC,
	}
}

// Quote handles POST /api/fare/quote
func (h *FareHandler) Quote(c echo.Context) error {
	var req models.FareRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.fareUC.Quote(appcontext.FromEcho(c), req)
	if err != nil {
		logger.Info("Fare quote rejected",
			logger.String("from", req.From.Label()),
			logger.String("to", req.To.Label()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare calculated", quote)
}

// Reverse handles GET /api/geo/reverse?lat=&lng=
func (h *FareHandler) Reverse(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}

	location, err := h.fareUC.ReverseGeocode(appcontext.FromEcho(c), lat, lng)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", location)
}
