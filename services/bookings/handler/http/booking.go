package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/bookings"
)

// BookingHandler handles HTTP requests for customer bookings
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// GetBooking handles GET /api/admin/bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	detail, err := h.bookingUC.GetBooking(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// CreateBooking handles POST /api/admin/bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(appcontext.FromEcho(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// AssignTaxi handles POST /api/admin/bookings/:id/assign-taxi
func (h *BookingHandler) AssignTaxi(c echo.Context) error {
	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.bookingUC.AssignTaxi(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// StartTrip handles POST /api/admin/bookings/:id/start
func (h *BookingHandler) StartTrip(c echo.Context) error {
	result, err := h.bookingUC.StartTrip(appcontext.FromEcho(c), c.Param("id"))
	return actionResponse(c, result, err)
}

// CompleteTrip handles POST /api/admin/bookings/:id/complete
func (h *BookingHandler) CompleteTrip(c echo.Context) error {
	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.bookingUC.CompleteTrip(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// CancelBooking handles POST /api/admin/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	var req models.CancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.bookingUC.CancelBooking(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// Invoice handles GET /api/admin/bookings/:id/invoice.pdf
func (h *BookingHandler) Invoice(c echo.Context) error {
	doc, err := h.bookingUC.Invoice(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.DocumentResponse(c, doc)
}

func actionResponse(c echo.Context, result *models.ActionResult, err error) error {
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, result.Message, result.Data)
}
