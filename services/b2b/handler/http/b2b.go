package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/b2b"
)

// B2BHandler handles HTTP requests for corporate bookings
type B2BHandler struct {
	b2bUC b2b.B2BUC
}

// NewB2BHandler creates a new corporate booking HTTP handler
func NewB2BHandler(b2bUC b2b.B2BUC) *B2BHandler {
	return &B2BHandler{
		b2bUC: b2bUC,
	}
}

// GetBooking handles GET /api/b2b/bookings/:id
func (h *B2BHandler) GetBooking(c echo.Context) error {
	detail, err := h.b2bUC.GetBooking(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// CreateBooking handles POST /api/b2b/bookings
func (h *B2BHandler) CreateBooking(c echo.Context) error {
	var req models.CreateB2BBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.b2bUC.CreateBooking(appcontext.FromEcho(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Corporate booking created", booking)
}

// AssignDriver handles POST /api/b2b/bookings/:id/assign
func (h *B2BHandler) AssignDriver(c echo.Context) error {
	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.b2bUC.AssignDriver(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// StartTrip handles POST /api/b2b/bookings/:id/start
func (h *B2BHandler) StartTrip(c echo.Context) error {
	result, err := h.b2bUC.StartTrip(appcontext.FromEcho(c), c.Param("id"))
	return actionResponse(c, result, err)
}

// CompleteTrip handles POST /api/b2b/bookings/:id/complete
func (h *B2BHandler) CompleteTrip(c echo.Context) error {
	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.b2bUC.CompleteTrip(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// CancelBooking handles POST /api/b2b/bookings/:id/cancel
func (h *B2BHandler) CancelBooking(c echo.Context) error {
	var req models.CancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.b2bUC.CancelBooking(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// RecordPayment handles POST /api/b2b/bookings/:id/payment
func (h *B2BHandler) RecordPayment(c echo.Context) error {
	var req models.OfflinePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	result, err := h.b2bUC.RecordPayment(appcontext.FromEcho(c), c.Param("id"), req)
	return actionResponse(c, result, err)
}

// Outreach handles GET /api/b2b/bookings/:id/outreach
func (h *B2BHandler) Outreach(c echo.Context) error {
	msg, err := h.b2bUC.Outreach(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", msg)
}

// SendOutreach handles POST /api/b2b/bookings/:id/outreach
func (h *B2BHandler) SendOutreach(c echo.Context) error {
	delivery, err := h.b2bUC.SendOutreach(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	message := "Dispatch chat is not configured; copy the message instead"
	if delivery.Delivered {
		message = "Outreach sent to dispatch"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, delivery)
}

// PaymentQR handles GET /api/b2b/bookings/:id/payment-qr.png
func (h *B2BHandler) PaymentQR(c echo.Context) error {
	doc, err := h.b2bUC.PaymentQR(appcontext.FromEcho(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.DocumentResponse(c, doc)
}

// Invoice handles GET /api/b2b/bookings/:id/invoice.pdf
func (h *B2BHandler) Invoice(c echo.Context) error {
	doc, err := h.b2bUC.Invoice(appcontext.FromEcho(c), c.Param("id"))
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
