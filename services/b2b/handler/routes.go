package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/b2b"
	httpHandler "github.com/urbancabz/console/services/b2b/handler/http"
)

// Handler combines all handlers for the b2b service
type Handler struct {
	b2bHTTP *httpHandler.B2BHandler
}

// NewHandler creates a new combined handler
func NewHandler(b2bUC b2b.B2BUC) *Handler {
	return &Handler{
		b2bHTTP: httpHandler.NewB2BHandler(b2bUC),
	}
}

// RegisterRoutes registers the corporate booking routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	bookingGroup := api.Group("/b2b/bookings")
	bookingGroup.POST("", h.b2bHTTP.CreateBooking)
	bookingGroup.GET("/:id", h.b2bHTTP.GetBooking)
	bookingGroup.POST("/:id/assign", h.b2bHTTP.AssignDriver)
	bookingGroup.POST("/:id/start", h.b2bHTTP.StartTrip)
	bookingGroup.POST("/:id/complete", h.b2bHTTP.CompleteTrip)
	bookingGroup.POST("/:id/cancel", h.b2bHTTP.CancelBooking)
	bookingGroup.POST("/:id/payment", h.b2bHTTP.RecordPayment)
	bookingGroup.GET("/:id/outreach", h.b2bHTTP.Outreach)
	bookingGroup.POST("/:id/outreach", h.b2bHTTP.SendOutreach)
	bookingGroup.GET("/:id/payment-qr.png", h.b2bHTTP.PaymentQR)
	bookingGroup.GET("/:id/invoice.pdf", h.b2bHTTP.Invoice)
}
