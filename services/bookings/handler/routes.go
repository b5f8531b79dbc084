package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/services/bookings"
	httpHandler "github.com/urbancabz/console/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
	}
}

// RegisterRoutes registers the customer booking routes behind adminOnly
func (h *Handler) RegisterRoutes(api *echo.Group, adminOnly echo.MiddlewareFunc) {
	bookingGroup := api.Group("/admin/bookings", adminOnly)
	bookingGroup.POST("", h.bookingHTTP.CreateBooking)
	bookingGroup.GET("/:id", h.bookingHTTP.GetBooking)
	bookingGroup.GET("/:id/invoice.pdf", h.bookingHTTP.Invoice)
	bookingGroup.POST("/:id/assign-taxi", h.bookingHTTP.AssignTaxi)
	bookingGroup.POST("/:id/start", h.bookingHTTP.StartTrip)
	bookingGroup.POST("/:id/complete", h.bookingHTTP.CompleteTrip)
	bookingGroup.POST("/:id/cancel", h.bookingHTTP.CancelBooking)
}
