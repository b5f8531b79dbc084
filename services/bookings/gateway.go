package bookings

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// BookingGW calls the admin booking endpoints of the REST API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/bookings BookingGW
type BookingGW interface {
	FetchBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking models.NewBooking) (*models.Booking, error)
	AssignTaxi(ctx context.Context, bookingID string, assignment models.Assignment) error
	StartTrip(ctx context.Context, bookingID string) error
	CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.CompletionResult, error)
	CancelBooking(ctx context.Context, bookingID string, reason string) error
}
