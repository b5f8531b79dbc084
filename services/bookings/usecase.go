package bookings

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// BookingUC drives the customer booking lifecycle from the console
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/bookings BookingUC
type BookingUC interface {
	GetBooking(ctx context.Context, bookingID string) (*models.BookingDetail, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	AssignTaxi(ctx context.Context, bookingID string, req models.AssignRequest) (*models.ActionResult, error)
	StartTrip(ctx context.Context, bookingID string) (*models.ActionResult, error)
	CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.ActionResult, error)
	CancelBooking(ctx context.Context, bookingID string, req models.CancelRequest) (*models.ActionResult, error)
	Invoice(ctx context.Context, bookingID string) (*models.Document, error)
}

// FareQuoter prices a new booking
// go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/urbancabz/console/services/bookings FareQuoter,ActionRecorder,Refresher
type FareQuoter interface {
	Quote(ctx context.Context, req models.FareRequest) (*models.FareQuote, error)
}

// ActionRecorder writes the outcome of a lifecycle action to the journal
type ActionRecorder interface {
	Record(ctx context.Context, entry models.ActionLog) error
}

// Refresher reloads a dashboard collection after a mutation
type Refresher interface {
	Refresh(ctx context.Context, collection, bookingID string) error
}
