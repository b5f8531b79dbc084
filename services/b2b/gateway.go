package b2b

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// B2BGW calls the corporate booking endpoints of the REST API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/b2b B2BGW,DispatchGW
type B2BGW interface {
	FetchBooking(ctx context.Context, bookingID string) (*models.B2BBooking, error)
	CreateBooking(ctx context.Context, booking models.NewBooking) (*models.B2BBooking, error)
	AssignDriver(ctx context.Context, bookingID string, assignment models.Assignment) error
	StartTrip(ctx context.Context, bookingID string) error
	CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.CompletionResult, error)
	CancelBooking(ctx context.Context, bookingID string, reason string) error
	RecordPayment(ctx context.Context, bookingID string, req models.OfflinePaymentRequest) error
}

// DispatchGW posts outreach to the dispatch team's chat
type DispatchGW interface {
	SendText(ctx context.Context, text string) error
}
