package b2b

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// B2BUC drives the corporate booking lifecycle from the console
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/b2b B2BUC
type B2BUC interface {
	GetBooking(ctx context.Context, bookingID string) (*models.B2BBookingDetail, error)
	CreateBooking(ctx context.Context, req models.CreateB2BBookingRequest) (*models.B2BBooking, error)
	AssignDriver(ctx context.Context, bookingID string, req models.AssignRequest) (*models.ActionResult, error)
	StartTrip(ctx context.Context, bookingID string) (*models.ActionResult, error)
	CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.ActionResult, error)
	CancelBooking(ctx context.Context, bookingID string, req models.CancelRequest) (*models.ActionResult, error)
	RecordPayment(ctx context.Context, bookingID string, req models.OfflinePaymentRequest) (*models.ActionResult, error)
	Outreach(ctx context.Context, bookingID string) (*models.OutreachMessage, error)
	SendOutreach(ctx context.Context, bookingID string) (*models.OutreachDelivery, error)
	PaymentQR(ctx context.Context, bookingID string) (*models.Document, error)
	Invoice(ctx context.Context, bookingID string) (*models.Document, error)
}

// FareQuoter prices a new corporate booking
// go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/urbancabz/console/services/b2b FareQuoter,ActionRecorder,Refresher
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
