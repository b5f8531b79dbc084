package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/constants"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/documents"
	"github.com/urbancabz/console/internal/pkg/guard"
	"github.com/urbancabz/console/internal/pkg/lifecycle"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/bookings"
)

// ActionCreate journals bookings entered from the console
const ActionCreate = "CREATE"

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	bookingGW  bookings.BookingGW
	fareQuoter bookings.FareQuoter
	recorder   bookings.ActionRecorder
	refresher  bookings.Refresher
	inflight   *guard.InFlight
	clock      models.Clock
}

// NewBookingUC creates a new customer booking use case. recorder and refresher may be nil.
func NewBookingUC(
	bookingGW bookings.BookingGW,
	fareQuoter bookings.FareQuoter,
	recorder bookings.ActionRecorder,
	refresher bookings.Refresher,
	inflight *guard.InFlight,
	clock models.Clock,
) bookings.BookingUC {
	if inflight == nil {
		inflight = guard.NewInFlight()
	}
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &bookingUC{
		bookingGW:  bookingGW,
		fareQuoter: fareQuoter,
		recorder:   recorder,
		refresher:  refresher,
		inflight:   inflight,
		clock:      clock,
	}
}

// GetBooking returns the booking with its paid and due amounts and the actions on offer
func (uc *bookingUC) GetBooking(ctx context.Context, bookingID string) (*models.BookingDetail, error) {
	booking, err := uc.bookingGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &models.BookingDetail{
		Booking:        booking,
		AmountPaid:     booking.AmountPaid(),
		Due:            booking.Due(),
		AllowedActions: lifecycle.B2C.Options(lifecycle.B2CState(booking)),
	}, nil
}

// CreateBooking prices the trip with the fare resolver and submits it
func (uc *bookingUC) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	quote, err := uc.fareQuoter.Quote(ctx, models.FareRequest{
		From:      req.From,
		To:        req.To,
		RideType:  req.RideType,
		VehicleID: req.VehicleID,
		PickupAt:  req.PickupAt,
		ReturnAt:  req.ReturnAt,
	})
	if err != nil {
		return nil, err
	}

	payload := models.PricedBooking(quote, req.From, req.To)
	payload.CustomerName = strings.TrimSpace(req.CustomerName)
	payload.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	payload.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	payload.VehicleID = req.VehicleID
	payload.ScheduledAt = req.PickupAt
	payload.ReturnAt = req.ReturnAt

	created, err := uc.bookingGW.CreateBooking(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.refresh(ctx, created.ID)
	uc.journal(ctx, created.ID, ActionCreate, true,
		fmt.Sprintf("Booking created for %s", utils.FormatRupees(payload.TotalAmount)))
	return created, nil
}

// AssignTaxi records the driver and cab for a paid, unassigned booking
func (uc *bookingUC) AssignTaxi(ctx context.Context, bookingID string, req models.AssignRequest) (*models.ActionResult, error) {
	assignment := req.Assignment()
	if err := lifecycle.ValidateAssignment(assignment); err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionAssign, func(ctx context.Context, _ *models.Booking) (*models.ActionResult, error) {
		if err := uc.bookingGW.AssignTaxi(ctx, bookingID, assignment); err != nil {
			return nil, err
		}
		return &models.ActionResult{Success: true, Message: "Taxi assigned and dispatched", Data: assignment}, nil
	})
}

// StartTrip moves an assigned booking to IN_PROGRESS
func (uc *bookingUC) StartTrip(ctx context.Context, bookingID string) (*models.ActionResult, error) {
	return uc.perform(ctx, bookingID, lifecycle.ActionStart, func(ctx context.Context, _ *models.Booking) (*models.ActionResult, error) {
		if err := uc.bookingGW.StartTrip(ctx, bookingID); err != nil {
			return nil, err
		}
		return &models.ActionResult{Success: true, Message: "Trip started"}, nil
	})
}

// CompleteTrip closes the trip. The total the server recomputes replaces the quoted one.
func (uc *bookingUC) CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.ActionResult, error) {
	if err := lifecycle.ValidateCompletion(req); err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionComplete, func(ctx context.Context, booking *models.Booking) (*models.ActionResult, error) {
		result, err := uc.bookingGW.CompleteTrip(ctx, bookingID, req)
		if err != nil {
			return nil, err
		}
		if req.ActualKm > booking.DistanceKm {
			logger.Info("Trip ran over quoted distance",
				logger.String("booking_id", bookingID),
				logger.Float64("quoted_km", booking.DistanceKm),
				logger.Float64("actual_km", req.ActualKm))
		}
		return &models.ActionResult{
			Success: true,
			Message: lifecycle.CompletionMessage(result.NewTotal),
			Data:    result,
		}, nil
	})
}

// CancelBooking cancels a paid or running booking with the operator's reason
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID string, req models.CancelRequest) (*models.ActionResult, error) {
	reason, err := lifecycle.CancelReason(req)
	if err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionCancel, func(ctx context.Context, _ *models.Booking) (*models.ActionResult, error) {
		if err := uc.bookingGW.CancelBooking(ctx, bookingID, reason); err != nil {
			return nil, err
		}
		return &models.ActionResult{Success: true, Message: "Booking cancelled"}, nil
	})
}

// Invoice renders the PDF invoice of a completed booking
func (uc *bookingUC) Invoice(ctx context.Context, bookingID string) (*models.Document, error) {
	booking, err := uc.bookingGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: invoices are issued for completed trips only", apperror.ErrActionNotAllowed)
	}

	content, filename, err := documents.BuildInvoicePDF(documents.InvoiceFromBooking(booking, uc.clock.Now()))
	if err != nil {
		return nil, err
	}
	return &models.Document{Filename: filename, ContentType: models.ContentTypePDF, Content: content}, nil
}

type mutation func(ctx context.Context, booking *models.Booking) (*models.ActionResult, error)

// perform runs one lifecycle action: guard, load, check the transition table,
// one API call, then refresh and journal. A failure leaves nothing to undo.
func (uc *bookingUC) perform(ctx context.Context, bookingID string, action lifecycle.Action, mutate mutation) (*models.ActionResult, error) {
	release, err := uc.inflight.Acquire(guard.Key(string(models.BookingKindB2C), bookingID), string(action))
	if err != nil {
		return nil, err
	}
	defer release()

	booking, err := uc.bookingGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := lifecycle.B2C.Next(lifecycle.B2CState(booking), action); err != nil {
		uc.journal(ctx, bookingID, string(action), false, err.Error())
		return nil, err
	}

	result, err := mutate(ctx, booking)
	if err != nil {
		logger.Warn("Booking action failed",
			logger.String("booking_id", bookingID),
			logger.String("action", string(action)),
			logger.Err(err))
		uc.journal(ctx, bookingID, string(action), false, apperror.Message(err))
		return nil, err
	}

	uc.refresh(ctx, bookingID)
	uc.journal(ctx, bookingID, string(action), true, result.Message)
	return result, nil
}

func (uc *bookingUC) refresh(ctx context.Context, bookingID string) {
	if uc.refresher == nil {
		return
	}
	if err := uc.refresher.Refresh(ctx, constants.CollectionBookings, bookingID); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Failed to refresh bookings after action",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
}

func (uc *bookingUC) journal(ctx context.Context, bookingID, action string, success bool, message string) {
	if uc.recorder == nil {
		return
	}
	err := uc.recorder.Record(ctx, models.ActionLog{
		Kind:      models.BookingKindB2C,
		BookingID: bookingID,
		Action:    action,
		Operator:  appcontext.GetOperator(ctx),
		Success:   success,
		Message:   message,
	})
	if err != nil {
		logger.Warn("Failed to journal booking action",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
}
