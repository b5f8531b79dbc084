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
	"github.com/urbancabz/console/services/b2b"
)

const (
	// ActionCreate journals corporate bookings entered from the console
	ActionCreate = "CREATE"
	// ActionOutreach journals outreach posted to the dispatch chat
	ActionOutreach = "OUTREACH"

	qrSize = 320
)

// b2bUC implements the b2b.B2BUC interface
type b2bUC struct {
	cfg        models.OutreachConfig
	b2bGW      b2b.B2BGW
	dispatchGW b2b.DispatchGW
	fareQuoter b2b.FareQuoter
	recorder   b2b.ActionRecorder
	refresher  b2b.Refresher
	inflight   *guard.InFlight
	clock      models.Clock
}

// NewB2BUC creates a new corporate booking use case.
// dispatchGW, recorder and refresher may be nil.
func NewB2BUC(
	cfg models.OutreachConfig,
	b2bGW b2b.B2BGW,
	dispatchGW b2b.DispatchGW,
	fareQuoter b2b.FareQuoter,
	recorder b2b.ActionRecorder,
	refresher b2b.Refresher,
	inflight *guard.InFlight,
	clock models.Clock,
) b2b.B2BUC {
	if inflight == nil {
		inflight = guard.NewInFlight()
	}
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &b2bUC{
		cfg:        cfg,
		b2bGW:      b2bGW,
		dispatchGW: dispatchGW,
		fareQuoter: fareQuoter,
		recorder:   recorder,
		refresher:  refresher,
		inflight:   inflight,
		clock:      clock,
	}
}

// GetBooking returns the booking with its assignment, amounts and the actions on offer
func (uc *b2bUC) GetBooking(ctx context.Context, bookingID string) (*models.B2BBookingDetail, error) {
	booking, err := uc.b2bGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &models.B2BBookingDetail{
		Booking:        booking,
		Assignment:     booking.CurrentAssignment(),
		AmountPaid:     booking.AmountPaid(),
		Due:            booking.Due(),
		AllowedActions: lifecycle.B2B.Options(lifecycle.B2BState(booking)),
	}, nil
}

// CreateBooking prices the trip at the company's rate and submits it
func (uc *b2bUC) CreateBooking(ctx context.Context, req models.CreateB2BBookingRequest) (*models.B2BBooking, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	quote, err := uc.fareQuoter.Quote(ctx, models.FareRequest{
		From:      req.From,
		To:        req.To,
		RideType:  req.RideType,
		VehicleID: req.VehicleID,
		CompanyID: req.CompanyID,
		Rate:      req.Rate,
		PickupAt:  req.PickupAt,
		ReturnAt:  req.ReturnAt,
		Corporate: true,
	})
	if err != nil {
		return nil, err
	}

	payload := models.PricedBooking(quote, req.From, req.To)
	payload.CompanyID = req.CompanyID
	payload.PassengerName = strings.TrimSpace(req.PassengerName)
	payload.PassengerPhone = strings.TrimSpace(req.PassengerPhone)
	payload.VehicleID = req.VehicleID
	payload.ScheduledAt = req.PickupAt
	payload.ReturnAt = req.ReturnAt

	created, err := uc.b2bGW.CreateBooking(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.refresh(ctx, created.ID)
	uc.journal(ctx, created.ID, ActionCreate, true,
		fmt.Sprintf("Corporate booking created for %s", utils.FormatRupees(payload.TotalAmount)))
	return created, nil
}

// AssignDriver creates or overwrites the assignment of a confirmed booking
func (uc *b2bUC) AssignDriver(ctx context.Context, bookingID string, req models.AssignRequest) (*models.ActionResult, error) {
	assignment := req.Assignment()
	if err := lifecycle.ValidateAssignment(assignment); err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionAssign, func(ctx context.Context, booking *models.B2BBooking) (*models.ActionResult, error) {
		if err := uc.b2bGW.AssignDriver(ctx, bookingID, assignment); err != nil {
			return nil, err
		}
		message := "Driver assigned"
		if booking.HasAssignment() {
			message = "Driver assignment updated"
		}
		return &models.ActionResult{Success: true, Message: message, Data: assignment}, nil
	})
}

// StartTrip moves a confirmed, assigned booking to IN_PROGRESS
func (uc *b2bUC) StartTrip(ctx context.Context, bookingID string) (*models.ActionResult, error) {
	return uc.perform(ctx, bookingID, lifecycle.ActionStart, func(ctx context.Context, _ *models.B2BBooking) (*models.ActionResult, error) {
		if err := uc.b2bGW.StartTrip(ctx, bookingID); err != nil {
			return nil, err
		}
		return &models.ActionResult{Success: true, Message: "Trip started"}, nil
	})
}

// CompleteTrip closes the trip and reports the total the server recomputed
func (uc *b2bUC) CompleteTrip(ctx context.Context, bookingID string, req models.CompleteRequest) (*models.ActionResult, error) {
	if err := lifecycle.ValidateCompletion(req); err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionComplete, func(ctx context.Context, _ *models.B2BBooking) (*models.ActionResult, error) {
		result, err := uc.b2bGW.CompleteTrip(ctx, bookingID, req)
		if err != nil {
			return nil, err
		}
		return &models.ActionResult{
			Success: true,
			Message: lifecycle.CompletionMessage(result.NewTotal),
			Data:    result,
		}, nil
	})
}

// CancelBooking cancels a confirmed or running booking with the operator's reason
func (uc *b2bUC) CancelBooking(ctx context.Context, bookingID string, req models.CancelRequest) (*models.ActionResult, error) {
	reason, err := lifecycle.CancelReason(req)
	if err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionCancel, func(ctx context.Context, _ *models.B2BBooking) (*models.ActionResult, error) {
		if err := uc.b2bGW.CancelBooking(ctx, bookingID, reason); err != nil {
			return nil, err
		}
		return &models.ActionResult{Success: true, Message: "Booking cancelled"}, nil
	})
}

// RecordPayment records an offline settlement of a completed trip. The amount
// defaults to what is due; only payment_status moves, status stays as it is.
func (uc *b2bUC) RecordPayment(ctx context.Context, bookingID string, req models.OfflinePaymentRequest) (*models.ActionResult, error) {
	verr := &apperror.ValidationError{}
	if !req.Mode.Valid() {
		verr.Add("mode", "Select Cash, Bank Transfer, UPI or Cheque")
	}
	if req.Amount < 0 {
		verr.Add("amount", "Amount cannot be negative")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return uc.perform(ctx, bookingID, lifecycle.ActionRecordPayment, func(ctx context.Context, booking *models.B2BBooking) (*models.ActionResult, error) {
		payment := models.OfflinePaymentRequest{
			Mode:    req.Mode,
			Remarks: strings.TrimSpace(req.Remarks),
			Amount:  req.Amount,
		}
		if payment.Amount == 0 {
			payment.Amount = booking.Due()
		}
		if err := uc.b2bGW.RecordPayment(ctx, bookingID, payment); err != nil {
			return nil, err
		}
		return &models.ActionResult{
			Success: true,
			Message: fmt.Sprintf("Payment of %s recorded via %s", utils.FormatRupees(payment.Amount), payment.Mode),
			Data:    payment,
		}, nil
	})
}

// Outreach builds the driver message and its WhatsApp link
func (uc *b2bUC) Outreach(ctx context.Context, bookingID string) (*models.OutreachMessage, error) {
	booking, err := uc.b2bGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return outreachFor(booking)
}

// SendOutreach posts the driver message to the dispatch chat when one is configured
func (uc *b2bUC) SendOutreach(ctx context.Context, bookingID string) (*models.OutreachDelivery, error) {
	msg, err := uc.Outreach(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	delivery := &models.OutreachDelivery{OutreachMessage: *msg}
	if uc.dispatchGW == nil {
		return delivery, nil
	}

	text := msg.Text
	if msg.Link != "" {
		text += "\n\n" + msg.Link
	}
	if err := uc.dispatchGW.SendText(ctx, text); err != nil {
		uc.journal(ctx, bookingID, ActionOutreach, false, err.Error())
		return nil, err
	}
	delivery.Delivered = true
	uc.journal(ctx, bookingID, ActionOutreach, true, "Outreach sent to dispatch chat")
	return delivery, nil
}

// PaymentQR renders a UPI collect QR for the amount due on a completed, unsettled trip
func (uc *b2bUC) PaymentQR(ctx context.Context, bookingID string) (*models.Document, error) {
	booking, err := uc.b2bGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusCompleted || booking.IsSettled() {
		return nil, fmt.Errorf("%w: collection is only for completed, unsettled trips", apperror.ErrActionNotAllowed)
	}
	if booking.Due() <= 0 {
		return nil, &apperror.BusinessError{Message: "Nothing is due on this booking"}
	}
	if uc.cfg.UPIPayeeVPA == "" {
		return nil, &apperror.BusinessError{Message: "UPI collection is not configured"}
	}

	png, err := documents.UPIQRCode(documents.UPIRequest{
		PayeeVPA:  uc.cfg.UPIPayeeVPA,
		PayeeName: uc.cfg.UPIPayeeName,
		Amount:    booking.Due(),
		Reference: booking.ID,
		Note:      "Urban Cabz trip " + booking.ID,
	}, qrSize)
	if err != nil {
		return nil, err
	}
	return &models.Document{
		Filename:    "UPI_" + booking.ID + ".png",
		ContentType: models.ContentTypePNG,
		Content:     png,
	}, nil
}

// Invoice renders the PDF invoice of a completed corporate booking
func (uc *b2bUC) Invoice(ctx context.Context, bookingID string) (*models.Document, error) {
	booking, err := uc.b2bGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: invoices are issued for completed trips only", apperror.ErrActionNotAllowed)
	}

	content, filename, err := documents.BuildInvoicePDF(documents.InvoiceFromB2B(booking, uc.clock.Now()))
	if err != nil {
		return nil, err
	}
	return &models.Document{Filename: filename, ContentType: models.ContentTypePDF, Content: content}, nil
}

func outreachFor(booking *models.B2BBooking) (*models.OutreachMessage, error) {
	assignment := booking.CurrentAssignment()
	if assignment == nil {
		return nil, fmt.Errorf("%w: assign a driver before sending outreach", apperror.ErrActionNotAllowed)
	}

	msg := &models.OutreachMessage{
		BookingID: booking.ID,
		Text:      FormatOutreach(booking, assignment),
	}
	phone, err := utils.NormalizeMSISDN(assignment.DriverNumber)
	if err != nil {
		logger.Warn("Driver number cannot receive WhatsApp",
			logger.String("booking_id", booking.ID),
			logger.String("driver_number", utils.MaskPhoneNumber(assignment.DriverNumber)),
			logger.Err(err))
		return msg, nil
	}
	msg.Phone = phone
	msg.Link, _ = utils.WhatsAppLink(phone, msg.Text)
	return msg, nil
}

type mutation func(ctx context.Context, booking *models.B2BBooking) (*models.ActionResult, error)

// perform runs one lifecycle action: guard, load, check the transition table,
// one API call, then refresh and journal. A failure leaves nothing to undo.
func (uc *b2bUC) perform(ctx context.Context, bookingID string, action lifecycle.Action, mutate mutation) (*models.ActionResult, error) {
	release, err := uc.inflight.Acquire(guard.Key(string(models.BookingKindB2B), bookingID), string(action))
	if err != nil {
		return nil, err
	}
	defer release()

	booking, err := uc.b2bGW.FetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := lifecycle.B2B.Next(lifecycle.B2BState(booking), action); err != nil {
		uc.journal(ctx, bookingID, string(action), false, err.Error())
		return nil, err
	}

	result, err := mutate(ctx, booking)
	if err != nil {
		logger.Warn("Corporate booking action failed",
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

func (uc *b2bUC) refresh(ctx context.Context, bookingID string) {
	if uc.refresher == nil {
		return
	}
	if err := uc.refresher.Refresh(ctx, constants.CollectionB2BBookings, bookingID); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Failed to refresh corporate bookings after action",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
}

func (uc *b2bUC) journal(ctx context.Context, bookingID, action string, success bool, message string) {
	if uc.recorder == nil {
		return
	}
	err := uc.recorder.Record(ctx, models.ActionLog{
		Kind:      models.BookingKindB2B,
		BookingID: bookingID,
		Action:    action,
		Operator:  appcontext.GetOperator(ctx),
		Success:   success,
		Message:   message,
	})
	if err != nil {
		logger.Warn("Failed to journal corporate booking action",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
}

func validateCreate(req models.CreateB2BBookingRequest) error {
	verr := &apperror.ValidationError{}
	if req.CompanyID == "" {
		verr.Add("company_id", "Select a company")
	}
	if strings.TrimSpace(req.PassengerName) == "" {
		verr.Add("passenger_name", "Passenger name is required")
	}
	if phone := strings.TrimSpace(req.PassengerPhone); phone == "" {
		verr.Add("passenger_phone", "Passenger phone is required")
	} else if _, err := utils.NormalizeMSISDN(phone); err != nil {
		verr.Add("passenger_phone", "Enter a valid 10-digit mobile number")
	}
	if req.Rate < 0 {
		verr.Add("rate", "Rate cannot be negative")
	}
	return verr.OrNil()
}
