package lifecycle

import (
	"strings"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// ValidateAssignment checks an assignment before it is sent
func ValidateAssignment(a models.Assignment) error {
	verr := &apperror.ValidationError{}
	if a.DriverName == "" {
		verr.Add("driver_name", "Driver name is required")
	}
	if a.DriverNumber == "" {
		verr.Add("driver_number", "Driver number is required")
	} else if _, err := utils.NormalizeMSISDN(a.DriverNumber); err != nil {
		verr.Add("driver_number", "Enter a valid 10-digit mobile number")
	}
	if a.CabName == "" {
		verr.Add("cab_name", "Cab name is required")
	}
	if a.CabNumber == "" {
		verr.Add("cab_number", "Cab number is required")
	}
	return verr.OrNil()
}

// ValidateCompletion checks the figures entered when closing a trip
func ValidateCompletion(req models.CompleteRequest) error {
	verr := &apperror.ValidationError{}
	if req.ActualKm <= 0 {
		verr.Add("actual_km", "Actual kilometres must be greater than zero")
	}
	if req.TollCharges < 0 {
		verr.Add("toll_charges", "Toll charges cannot be negative")
	}
	if req.ExtraCharge < 0 {
		verr.Add("extra_charge", "Extra charge cannot be negative")
	}
	return verr.OrNil()
}

// CancelReason returns the trimmed reason, rejecting a blank one
func CancelReason(req models.CancelRequest) (string, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return "", apperror.NewValidationError("reason", "Please provide a reason for cancellation")
	}
	return reason, nil
}

// CompletionMessage is what the operator sees after closing a trip
func CompletionMessage(newTotal float64) string {
	return "Trip completed! Final: ₹" + utils.FormatAmount(newTotal)
}
