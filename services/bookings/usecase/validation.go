package usecase

import (
	"strings"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

func validateCreate(req models.CreateBookingRequest) error {
	verr := &apperror.ValidationError{}
	if strings.TrimSpace(req.CustomerName) == "" {
		verr.Add("customer_name", "Customer name is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		verr.Add("customer_phone", "Customer phone is required")
	} else if _, err := utils.NormalizeMSISDN(req.CustomerPhone); err != nil {
		verr.Add("customer_phone", "Enter a valid 10-digit mobile number")
	}
	if email := strings.TrimSpace(req.CustomerEmail); email != "" && !utils.IsValidEmail(email) {
		verr.Add("customer_email", "Enter a valid email address")
	}
	if req.VehicleID == "" {
		verr.Add("vehicle_id", "Select a vehicle")
	}
	return verr.OrNil()
}
