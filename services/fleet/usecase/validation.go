package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

func normalizeVehicle(input models.VehicleInput) (models.VehicleInput, error) {
	input.Name = utils.SanitizeString(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = models.VehicleCategory(strings.ToUpper(strings.TrimSpace(string(input.Category))))

	verr := &apperror.ValidationError{}
	if input.Name == "" {
		verr.Add("name", "Vehicle name is required")
	}
	if !input.Category.Valid() {
		verr.Add("category", "Category must be SEDAN, SUV, LUXURY or TRAVELER")
	}
	if input.Seats < models.MinVehicleSeats || input.Seats > models.MaxVehicleSeats {
		verr.Add("seats", fmt.Sprintf("Seats must be between %d and %d", models.MinVehicleSeats, models.MaxVehicleSeats))
	}
	if input.BasePricePerKm < models.MinRatePerKm {
		verr.Add("base_price_per_km", fmt.Sprintf("Rate per km must be at least ₹%d", models.MinRatePerKm))
	}
	return input, verr.OrNil()
}

func normalizeDriver(input models.DriverInput) (models.DriverInput, error) {
	input.Name = utils.SanitizeString(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.LicenseNo = strings.ToUpper(strings.TrimSpace(input.LicenseNo))

	verr := &apperror.ValidationError{}
	if input.Name == "" {
		verr.Add("name", "Driver name is required")
	}
	if input.Phone == "" {
		verr.Add("phone", "Phone number is required")
	} else if _, err := utils.NormalizeMSISDN(input.Phone); err != nil {
		verr.Add("phone", "Enter a valid 10-digit mobile number")
	}
	return input, verr.OrNil()
}

func validateImage(filename string) error {
	if !imageExtensions[strings.ToLower(filepath.Ext(filename))] {
		return apperror.NewValidationError("image", "Upload a JPG, PNG or WEBP image")
	}
	return nil
}
