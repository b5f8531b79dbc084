package models

import "time"

// VehicleCategory groups fleet vehicles
type VehicleCategory string

const (
	VehicleCategorySedan    VehicleCategory = "SEDAN"
	VehicleCategorySUV      VehicleCategory = "SUV"
	VehicleCategoryLuxury   VehicleCategory = "LUXURY"
	VehicleCategoryTraveler VehicleCategory = "TRAVELER"
)

// Valid reports whether the category is known
func (c VehicleCategory) Valid() bool {
	switch c {
	case VehicleCategorySedan, VehicleCategorySUV, VehicleCategoryLuxury, VehicleCategoryTraveler:
		return true
	}
	return false
}

const (
	MinVehicleSeats = 1
	MaxVehicleSeats = 12
	MinRatePerKm    = 1
)

// Vehicle is a fleet vehicle. Inactive vehicles stay for historical bookings.
type Vehicle struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       VehicleCategory `json:"category"`
	Seats          int             `json:"seats"`
	BasePricePerKm float64         `json:"base_price_per_km"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
}

// Driver is a driver on the admin roster
type Driver struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	LicenseNo string     `json:"license_no,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// User is a registered platform user as listed in the admin dashboard
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ImageUpload is the result of a vehicle image upload
type ImageUpload struct {
	URL string `json:"url"`
}

// VehicleInput is a vehicle as entered in the fleet form
type VehicleInput struct {
	Name           string          `json:"name"`
	Category       VehicleCategory `json:"category"`
	Seats          int             `json:"seats"`
	BasePricePerKm float64         `json:"base_price_per_km"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// InputOf returns the editable fields of an existing vehicle
func (v *Vehicle) InputOf() VehicleInput {
	active := v.IsActive
	return VehicleInput{
		Name:           v.Name,
		Category:       v.Category,
		Seats:          v.Seats,
		BasePricePerKm: v.BasePricePerKm,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		IsActive:       &active,
	}
}

// DriverInput is a driver as entered in the roster form
type DriverInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"license_no,omitempty"`
	IsActive  *bool  `json:"is_active,omitempty"`
}
