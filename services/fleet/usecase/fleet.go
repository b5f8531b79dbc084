package usecase

import (
	"context"
	"io"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/fleet"
)

// fleetUC implements the fleet.FleetUC interface
type fleetUC struct {
	fleetGW   fleet.FleetGW
	refresher fleet.Refresher
}

// NewFleetUC creates a new fleet use case. refresher may be nil.
func NewFleetUC(fleetGW fleet.FleetGW, refresher fleet.Refresher) fleet.FleetUC {
	return &fleetUC{
		fleetGW:   fleetGW,
		refresher: refresher,
	}
}

// ListVehicles returns every vehicle, inactive ones included
func (uc *fleetUC) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return uc.fleetGW.ListVehicles(ctx)
}

// ActiveVehicles returns the vehicles customers may book
func (uc *fleetUC) ActiveVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := uc.fleetGW.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.IsActive {
			active = append(active, v)
		}
	}
	return active, nil
}

// CreateVehicle validates and adds a vehicle; new vehicles start active
func (uc *fleetUC) CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error) {
	input, err := normalizeVehicle(input)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		active := true
		input.IsActive = &active
	}

	vehicle, err := uc.fleetGW.CreateVehicle(ctx, input)
	if err != nil {
		return nil, err
	}
	fillVehicle(vehicle, input)
	uc.refresh(ctx, constants.CollectionFleet)
	return vehicle, nil
}

// UpdateVehicle validates and replaces a vehicle's details
func (uc *fleetUC) UpdateVehicle(ctx context.Context, vehicleID string, input models.VehicleInput) (*models.Vehicle, error) {
	input, err := normalizeVehicle(input)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.fleetGW.UpdateVehicle(ctx, vehicleID, input)
	if err != nil {
		return nil, err
	}
	if vehicle.ID == "" {
		vehicle.ID = vehicleID
	}
	fillVehicle(vehicle, input)
	uc.refresh(ctx, constants.CollectionFleet)
	return vehicle, nil
}

// DeactivateVehicle soft-deletes a vehicle so past bookings keep their reference
func (uc *fleetUC) DeactivateVehicle(ctx context.Context, vehicleID string) error {
	if err := uc.fleetGW.DeleteVehicle(ctx, vehicleID); err != nil {
		return err
	}
	uc.refresh(ctx, constants.CollectionFleet)
	return nil
}

// UploadVehicleImage stores a photo and points the vehicle at it
func (uc *fleetUC) UploadVehicleImage(ctx context.Context, vehicleID, filename string, content io.Reader) (*models.Vehicle, error) {
	if err := validateImage(filename); err != nil {
		return nil, err
	}

	current, err := uc.fleetGW.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	upload, err := uc.fleetGW.UploadImage(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	input := current.InputOf()
	input.ImageURL = upload.URL
	return uc.UpdateVehicle(ctx, vehicleID, input)
}

// ListDrivers returns the driver roster
func (uc *fleetUC) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	return uc.fleetGW.ListDrivers(ctx)
}

// CreateDriver validates and adds a driver; new drivers start active
func (uc *fleetUC) CreateDriver(ctx context.Context, input models.DriverInput) (*models.Driver, error) {
	input, err := normalizeDriver(input)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		active := true
		input.IsActive = &active
	}

	driver, err := uc.fleetGW.CreateDriver(ctx, input)
	if err != nil {
		return nil, err
	}
	fillDriver(driver, input)
	uc.refresh(ctx, constants.CollectionDrivers)
	return driver, nil
}

// UpdateDriver validates and replaces a driver's details
func (uc *fleetUC) UpdateDriver(ctx context.Context, driverID string, input models.DriverInput) (*models.Driver, error) {
	input, err := normalizeDriver(input)
	if err != nil {
		return nil, err
	}

	driver, err := uc.fleetGW.UpdateDriver(ctx, driverID, input)
	if err != nil {
		return nil, err
	}
	if driver.ID == "" {
		driver.ID = driverID
	}
	fillDriver(driver, input)
	uc.refresh(ctx, constants.CollectionDrivers)
	return driver, nil
}

// DeactivateDriver removes a driver from the active roster
func (uc *fleetUC) DeactivateDriver(ctx context.Context, driverID string) error {
	if err := uc.fleetGW.DeleteDriver(ctx, driverID); err != nil {
		return err
	}
	uc.refresh(ctx, constants.CollectionDrivers)
	return nil
}

func (uc *fleetUC) refresh(ctx context.Context, collection string) {
	if uc.refresher == nil {
		return
	}
	if err := uc.refresher.Refresh(ctx, collection, ""); err != nil {
		logger.Warn("Failed to refresh collection after fleet change",
			logger.String("collection", collection),
			logger.Err(err))
	}
}

// fillVehicle completes an entity the API answered without a body
func fillVehicle(v *models.Vehicle, input models.VehicleInput) {
	if v.Name != "" {
		return
	}
	v.Name = input.Name
	v.Category = input.Category
	v.Seats = input.Seats
	v.BasePricePerKm = input.BasePricePerKm
	v.Description = input.Description
	v.ImageURL = input.ImageURL
	v.IsActive = input.IsActive == nil || *input.IsActive
}

func fillDriver(d *models.Driver, input models.DriverInput) {
	if d.Name != "" {
		return
	}
	d.Name = input.Name
	d.Phone = input.Phone
	d.LicenseNo = input.LicenseNo
	d.IsActive = input.IsActive == nil || *input.IsActive
}
