package fleet

import (
	"context"
	"io"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/fleet FleetUC
type FleetUC interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ActiveVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, input models.VehicleInput) (*models.Vehicle, error)
	DeactivateVehicle(ctx context.Context, vehicleID string) error
	UploadVehicleImage(ctx context.Context, vehicleID, filename string, content io.Reader) (*models.Vehicle, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CreateDriver(ctx context.Context, input models.DriverInput) (*models.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, input models.DriverInput) (*models.Driver, error)
	DeactivateDriver(ctx context.Context, driverID string) error
}

// Refresher reloads a dashboard collection after a mutation
// go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/urbancabz/console/services/fleet Refresher
type Refresher interface {
	Refresh(ctx context.Context, collection, bookingID string) error
}
