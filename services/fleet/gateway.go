package fleet

import (
	"context"
	"io"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/fleet FleetGW
type FleetGW interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, input models.VehicleInput) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
	UploadImage(ctx context.Context, filename string, content io.Reader) (*models.ImageUpload, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CreateDriver(ctx context.Context, input models.DriverInput) (*models.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, input models.DriverInput) (*models.Driver, error)
	DeleteDriver(ctx context.Context, driverID string) error
}
