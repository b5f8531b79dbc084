package fare

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// RoutingGW talks to the geocoding and driving-route collaborators
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/fare RoutingGW,CatalogGW
type RoutingGW interface {
	Geocode(ctx context.Context, query string) (*models.Location, error)
	Reverse(ctx context.Context, lat, lng float64) (*models.Location, error)
	Route(ctx context.Context, from, to models.Location) (*models.RouteMetrics, error)
}

// CatalogGW reads the vehicle and company records a rate is resolved from
type CatalogGW interface {
	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)
}
