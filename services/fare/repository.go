package fare

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// FareRepo caches collaborator answers. Misses return database.ErrCacheMiss.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/urbancabz/console/services/fare FareRepo
type FareRepo interface {
	GetGeocode(ctx context.Context, query string) (*models.Location, error)
	SetGeocode(ctx context.Context, query string, location models.Location) error
	GetReverse(ctx context.Context, lat, lng float64) (*models.Location, error)
	SetReverse(ctx context.Context, lat, lng float64, location models.Location) error
	GetRoute(ctx context.Context, from, to models.Location) (*models.RouteMetrics, error)
	SetRoute(ctx context.Context, from, to models.Location, metrics models.RouteMetrics) error
}
