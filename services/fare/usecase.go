package fare

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// FareUC defines the interface for fare and trip-metrics resolution
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/fare FareUC
type FareUC interface {
	Quote(ctx context.Context, req models.FareRequest) (*models.FareQuote, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error)
}

// SettingsProvider supplies the current pricing settings
// go:generate mockgen -destination=mocks/mock_settings.go -package=mocks github.com/urbancabz/console/services/fare SettingsProvider
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*models.PricingSettings, error)
}
