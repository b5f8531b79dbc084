package pricing

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// PricingGW reads and writes the pricing singleton on the API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/pricing PricingGW
type PricingGW interface {
	FetchSettings(ctx context.Context) (*models.PricingSettings, error)
	SaveSettings(ctx context.Context, settings models.PricingSettings) (*models.PricingSettings, error)
}
