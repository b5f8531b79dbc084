package pricing

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// PricingUC defines the interface for the global pricing settings
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/pricing PricingUC
type PricingUC interface {
	GetSettings(ctx context.Context) (*models.PricingSettings, error)
	UpdateSettings(ctx context.Context, settings models.PricingSettings) (*models.PricingSettings, error)
	EnabledServices(ctx context.Context) ([]models.RideType, error)
}
