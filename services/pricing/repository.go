package pricing

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// PricingRepo caches the pricing singleton. A miss returns database.ErrCacheMiss.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/urbancabz/console/services/pricing PricingRepo
type PricingRepo interface {
	Get(ctx context.Context) (*models.PricingSettings, error)
	Set(ctx context.Context, settings models.PricingSettings) error
	Invalidate(ctx context.Context) error
}
