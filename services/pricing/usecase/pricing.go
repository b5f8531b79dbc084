package usecase

import (
	"context"
	"errors"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/pricing"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	pricingRepo pricing.PricingRepo
	pricingGW   pricing.PricingGW
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(pricingRepo pricing.PricingRepo, pricingGW pricing.PricingGW) pricing.PricingUC {
	return &pricingUC{
		pricingRepo: pricingRepo,
		pricingGW:   pricingGW,
	}
}

// GetSettings returns the cached settings, fetching them on a miss
func (uc *pricingUC) GetSettings(ctx context.Context) (*models.PricingSettings, error) {
	cached, err := uc.pricingRepo.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, database.ErrCacheMiss) {
		logger.Warn("Pricing cache unavailable", logger.Err(err))
	}

	settings, err := uc.pricingGW.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.pricingRepo.Set(ctx, *settings); err != nil {
		logger.Warn("Failed to cache pricing settings", logger.Err(err))
	}
	return settings, nil
}

// UpdateSettings saves the settings and drops the cached copy
func (uc *pricingUC) UpdateSettings(ctx context.Context, settings models.PricingSettings) (*models.PricingSettings, error) {
	if settings.MinKmThreshold < 0 {
		return nil, apperror.NewValidationError("min_km_threshold", "Minimum km threshold cannot be negative")
	}

	saved, err := uc.pricingGW.SaveSettings(ctx, settings)
	if err != nil {
		return nil, err
	}

	if err := uc.pricingRepo.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate pricing cache", logger.Err(err))
	}

	logger.Info("Pricing settings updated",
		logger.Float64("min_km_threshold", saved.MinKmThreshold),
		logger.Any("services", saved.EnabledRideTypes()))

	return saved, nil
}

// EnabledServices lists the ride types customers may book
func (uc *pricingUC) EnabledServices(ctx context.Context) ([]models.RideType, error) {
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return settings.EnabledRideTypes(), nil
}
