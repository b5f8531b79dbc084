package repository

import (
	"context"
	"time"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/pricing"
)

// DefaultPricingTTL bounds how stale another instance's view of the settings can be
const DefaultPricingTTL = 5 * time.Minute

type pricingRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewPricingRepository creates the Redis-backed settings cache.
// A nil client gives a repository that always misses.
func NewPricingRepository(redisClient *database.RedisClient, ttl time.Duration) pricing.PricingRepo {
	if ttl <= 0 {
		ttl = DefaultPricingTTL
	}
	return &pricingRepo{redisClient: redisClient, ttl: ttl}
}

// Get returns the cached settings
func (r *pricingRepo) Get(ctx context.Context) (*models.PricingSettings, error) {
	if r.redisClient == nil {
		return nil, database.ErrCacheMiss
	}
	var settings models.PricingSettings
	if err := r.redisClient.GetJSON(ctx, constants.KeyPricingSettings, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Set caches the settings
func (r *pricingRepo) Set(ctx context.Context, settings models.PricingSettings) error {
	if r.redisClient == nil {
		return nil
	}
	return r.redisClient.SetJSON(ctx, constants.KeyPricingSettings, settings, r.ttl)
}

// Invalidate drops the cached settings
func (r *pricingRepo) Invalidate(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	return r.redisClient.Delete(ctx, constants.KeyPricingSettings)
}
