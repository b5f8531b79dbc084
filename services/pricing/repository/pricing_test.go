package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
)

func TestPricingRepo(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	repo := NewPricingRepository(&database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, time.Minute)
	ctx := context.Background()

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, database.ErrCacheMiss)

	settings := models.PricingSettings{MinKmThreshold: 120, MinKmAirportApply: true, ServiceAirportEnabled: true}
	require.NoError(t, repo.Set(ctx, settings))
	assert.Equal(t, time.Minute, mr.TTL(constants.KeyPricingSettings))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, *got)

	require.NoError(t, repo.Invalidate(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, database.ErrCacheMiss)
}

func TestPricingRepo_NilClient(t *testing.T) {
	repo := NewPricingRepository(nil, 0)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, models.PricingSettings{}))
	assert.NoError(t, repo.Invalidate(ctx))
	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, database.ErrCacheMiss)
}
