package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/fare"
)

const (
	// DefaultGeocodeTTL keeps place lookups for a day; places rarely move
	DefaultGeocodeTTL = 24 * time.Hour
	// DefaultRouteTTL keeps route metrics shorter since road closures change them
	DefaultRouteTTL = 6 * time.Hour
)

type fareRepo struct {
	redisClient *database.RedisClient
	geocodeTTL  time.Duration
	routeTTL    time.Duration
}

// NewFareRepository creates a Redis cache for collaborator answers.
// A nil client gives a repository that always misses.
func NewFareRepository(redisClient *database.RedisClient, cfg models.CacheConfig) fare.FareRepo {
	r := &fareRepo{
		redisClient: redisClient,
		geocodeTTL:  cfg.GeocodeTTL,
		routeTTL:    cfg.RouteTTL,
	}
	if r.geocodeTTL <= 0 {
		r.geocodeTTL = DefaultGeocodeTTL
	}
	if r.routeTTL <= 0 {
		r.routeTTL = DefaultRouteTTL
	}
	return r
}

// GetGeocode returns the cached coordinates of a normalised query
func (r *fareRepo) GetGeocode(ctx context.Context, query string) (*models.Location, error) {
	return r.getLocation(ctx, fmt.Sprintf(constants.KeyGeocode, query))
}

// SetGeocode caches the coordinates of a normalised query
func (r *fareRepo) SetGeocode(ctx context.Context, query string, location models.Location) error {
	return r.set(ctx, fmt.Sprintf(constants.KeyGeocode, query), location, r.geocodeTTL)
}

// GetReverse returns the cached place name of the geohash cell holding the point
func (r *fareRepo) GetReverse(ctx context.Context, lat, lng float64) (*models.Location, error) {
	return r.getLocation(ctx, reverseKey(lat, lng))
}

// SetReverse caches the place name of the geohash cell holding the point
func (r *fareRepo) SetReverse(ctx context.Context, lat, lng float64, location models.Location) error {
	return r.set(ctx, reverseKey(lat, lng), location, r.geocodeTTL)
}

// GetRoute returns cached metrics for the directed pair of geohash cells
func (r *fareRepo) GetRoute(ctx context.Context, from, to models.Location) (*models.RouteMetrics, error) {
	if r.redisClient == nil {
		return nil, database.ErrCacheMiss
	}
	var metrics models.RouteMetrics
	if err := r.redisClient.GetJSON(ctx, routeKey(from, to), &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// SetRoute caches metrics for the directed pair of geohash cells
func (r *fareRepo) SetRoute(ctx context.Context, from, to models.Location, metrics models.RouteMetrics) error {
	return r.set(ctx, routeKey(from, to), metrics, r.routeTTL)
}

func (r *fareRepo) getLocation(ctx context.Context, key string) (*models.Location, error) {
	if r.redisClient == nil {
		return nil, database.ErrCacheMiss
	}
	var location models.Location
	if err := r.redisClient.GetJSON(ctx, key, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *fareRepo) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.redisClient == nil {
		return nil
	}
	return r.redisClient.SetJSON(ctx, key, value, ttl)
}

func routeKey(from, to models.Location) string {
	return fmt.Sprintf(constants.KeyRoute, utils.RouteCellKey(from, to))
}

func reverseKey(lat, lng float64) string {
	cell := utils.EncodeLocation(models.Location{Latitude: lat, Longitude: lng}, utils.RoutePrecision)
	return fmt.Sprintf(constants.KeyReverse, cell)
}
