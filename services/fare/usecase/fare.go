package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/fare"
)

// fareUC implements the fare.FareUC interface
type fareUC struct {
	cfg      *models.Config
	fareRepo fare.FareRepo
	routing  fare.RoutingGW
	catalog  fare.CatalogGW
	settings fare.SettingsProvider
	clock    models.Clock
}

// NewFareUC creates a new fare use case. A nil clock uses the wall clock.
func NewFareUC(
	cfg *models.Config,
	fareRepo fare.FareRepo,
	routing fare.RoutingGW,
	catalog fare.CatalogGW,
	settings fare.SettingsProvider,
	clock models.Clock,
) fare.FareUC {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &fareUC{
		cfg:      cfg,
		fareRepo: fareRepo,
		routing:  routing,
		catalog:  catalog,
		settings: settings,
		clock:    clock,
	}
}

// Quote resolves the trip metrics between two places and prices them
func (uc *fareUC) Quote(ctx context.Context, req models.FareRequest) (*models.FareQuote, error) {
	if err := validateRequest(req, uc.clock.Now()); err != nil {
		return nil, err
	}

	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	rideType := resolveRideType(req)
	if !req.Corporate && !settings.ServiceEnabled(rideType) {
		return nil, apperror.NewValidationError("ride_type",
			fmt.Sprintf("%s rides are not available right now", rideType))
	}

	rate, err := uc.resolveRate(ctx, req)
	if err != nil {
		return nil, err
	}

	from, err := uc.locate(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := uc.locate(ctx, req.To)
	if err != nil {
		return nil, err
	}
	metrics, err := uc.route(ctx, *from, *to)
	if err != nil {
		return nil, err
	}

	billing := ApplyBillingRule(metrics.DistanceKm, *settings, rideType, rate)

	logger.Debug("Fare quoted",
		logger.String("ride_type", string(rideType)),
		logger.Float64("distance_km", metrics.DistanceKm),
		logger.Float64("billable_km", billing.BillableDistance),
		logger.Int64("fare", billing.Fare))

	return &models.FareQuote{
		DistanceKm:       metrics.DistanceKm,
		DurationMins:     metrics.DurationMins,
		BillableDistance: billing.BillableDistance,
		Fare:             billing.Fare,
		RideType:         rideType,
		Rate:             rate,
		MinimumApplied:   billing.MinimumApplied,
		From:             from,
		To:               to,
	}, nil
}

// ReverseGeocode names the place at the given coordinates
func (uc *fareUC) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error) {
	point := models.Location{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		return nil, apperror.NewValidationError("location", "Invalid coordinates")
	}

	cached, err := uc.fareRepo.GetReverse(ctx, lat, lng)
	if err == nil {
		return cached, nil
	}
	uc.logCacheError("reverse", err)

	location, err := uc.routing.Reverse(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	if err := uc.fareRepo.SetReverse(ctx, lat, lng, *location); err != nil {
		uc.logCacheError("reverse", err)
	}
	return location, nil
}

// resolveRate prefers a company's custom rate, then the vehicle's base rate, then an
// explicit rate in the request
func (uc *fareUC) resolveRate(ctx context.Context, req models.FareRequest) (float64, error) {
	if req.CompanyID != "" {
		company, err := uc.catalog.GetCompany(ctx, req.CompanyID)
		if err != nil {
			return 0, err
		}
		if company.CustomRatePerKm > 0 {
			return company.CustomRatePerKm, nil
		}
	}

	if req.VehicleID != "" {
		vehicle, err := uc.catalog.GetVehicle(ctx, req.VehicleID)
		if err != nil {
			return 0, err
		}
		if !vehicle.IsActive && !req.Corporate {
			return 0, apperror.NewValidationError("vehicle_id", "This vehicle is no longer available")
		}
		if vehicle.BasePricePerKm > 0 {
			return vehicle.BasePricePerKm, nil
		}
	}

	if req.Rate > 0 {
		return req.Rate, nil
	}
	return 0, apperror.NewValidationError("rate", "Select a vehicle or enter a rate per km")
}

// locate returns the coordinates of a place, geocoding free text through the cache
func (uc *fareUC) locate(ctx context.Context, place models.Place) (*models.Location, error) {
	if place.HasCoordinates() {
		location := *place.Location
		if location.Address == "" {
			location.Address = place.Query
		}
		return &location, nil
	}

	query := utils.NormalizeText(place.Query)
	cached, err := uc.fareRepo.GetGeocode(ctx, query)
	if err == nil {
		return cached, nil
	}
	uc.logCacheError("geocode", err)

	location, err := uc.routing.Geocode(ctx, place.Query)
	if err != nil {
		return nil, err
	}
	if err := uc.fareRepo.SetGeocode(ctx, query, *location); err != nil {
		uc.logCacheError("geocode", err)
	}
	return location, nil
}

func (uc *fareUC) route(ctx context.Context, from, to models.Location) (*models.RouteMetrics, error) {
	cached, err := uc.fareRepo.GetRoute(ctx, from, to)
	if err == nil {
		return cached, nil
	}
	uc.logCacheError("route", err)

	metrics, err := uc.routing.Route(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if err := uc.fareRepo.SetRoute(ctx, from, to, *metrics); err != nil {
		uc.logCacheError("route", err)
	}
	return metrics, nil
}

// logCacheError reports cache failures; the quote goes on without the cache
func (uc *fareUC) logCacheError(kind string, err error) {
	if errors.Is(err, database.ErrCacheMiss) {
		return
	}
	logger.Warn("Fare cache unavailable",
		logger.String("kind", kind),
		logger.Err(err))
}
