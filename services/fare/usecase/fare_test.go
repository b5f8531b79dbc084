package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/fare/mocks"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	airport = models.Location{Latitude: 19.0896, Longitude: 72.8673, Address: "Mumbai Airport"}
	pune    = models.Location{Latitude: 18.5289, Longitude: 73.8744, Address: "Pune Station"}
)

type fareMocks struct {
	repo     *mocks.MockFareRepo
	routing  *mocks.MockRoutingGW
	catalog  *mocks.MockCatalogGW
	settings *mocks.MockSettingsProvider
}

func newTestFareUC(t *testing.T) (*fareUC, fareMocks) {
	ctrl := gomock.NewController(t)
	m := fareMocks{
		repo:     mocks.NewMockFareRepo(ctrl),
		routing:  mocks.NewMockRoutingGW(ctrl),
		catalog:  mocks.NewMockCatalogGW(ctrl),
		settings: mocks.NewMockSettingsProvider(ctrl),
	}
	uc := NewFareUC(&models.Config{}, m.repo, m.routing, m.catalog, m.settings, fixedClock{now: testNow})
	return uc.(*fareUC), m
}

func allEnabled(threshold float64) *models.PricingSettings {
	return &models.PricingSettings{
		MinKmThreshold:          threshold,
		MinKmAirportApply:       true,
		ServiceAirportEnabled:   true,
		ServiceOnewayEnabled:    true,
		ServiceRoundtripEnabled: true,
	}
}

func TestQuote_TextPlacesGeocodedAndPriced(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)
	m.catalog.EXPECT().GetVehicle(ctx, "v-1").Return(&models.Vehicle{ID: "v-1", BasePricePerKm: 12, IsActive: true}, nil)
	m.repo.EXPECT().GetGeocode(ctx, "mumbai airport").Return(nil, database.ErrCacheMiss)
	m.routing.EXPECT().Geocode(ctx, "Mumbai Airport").Return(&airport, nil)
	m.repo.EXPECT().SetGeocode(ctx, "mumbai airport", airport).Return(nil)
	m.repo.EXPECT().GetGeocode(ctx, "pune station").Return(&pune, nil)
	m.repo.EXPECT().GetRoute(ctx, airport, pune).Return(nil, database.ErrCacheMiss)
	m.routing.EXPECT().Route(ctx, airport, pune).Return(&models.RouteMetrics{DistanceKm: 250, DurationMins: 240}, nil)
	m.repo.EXPECT().SetRoute(ctx, airport, pune, models.RouteMetrics{DistanceKm: 250, DurationMins: 240}).Return(nil)

	quote, err := uc.Quote(ctx, models.FareRequest{
		From:      models.PlaceFromText("Mumbai Airport"),
		To:        models.PlaceFromText("Pune Station"),
		VehicleID: "v-1",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RideTypeAirport, quote.RideType)
	assert.Equal(t, 250.0, quote.DistanceKm)
	assert.Equal(t, 240, quote.DurationMins)
	assert.Equal(t, 300.0, quote.BillableDistance)
	assert.Equal(t, int64(3600), quote.Fare)
	assert.True(t, quote.MinimumApplied)
}

func TestQuote_CoordinatesSkipGeocoding(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	from := models.Location{Latitude: 19.0896, Longitude: 72.8673}
	to := models.Location{Latitude: 18.5289, Longitude: 73.8744}

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(300), nil)
	m.repo.EXPECT().GetRoute(ctx, from, to).Return(&models.RouteMetrics{DistanceKm: 148.3, DurationMins: 186}, nil)

	quote, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromLocation(from.Latitude, from.Longitude),
		To:   models.PlaceFromLocation(to.Latitude, to.Longitude),
		Rate: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RideTypeOneway, quote.RideType)
	assert.Equal(t, 148.3, quote.BillableDistance)
	assert.Equal(t, int64(1483), quote.Fare)
	assert.False(t, quote.MinimumApplied)
}

func TestQuote_CompanyRateOverridesVehicle(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(&models.PricingSettings{MinKmThreshold: 100}, nil)
	m.catalog.EXPECT().GetCompany(ctx, "c-1").Return(&models.Company{ID: "c-1", CustomRatePerKm: 9}, nil)
	m.repo.EXPECT().GetGeocode(ctx, gomock.Any()).Return(&airport, nil)
	m.repo.EXPECT().GetGeocode(ctx, gomock.Any()).Return(&pune, nil)
	m.repo.EXPECT().GetRoute(ctx, airport, pune).Return(&models.RouteMetrics{DistanceKm: 150}, nil)

	quote, err := uc.Quote(ctx, models.FareRequest{
		From:      models.PlaceFromText("Andheri East"),
		To:        models.PlaceFromText("Pune Station"),
		CompanyID: "c-1",
		VehicleID: "v-1",
		Corporate: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 9.0, quote.Rate)
	assert.Equal(t, int64(1350), quote.Fare)
}

func TestQuote_ValidationBeforeAnyCall(t *testing.T) {
	past := testNow.Add(-time.Hour)
	pickup := testNow.Add(2 * time.Hour)
	early := testNow.Add(time.Hour)

	tests := []struct {
		name  string
		req   models.FareRequest
		field string
	}{
		{
			name:  "missing pickup",
			req:   models.FareRequest{To: models.PlaceFromText("Pune"), Rate: 10},
			field: "from",
		},
		{
			name:  "missing drop",
			req:   models.FareRequest{From: models.PlaceFromText("Pune"), Rate: 10},
			field: "to",
		},
		{
			name:  "identical text ignoring case and spaces",
			req:   models.FareRequest{From: models.PlaceFromText("Pune Station"), To: models.PlaceFromText("  pune station "), Rate: 10},
			field: "to",
		},
		{
			name:  "pickup in the past",
			req:   models.FareRequest{From: models.PlaceFromText("A"), To: models.PlaceFromText("B"), Rate: 10, PickupAt: &past},
			field: "pickup_at",
		},
		{
			name:  "return before pickup",
			req:   models.FareRequest{From: models.PlaceFromText("A"), To: models.PlaceFromText("B"), Rate: 10, PickupAt: &pickup, ReturnAt: &early},
			field: "return_at",
		},
		{
			name:  "invalid coordinates",
			req:   models.FareRequest{From: models.PlaceFromLocation(123, 0), To: models.PlaceFromText("B"), Rate: 10},
			field: "from",
		},
		{
			name:  "unknown ride type",
			req:   models.FareRequest{From: models.PlaceFromText("A"), To: models.PlaceFromText("B"), Rate: 10, RideType: "helicopter"},
			field: "ride_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestFareUC(t)

			quote, err := uc.Quote(context.Background(), tt.req)

			assert.Nil(t, quote)
			var verr *apperror.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestQuote_DisabledRideTypeRejectedForCustomers(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	settings := allEnabled(100)
	settings.ServiceAirportEnabled = false
	m.settings.EXPECT().GetSettings(ctx).Return(settings, nil)

	_, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("Pune Airport"),
		To:   models.PlaceFromText("Hinjewadi"),
		Rate: 10,
	})

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "ride_type")
}

func TestQuote_InactiveVehicleRejected(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)
	m.catalog.EXPECT().GetVehicle(ctx, "v-old").Return(&models.Vehicle{ID: "v-old", BasePricePerKm: 10}, nil)

	_, err := uc.Quote(ctx, models.FareRequest{
		From:      models.PlaceFromText("Andheri"),
		To:        models.PlaceFromText("Thane"),
		VehicleID: "v-old",
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestQuote_NoRateRejected(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)

	_, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("Andheri"),
		To:   models.PlaceFromText("Thane"),
	})

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "rate")
}

func TestQuote_DifferentQueriesGeocodingCloseTogetherAreQuoted(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	terminal := models.Location{Latitude: airport.Latitude + 0.0002, Longitude: airport.Longitude}

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)
	m.repo.EXPECT().GetGeocode(ctx, "csmia t1").Return(&airport, nil)
	m.repo.EXPECT().GetGeocode(ctx, "csmia t2").Return(&terminal, nil)
	m.repo.EXPECT().GetRoute(ctx, airport, terminal).Return(&models.RouteMetrics{DistanceKm: 3.2, DurationMins: 12}, nil)

	quote, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("CSMIA T1"),
		To:   models.PlaceFromText("CSMIA T2"),
		Rate: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, 3.2, quote.DistanceKm)
}

func TestQuote_RouteFailurePropagates(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)
	m.repo.EXPECT().GetGeocode(ctx, gomock.Any()).Return(&airport, nil)
	m.repo.EXPECT().GetGeocode(ctx, gomock.Any()).Return(&pune, nil)
	m.repo.EXPECT().GetRoute(ctx, airport, pune).Return(nil, database.ErrCacheMiss)
	m.routing.EXPECT().Route(ctx, airport, pune).
		Return(nil, &apperror.CollaboratorError{Op: "route", Err: errors.New("no route found")})

	quote, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("Andheri"),
		To:   models.PlaceFromText("Pune"),
		Rate: 10,
	})

	assert.Nil(t, quote)
	assert.True(t, apperror.IsCollaborator(err))
}

func TestQuote_GeocodeFailurePropagates(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(100), nil)
	m.repo.EXPECT().GetGeocode(ctx, "atlantis").Return(nil, database.ErrCacheMiss)
	m.routing.EXPECT().Geocode(ctx, "Atlantis").
		Return(nil, &apperror.CollaboratorError{Op: "geocode", Err: errors.New("no match")})

	_, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("Atlantis"),
		To:   models.PlaceFromText("Pune"),
		Rate: 10,
	})

	assert.True(t, apperror.IsCollaborator(err))
}

func TestQuote_CacheOutageFallsThrough(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()
	down := errors.New("dial tcp: connection refused")

	m.settings.EXPECT().GetSettings(ctx).Return(allEnabled(1000), nil)
	m.repo.EXPECT().GetGeocode(ctx, "andheri").Return(nil, down)
	m.routing.EXPECT().Geocode(ctx, "Andheri").Return(&airport, nil)
	m.repo.EXPECT().SetGeocode(ctx, "andheri", airport).Return(down)
	m.repo.EXPECT().GetGeocode(ctx, "pune").Return(nil, down)
	m.routing.EXPECT().Geocode(ctx, "Pune").Return(&pune, nil)
	m.repo.EXPECT().SetGeocode(ctx, "pune", pune).Return(down)
	m.repo.EXPECT().GetRoute(ctx, airport, pune).Return(nil, down)
	m.routing.EXPECT().Route(ctx, airport, pune).Return(&models.RouteMetrics{DistanceKm: 150}, nil)
	m.repo.EXPECT().SetRoute(ctx, airport, pune, gomock.Any()).Return(down)

	quote, err := uc.Quote(ctx, models.FareRequest{
		From: models.PlaceFromText("Andheri"),
		To:   models.PlaceFromText("Pune"),
		Rate: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1500), quote.Fare)
}

func TestReverseGeocode(t *testing.T) {
	uc, m := newTestFareUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetReverse(ctx, 19.0896, 72.8673).Return(nil, database.ErrCacheMiss)
	m.routing.EXPECT().Reverse(ctx, 19.0896, 72.8673).Return(&airport, nil)
	m.repo.EXPECT().SetReverse(ctx, 19.0896, 72.8673, airport).Return(nil)

	loc, err := uc.ReverseGeocode(ctx, 19.0896, 72.8673)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai Airport", loc.Address)

	_, err = uc.ReverseGeocode(ctx, 91, 0)
	assert.True(t, apperror.IsValidation(err))
}
