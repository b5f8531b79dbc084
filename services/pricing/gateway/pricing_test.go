package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
)

func newGW(url string) *pricingGW {
	return NewPricingGW(httpclient.NewAPIClient(models.APIConfig{BaseURL: url}, nil)).(*pricingGW)
}

func TestPricingGW_FetchSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "flat data", body: `{"success":true,"data":{"min_km_threshold":120,"min_km_airport_apply":true,"service_oneway_enabled":true}}`},
		{name: "nested settings", body: `{"success":true,"data":{"settings":{"min_km_threshold":120,"min_km_airport_apply":true,"service_oneway_enabled":true}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/pricing", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			settings, err := newGW(server.URL).FetchSettings(context.Background())

			require.NoError(t, err)
			assert.Equal(t, 120.0, settings.MinKmThreshold)
			assert.True(t, settings.MinKmAirportApply)
			assert.True(t, settings.ServiceOnewayEnabled)
			assert.False(t, settings.ServiceAirportEnabled)
		})
	}
}

func TestPricingGW_FetchSettings_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	_, err := newGW(server.URL).FetchSettings(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPricingGW_SaveSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body models.PricingSettings
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 150.0, body.MinKmThreshold)
		w.Write([]byte(`{"success":true,"message":"Pricing updated"}`))
	}))
	defer server.Close()

	saved, err := newGW(server.URL).SaveSettings(context.Background(), models.PricingSettings{MinKmThreshold: 150})

	require.NoError(t, err)
	assert.Equal(t, 150.0, saved.MinKmThreshold)
}
