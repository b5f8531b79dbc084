package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/envelope"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/pricing"
)

type pricingGW struct {
	api *httpclient.APIClient
}

// NewPricingGW creates the pricing gateway
func NewPricingGW(api *httpclient.APIClient) pricing.PricingGW {
	return &pricingGW{api: api}
}

// FetchSettings reads GET /pricing
func (g *pricingGW) FetchSettings(ctx context.Context) (*models.PricingSettings, error) {
	env, err := g.api.Do(ctx, nethttp.MethodGet, "/pricing", nil)
	if err != nil {
		return nil, err
	}
	settings, err := decodeSettings(env.Data)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("%w: pricing settings", apperror.ErrNotFound)
	}
	return settings, nil
}

// SaveSettings writes PUT /pricing. An empty answer echoes what was sent.
func (g *pricingGW) SaveSettings(ctx context.Context, settings models.PricingSettings) (*models.PricingSettings, error) {
	env, err := g.api.Do(ctx, nethttp.MethodPut, "/pricing", settings)
	if err != nil {
		return nil, err
	}
	saved, err := decodeSettings(env.Data)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return &settings, nil
	}
	return saved, nil
}

// decodeSettings accepts data or data.settings; empty data gives nil
func decodeSettings(data json.RawMessage) (*models.PricingSettings, error) {
	raw := envelope.UnwrapObject(data, "settings")
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var settings models.PricingSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w: decode pricing settings: %v", apperror.ErrNetwork, err)
	}
	return &settings, nil
}
