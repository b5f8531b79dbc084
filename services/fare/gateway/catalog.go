package gateway

import (
	"context"
	"net/url"

	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/fare"
)

type catalogGW struct {
	api *httpclient.APIClient
}

// NewCatalogGW creates a gateway reading vehicles and companies from the API
func NewCatalogGW(api *httpclient.APIClient) fare.CatalogGW {
	return &catalogGW{api: api}
}

// GetVehicle fetches one fleet vehicle
func (g *catalogGW) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := g.api.GetObject(ctx, "/fleet/"+url.PathEscape(vehicleID), "vehicle", &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetCompany fetches one corporate account
func (g *catalogGW) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	var company models.Company
	if err := g.api.GetObject(ctx, "/b2b/companies/"+url.PathEscape(companyID), "company", &company); err != nil {
		return nil, err
	}
	return &company, nil
}
