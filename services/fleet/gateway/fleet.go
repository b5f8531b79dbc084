package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/envelope"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/fleet"
)

type fleetGW struct {
	api *httpclient.APIClient
}

// NewFleetGW creates the fleet and driver roster gateway
func NewFleetGW(api *httpclient.APIClient) fleet.FleetGW {
	return &fleetGW{api: api}
}

func vehiclePath(vehicleID string) string {
	return "/fleet/" + url.PathEscape(vehicleID)
}

func driverPath(driverID string) string {
	return "/admin/drivers/" + url.PathEscape(driverID)
}

// ListVehicles reads GET /fleet
func (g *fleetGW) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return list[models.Vehicle](ctx, g.api, "/fleet", "vehicles")
}

// GetVehicle reads GET /fleet/:id
func (g *fleetGW) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := g.api.GetObject(ctx, vehiclePath(vehicleID), "vehicle", &vehicle); err != nil {
		return nil, err
	}
	if vehicle.ID == "" {
		return nil, fmt.Errorf("%w: vehicle %s", apperror.ErrNotFound, vehicleID)
	}
	return &vehicle, nil
}

// CreateVehicle sends POST /fleet
func (g *fleetGW) CreateVehicle(ctx context.Context, input models.VehicleInput) (*models.Vehicle, error) {
	return write[models.Vehicle](ctx, g.api, nethttp.MethodPost, "/fleet", "vehicle", input)
}

// UpdateVehicle sends PUT /fleet/:id
func (g *fleetGW) UpdateVehicle(ctx context.Context, vehicleID string, input models.VehicleInput) (*models.Vehicle, error) {
	return write[models.Vehicle](ctx, g.api, nethttp.MethodPut, vehiclePath(vehicleID), "vehicle", input)
}

// DeleteVehicle sends DELETE /fleet/:id; the API keeps the row and marks it inactive
func (g *fleetGW) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return g.api.DeleteJSON(ctx, vehiclePath(vehicleID), nil)
}

// UploadImage posts a vehicle photo to /fleet/upload-image
func (g *fleetGW) UploadImage(ctx context.Context, filename string, content io.Reader) (*models.ImageUpload, error) {
	var upload models.ImageUpload
	if err := g.api.Upload(ctx, "/fleet/upload-image", "image", filename, content, &upload); err != nil {
		return nil, err
	}
	if upload.URL == "" {
		return nil, fmt.Errorf("%w: upload answered without a url", apperror.ErrNetwork)
	}
	return &upload, nil
}

// ListDrivers reads GET /admin/drivers
func (g *fleetGW) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	return list[models.Driver](ctx, g.api, "/admin/drivers", "drivers")
}

// CreateDriver sends POST /admin/drivers
func (g *fleetGW) CreateDriver(ctx context.Context, input models.DriverInput) (*models.Driver, error) {
	return write[models.Driver](ctx, g.api, nethttp.MethodPost, "/admin/drivers", "driver", input)
}

// UpdateDriver sends PUT /admin/drivers/:id
func (g *fleetGW) UpdateDriver(ctx context.Context, driverID string, input models.DriverInput) (*models.Driver, error) {
	return write[models.Driver](ctx, g.api, nethttp.MethodPut, driverPath(driverID), "driver", input)
}

// DeleteDriver sends DELETE /admin/drivers/:id
func (g *fleetGW) DeleteDriver(ctx context.Context, driverID string) error {
	return g.api.DeleteJSON(ctx, driverPath(driverID), nil)
}

func list[T any](ctx context.Context, api *httpclient.APIClient, path, entity string) ([]T, error) {
	raw, err := api.GetList(ctx, path, entity)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperror.ErrNetwork, entity, err)
	}
	return items, nil
}

// write sends body and decodes the saved entity from data or data.<entity>.
// An empty answer yields a zero entity for the caller to fill in.
func write[T any](ctx context.Context, api *httpclient.APIClient, method, path, entity string, body interface{}) (*T, error) {
	env, err := api.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var saved T
	raw := envelope.UnwrapObject(env.Data, entity)
	if len(raw) == 0 || string(raw) == "null" {
		return &saved, nil
	}
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperror.ErrNetwork, entity, err)
	}
	return &saved, nil
}
