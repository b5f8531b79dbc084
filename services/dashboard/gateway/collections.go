package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urbancabz/console/internal/pkg/constants"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/services/dashboard"
)

type source struct {
	path   string
	entity string
}

// sources maps each dashboard collection to its list endpoint and the key the API
// may nest the list under
var sources = map[string]source{
	constants.CollectionBookings:    {path: "/admin/bookings", entity: "bookings"},
	constants.CollectionB2BBookings: {path: "/b2b/bookings", entity: "bookings"},
	constants.CollectionB2BRequests: {path: "/b2b/requests", entity: "requests"},
	constants.CollectionFleet:       {path: "/fleet", entity: "vehicles"},
	constants.CollectionDrivers:     {path: "/admin/drivers", entity: "drivers"},
	constants.CollectionCompanies:   {path: "/b2b/companies", entity: "companies"},
	constants.CollectionUsers:       {path: "/admin/users", entity: "users"},
}

type collectionGW struct {
	api *httpclient.APIClient
}

// NewCollectionGW creates the gateway that lists dashboard collections from the API
func NewCollectionGW(api *httpclient.APIClient) dashboard.CollectionGW {
	return &collectionGW{api: api}
}

// FetchCollection lists one collection, unwrapping whichever envelope shape the
// endpoint answers with
func (g *collectionGW) FetchCollection(ctx context.Context, collection string) (json.RawMessage, error) {
	src, ok := sources[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	return g.api.GetList(ctx, src.path, src.entity)
}
