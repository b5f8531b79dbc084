package gateway

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/apperror"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
)

type identityGW struct {
	api *httpclient.APIClient
}

// NewIdentityGW creates the gateway for the "who am I" endpoint
func NewIdentityGW(api *httpclient.APIClient) identity.IdentityGW {
	return &identityGW{api: api}
}

// FetchIdentity reads GET /admin/me. An API 401 becomes apperror.ErrUnauthenticated.
func (g *identityGW) FetchIdentity(ctx context.Context) (*models.Identity, error) {
	var me models.Identity
	if err := g.api.GetObject(ctx, "/admin/me", "user", &me); err != nil {
		if httpclient.IsUnauthorized(err) {
			return nil, apperror.ErrUnauthenticated
		}
		return nil, err
	}
	return &me, nil
}
