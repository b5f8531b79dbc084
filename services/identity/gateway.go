package identity

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/identity IdentityGW
type IdentityGW interface {
	FetchIdentity(ctx context.Context) (*models.Identity, error)
}
