package usecase

import (
	"context"
	"errors"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/cache"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
)

// identityUC implements the identity.IdentityUC interface
type identityUC struct {
	identityGW identity.IdentityGW
	cache      *cache.TTLCache[*models.Identity]
}

// NewIdentityUC creates the identity check. identities is shared with the session
// use case so a new or removed token drops the stale answer.
func NewIdentityUC(identityGW identity.IdentityGW, identities *cache.TTLCache[*models.Identity]) identity.IdentityUC {
	return &identityUC{
		identityGW: identityGW,
		cache:      identities,
	}
}

// Me returns who the acting token belongs to. Concurrent callers of one session
// share one request and the answer is reused until the cache TTL runs out.
func (uc *identityUC) Me(ctx context.Context) (*models.Identity, error) {
	key := identityKey(appcontext.GetSessionID(ctx), appcontext.GetUserType(ctx))
	me, err := uc.cache.Get(ctx, key, func(ctx context.Context) (*models.Identity, error) {
		return uc.identityGW.FetchIdentity(ctx)
	})
	if errors.Is(err, apperror.ErrUnauthenticated) {
		uc.cache.Invalidate(key)
	}
	return me, err
}
