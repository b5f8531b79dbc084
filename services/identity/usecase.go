package identity

import (
	"context"

	"github.com/urbancabz/console/internal/pkg/models"
)

// SessionUC stores bearer tokens keyed by client session and user type. It
// satisfies both the API client's token source and the session middleware's store.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/urbancabz/console/services/identity SessionUC,IdentityUC
type SessionUC interface {
	Token(ctx context.Context, userType models.UserType) (string, error)
	CurrentUserType(ctx context.Context) (models.UserType, error)
	Login(ctx context.Context, req models.SessionRequest) (*models.Session, error)
	Session(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context, userType models.UserType) error
}

// IdentityUC answers the memoised "who am I" check
type IdentityUC interface {
	Me(ctx context.Context) (*models.Identity, error)
}
