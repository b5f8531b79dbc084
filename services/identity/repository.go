package identity

import (
	"context"
	"time"

	"github.com/urbancabz/console/internal/pkg/models"
)

// TokenRepo persists bearer tokens per client session and user type, plus each
// session's current user type. Missing keys return database.ErrCacheMiss.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/urbancabz/console/services/identity TokenRepo
type TokenRepo interface {
	SaveToken(ctx context.Context, sessionID string, userType models.UserType, token string, ttl time.Duration) error
	GetToken(ctx context.Context, sessionID string, userType models.UserType) (string, error)
	DeleteToken(ctx context.Context, sessionID string, userType models.UserType) error
	SetCurrent(ctx context.Context, sessionID string, userType models.UserType, ttl time.Duration) error
	GetCurrent(ctx context.Context, sessionID string) (models.UserType, error)
	ClearCurrent(ctx context.Context, sessionID string) error
}
