package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/cache"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/database"
	jwtpkg "github.com/urbancabz/console/internal/pkg/jwt"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
)

// sessionUC implements the identity.SessionUC interface
type sessionUC struct {
	repo   identity.TokenRepo
	cache  *cache.TTLCache[*models.Identity]
	leeway time.Duration
	clock  models.Clock
}

// NewSessionUC creates the token store use case. identities may be nil; when set,
// the cached identity of a session and user type is dropped whenever its token changes.
func NewSessionUC(cfg models.JWTConfig, repo identity.TokenRepo, identities *cache.TTLCache[*models.Identity], clock models.Clock) identity.SessionUC {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &sessionUC{
		repo:   repo,
		cache:  identities,
		leeway: cfg.Leeway,
		clock:  clock,
	}
}

// identityKey scopes a cached identity to one client session and user type
func identityKey(sessionID string, userType models.UserType) string {
	return sessionID + ":" + string(userType)
}

// Token returns a live token for userType in the caller's session. Missing,
// malformed and expired tokens all read as logged out; expired ones are removed
// on the way.
func (uc *sessionUC) Token(ctx context.Context, userType models.UserType) (string, error) {
	sessionID := appcontext.GetSessionID(ctx)
	if sessionID == "" {
		return "", apperror.ErrUnauthenticated
	}

	token, err := uc.repo.GetToken(ctx, sessionID, userType)
	if errors.Is(err, database.ErrCacheMiss) {
		return "", apperror.ErrUnauthenticated
	}
	if err != nil {
		return "", err
	}

	if _, err := jwtpkg.CheckExpiry(token, uc.clock.Now(), uc.leeway); err != nil {
		logger.Info("Dropping unusable session token",
			logger.String("user_type", string(userType)),
			logger.Err(err))
		if derr := uc.repo.DeleteToken(ctx, sessionID, userType); derr != nil {
			logger.Warn("Failed to delete session token", logger.Err(derr))
		}
		uc.forget(sessionID, userType)
		return "", apperror.ErrUnauthenticated
	}
	return token, nil
}

// CurrentUserType returns the user type the caller's session acts as by default
func (uc *sessionUC) CurrentUserType(ctx context.Context) (models.UserType, error) {
	sessionID := appcontext.GetSessionID(ctx)
	if sessionID == "" {
		return "", apperror.ErrUnauthenticated
	}
	current, err := uc.repo.GetCurrent(ctx, sessionID)
	if errors.Is(err, database.ErrCacheMiss) {
		return "", apperror.ErrUnauthenticated
	}
	return current, err
}

// Login stores a token obtained from the API's login endpoint and makes its user
// type the current one. A presented session that is still live is reused so one
// client can hold tokens for several user types; anything else gets a new id.
func (uc *sessionUC) Login(ctx context.Context, req models.SessionRequest) (*models.Session, error) {
	verr := &apperror.ValidationError{}
	if !req.UserType.Valid() {
		verr.Add("user_type", "User type must be admin, customer or business")
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		verr.Add("token", "Token is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	claims, err := jwtpkg.CheckExpiry(token, now, uc.leeway)
	switch {
	case errors.Is(err, jwtpkg.ErrTokenExpired):
		return nil, apperror.NewValidationError("token", "Token has already expired")
	case err != nil:
		return nil, apperror.NewValidationError("token", "Token is not a valid JWT")
	}

	var ttl time.Duration
	expiresAt := claims.ExpiresAt()
	if expiresAt != nil {
		ttl = expiresAt.Sub(now) + uc.leeway
	}

	sessionID, err := uc.sessionFor(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveToken(ctx, sessionID, req.UserType, token, ttl); err != nil {
		return nil, err
	}
	if err := uc.repo.SetCurrent(ctx, sessionID, req.UserType, ttl); err != nil {
		return nil, err
	}
	uc.forget(sessionID, req.UserType)

	logger.Info("Session stored",
		logger.String("user_type", string(req.UserType)),
		logger.String("subject", claims.Subject()))

	return &models.Session{ID: sessionID, UserType: req.UserType, ExpiresAt: expiresAt}, nil
}

// sessionFor keeps the presented session id only while the store still knows it
func (uc *sessionUC) sessionFor(ctx context.Context) (string, error) {
	if sessionID := appcontext.GetSessionID(ctx); sessionID != "" {
		_, err := uc.repo.GetCurrent(ctx, sessionID)
		if err == nil {
			return sessionID, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			return "", err
		}
	}
	return uuid.New().String(), nil
}

// Session describes the live session of the caller's current user type
func (uc *sessionUC) Session(ctx context.Context) (*models.Session, error) {
	current, err := uc.CurrentUserType(ctx)
	if err != nil {
		return nil, err
	}
	token, err := uc.Token(ctx, current)
	if err != nil {
		return nil, err
	}
	session := &models.Session{ID: appcontext.GetSessionID(ctx), UserType: current}
	if claims, err := jwtpkg.Parse(token); err == nil {
		session.ExpiresAt = claims.ExpiresAt()
	}
	return session, nil
}

// Logout removes the caller's token for userType, clearing the current user type
// when it pointed there. A caller without a session has nothing to remove.
func (uc *sessionUC) Logout(ctx context.Context, userType models.UserType) error {
	if !userType.Valid() {
		return apperror.NewValidationError("user_type", "User type must be admin, customer or business")
	}
	sessionID := appcontext.GetSessionID(ctx)
	if sessionID == "" {
		return nil
	}
	if err := uc.repo.DeleteToken(ctx, sessionID, userType); err != nil {
		return err
	}
	uc.forget(sessionID, userType)

	current, err := uc.repo.GetCurrent(ctx, sessionID)
	if err == nil && current == userType {
		return uc.repo.ClearCurrent(ctx, sessionID)
	}
	return nil
}

func (uc *sessionUC) forget(sessionID string, userType models.UserType) {
	if uc.cache != nil {
		uc.cache.Invalidate(identityKey(sessionID, userType))
	}
}
