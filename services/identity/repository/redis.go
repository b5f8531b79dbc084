package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
)

type redisTokenRepo struct {
	redisClient *database.RedisClient
}

// NewRedisTokenRepository creates the session store shared by every console instance
func NewRedisTokenRepository(redisClient *database.RedisClient) identity.TokenRepo {
	return &redisTokenRepo{redisClient: redisClient}
}

func tokenKey(sessionID string, userType models.UserType) string {
	return fmt.Sprintf(constants.KeySessionToken, sessionID, userType)
}

func currentKey(sessionID string) string {
	return fmt.Sprintf(constants.KeySessionCurrent, sessionID)
}

// SaveToken stores the token; a zero ttl keeps it until deleted
func (r *redisTokenRepo) SaveToken(ctx context.Context, sessionID string, userType models.UserType, token string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, tokenKey(sessionID, userType), token, ttl)
}

// GetToken returns the stored token
func (r *redisTokenRepo) GetToken(ctx context.Context, sessionID string, userType models.UserType) (string, error) {
	return r.redisClient.Get(ctx, tokenKey(sessionID, userType))
}

// DeleteToken removes the stored token
func (r *redisTokenRepo) DeleteToken(ctx context.Context, sessionID string, userType models.UserType) error {
	return r.redisClient.Delete(ctx, tokenKey(sessionID, userType))
}

// SetCurrent records which user type the session acts as by default
func (r *redisTokenRepo) SetCurrent(ctx context.Context, sessionID string, userType models.UserType, ttl time.Duration) error {
	return r.redisClient.Set(ctx, currentKey(sessionID), string(userType), ttl)
}

// GetCurrent returns the session's default user type
func (r *redisTokenRepo) GetCurrent(ctx context.Context, sessionID string) (models.UserType, error) {
	val, err := r.redisClient.Get(ctx, currentKey(sessionID))
	if err != nil {
		return "", err
	}
	return models.UserType(val), nil
}

// ClearCurrent forgets the session's default user type
func (r *redisTokenRepo) ClearCurrent(ctx context.Context, sessionID string) error {
	return r.redisClient.Delete(ctx, currentKey(sessionID))
}
