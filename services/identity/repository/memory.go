package repository

import (
	"context"
	"sync"
	"time"

	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
)

type memoryValue struct {
	value     string
	expiresAt time.Time
}

type memorySession struct {
	tokens  map[models.UserType]memoryValue
	current memoryValue
}

type memoryTokenRepo struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
	clock    models.Clock
}

// NewMemoryTokenRepository creates a process-local session store for single-node use
func NewMemoryTokenRepository(clock models.Clock) identity.TokenRepo {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &memoryTokenRepo{
		sessions: make(map[string]*memorySession),
		clock:    clock,
	}
}

func (r *memoryTokenRepo) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return r.clock.Now().Add(ttl)
}

func (r *memoryTokenRepo) live(v memoryValue) bool {
	return v.value != "" && (v.expiresAt.IsZero() || r.clock.Now().Before(v.expiresAt))
}

// session returns the session's state, creating it; callers hold the write lock
func (r *memoryTokenRepo) session(sessionID string) *memorySession {
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &memorySession{tokens: make(map[models.UserType]memoryValue)}
		r.sessions[sessionID] = s
	}
	return s
}

// prune drops a session left with nothing in it; callers hold the write lock
func (r *memoryTokenRepo) prune(sessionID string) {
	if s, ok := r.sessions[sessionID]; ok && len(s.tokens) == 0 && s.current.value == "" {
		delete(r.sessions, sessionID)
	}
}

// SaveToken stores the token; a zero ttl keeps it until deleted
func (r *memoryTokenRepo) SaveToken(_ context.Context, sessionID string, userType models.UserType, token string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).tokens[userType] = memoryValue{value: token, expiresAt: r.expiry(ttl)}
	return nil
}

// GetToken returns the stored token unless its ttl ran out
func (r *memoryTokenRepo) GetToken(_ context.Context, sessionID string, userType models.UserType) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok || !r.live(s.tokens[userType]) {
		return "", database.ErrCacheMiss
	}
	return s.tokens[userType].value, nil
}

// DeleteToken removes the stored token
func (r *memoryTokenRepo) DeleteToken(_ context.Context, sessionID string, userType models.UserType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionID]; ok {
		delete(s.tokens, userType)
		r.prune(sessionID)
	}
	return nil
}

// SetCurrent records which user type the session acts as by default
func (r *memoryTokenRepo) SetCurrent(_ context.Context, sessionID string, userType models.UserType, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).current = memoryValue{value: string(userType), expiresAt: r.expiry(ttl)}
	return nil
}

// GetCurrent returns the session's default user type
func (r *memoryTokenRepo) GetCurrent(_ context.Context, sessionID string) (models.UserType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok || !r.live(s.current) {
		return "", database.ErrCacheMiss
	}
	return models.UserType(s.current.value), nil
}

// ClearCurrent forgets the session's default user type
func (r *memoryTokenRepo) ClearCurrent(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[sessionID]; ok {
		s.current = memoryValue{}
		r.prune(sessionID)
	}
	return nil
}
