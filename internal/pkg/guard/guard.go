// Package guard suppresses duplicate submissions of mutating booking actions
package guard

import (
	"fmt"
	"sync"

	"github.com/urbancabz/console/internal/pkg/apperror"
)

// InFlight tracks keys with a mutation currently running
type InFlight struct {
	mu     sync.Mutex
	active map[string]string
}

// NewInFlight creates an empty guard
func NewInFlight() *InFlight {
	return &InFlight{active: make(map[string]string)}
}

// Acquire marks key busy with the named action and returns its release func.
// A second Acquire before release fails with ErrActionInFlight.
func (g *InFlight) Acquire(key, action string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if running, ok := g.active[key]; ok {
		return nil, fmt.Errorf("%w: %s already running for %s", apperror.ErrActionInFlight, running, key)
	}
	g.active[key] = action

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, nil
}

// Key builds the guard key for a booking
func Key(kind, bookingID string) string {
	return kind + ":" + bookingID
}
