package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func newBreaker(clock *stepClock) *CircuitBreaker {
	cfg := DefaultConfig("router.project-osrm.org")
	cfg.FailureThreshold = 2
	cfg.Timeout = 10 * time.Second
	cfg.Clock = clock
	return New(cfg, nil)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	clock := &stepClock{now: time.Now()}
	cb := newBreaker(clock)
	boom := errors.New("dial tcp: connection refused")

	var calls int
	fail := func(context.Context) error {
		calls++
		return boom
	}

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), boom)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), boom)
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(context.Background(), fail)
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Equal(t, 2, calls)
}

func TestCircuitBreaker_HalfOpenTrial(t *testing.T) {
	clock := &stepClock{now: time.Now()}
	cb := newBreaker(clock)
	boom := errors.New("timeout")

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func(context.Context) error { return boom })
	}
	assert.Equal(t, StateOpen, cb.State())

	clock.now = clock.now.Add(11 * time.Second)
	err := cb.Execute(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_CancelledCallsDoNotTrip(t *testing.T) {
	cb := newBreaker(&stepClock{now: time.Now()})

	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func(context.Context) error { return context.Canceled })
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_Stats(t *testing.T) {
	m := NewManager(nil)
	_ = m.Execute(context.Background(), "nominatim", func(context.Context) error { return nil })
	_ = m.Execute(context.Background(), "osrm", func(context.Context) error { return errors.New("down") })

	stats := m.GetStats()
	assert.Len(t, stats, 2)
	assert.Equal(t, "CLOSED", stats["osrm"].State)
	assert.Equal(t, uint32(1), stats["osrm"].TotalFailures)
	assert.Same(t, m.Get("osrm"), m.Get("osrm"))
}
