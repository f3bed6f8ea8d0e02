package media

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrServiceUnavailable = errors.New("media service unavailable")

type circuitBreakerState int

const (
	cbOpen circuitBreakerState = iota
	cbClose
	cbHalfOpen
)

// circuitBreaker stops calls to the media host after a failure until the
// cooldown, or the host's Retry-After, has passed. One probe call is let
// through in the half-open state.
type circuitBreaker struct {
	mu       *sync.Mutex
	now      func() time.Time
	expireAt time.Time
	cooldown time.Duration
	state    circuitBreakerState
}

func newCircuitBreaker(cooldown time.Duration) *circuitBreaker {
	return &circuitBreaker{
		mu:       &sync.Mutex{},
		now:      time.Now,
		cooldown: cooldown,
		state:    cbClose,
	}
}

// execute runs request unless the breaker is open. request returns the
// delay the host asked for, zero when it did not ask for one.
func (cb *circuitBreaker) execute(request func() (time.Duration, error)) error {
	cb.mu.Lock()
	switch cb.state {
	case cbOpen:
		if cb.now().Before(cb.expireAt) {
			cb.mu.Unlock()
			return ErrServiceUnavailable
		}
		cb.state = cbHalfOpen
	case cbHalfOpen:
		cb.mu.Unlock()
		return ErrServiceUnavailable
	default:
	}
	cb.mu.Unlock()

	delay, err := request()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil && delay <= 0 {
		cb.state = cbClose
		return nil
	}

	if delay <= 0 {
		delay = cb.cooldown
	}
	cb.state = cbOpen
	cb.expireAt = cb.now().Add(delay)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	return nil
}
