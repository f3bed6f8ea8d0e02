package otp

import (
	"context"
	"sync"
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
)

const sweepInterval = time.Minute

type entry struct {
	expires time.Time
	value   string
	count   int64
}

// MemoryStore keeps codes and rate counters in process. Suitable for a
// single instance only.
type MemoryStore struct {
	mu        *sync.Mutex
	now       func() time.Time
	nextSweep time.Time
	codes     map[string]entry
	rates     map[string]entry
	limit     int64
	window    time.Duration
}

func NewMemoryStore(cfg *Config) *MemoryStore {
	return &MemoryStore{
		mu:     &sync.Mutex{},
		now:    time.Now,
		codes:  map[string]entry{},
		rates:  map[string]entry{},
		limit:  cfg.SendLimit,
		window: cfg.SendWindow,
	}
}

func (m *MemoryStore) Allow(_ context.Context, phone string) (bool, error) {
	if m.limit <= 0 {
		return true, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	rate, ok := m.rates[phone]
	if !ok || now.After(rate.expires) {
		rate = entry{expires: now.Add(m.window)}
	}
	rate.count++
	m.rates[phone] = rate

	return rate.count <= m.limit, nil
}

func (m *MemoryStore) Save(_ context.Context, phone, hash string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	m.codes[phone] = entry{value: hash, expires: now.Add(ttl)}
	return nil
}

func (m *MemoryStore) Take(_ context.Context, phone string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, ok := m.codes[phone]
	delete(m.codes, phone)
	if !ok || m.now().After(code.expires) {
		return "", errstore.ErrNotFoundData
	}
	return code.value, nil
}

// sweep drops expired codes and rate windows. Runs at most once per
// sweepInterval; the caller holds the lock.
func (m *MemoryStore) sweep(now time.Time) {
	if now.Before(m.nextSweep) {
		return
	}
	m.nextSweep = now.Add(sweepInterval)

	for phone, code := range m.codes {
		if now.After(code.expires) {
			delete(m.codes, phone)
		}
	}
	for phone, rate := range m.rates {
		if now.After(rate.expires) {
			delete(m.rates, phone)
		}
	}
}
