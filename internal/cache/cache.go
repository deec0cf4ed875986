// Package cache provides a time-boxed in-memory key/value store used to
// front the mock oceanographic data source and the geocoding client.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTTL is how long an entry answers Get calls before it is treated
// as a miss.
const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Store is a mutex-guarded map with per-entry expiry. Expired entries are
// not evicted proactively; they answer as misses and are overwritten by a
// later Set on the same key. Growth is unbounded, which is acceptable for
// the small deterministic key space the service uses.
type Store[V any] struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu      sync.Mutex
	entries map[string]entry[V]
}

// New creates a Store with the given TTL. A zero ttl falls back to
// DefaultTTL; a nil clock falls back to the real clock.
func New[V any](ttl time.Duration, clock clockwork.Clock) *Store[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the stored value if it was inserted less than one TTL ago.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.clock.Since(e.insertedAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value, replacing any previous entry for the key. A reader
// racing with Set observes either the old live value or the new one, never
// a partial write.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, insertedAt: s.clock.Now()}
}

// Clear drops every entry.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry[V])
}

// Len reports the number of entries currently held, live or expired.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
