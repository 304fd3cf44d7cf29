// Package cache keeps recently loaded values in process memory for a fixed
// TTL. Concurrent misses for one key share a single load.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/riskibarqy/galero/internal/platform/resilience"
)

var errNoLoader = errors.New("cache: nil loader")

type entry[V any] struct {
	value   V
	expires time.Time // zero means no expiry
}

func (e entry[V]) live(now time.Time) bool {
	return e.expires.IsZero() || now.Before(e.expires)
}

type Store[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry[V]
	loads   resilience.SingleFlight[V]
}

// NewStore builds a store whose entries live for ttl; ttl <= 0 keeps them
// until deleted.
func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{ttl: ttl, now: time.Now, entries: map[string]entry[V]{}}
}

// Get reports a live entry and evicts an expired one.
func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if ok && e.live(s.now()) {
		return e.value, true
	}
	if ok {
		delete(s.entries, key)
	}
	var zero V
	return zero, false
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	e := entry[V]{value: value}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	s.loads.Forget(key)
}

// GetOrLoad returns the live entry for key or stores the result of load.
// Errors are returned to every waiting caller and never cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if load == nil {
		var zero V
		return zero, errNoLoader
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.loads.Do(key, func() (V, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err == nil {
			s.Set(ctx, key, v)
		}
		return v, err
	})
	return v, err
}
