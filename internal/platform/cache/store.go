package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/resilience"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Store is an in-process read-through cache. Entries live for ttl (forever when
// ttl <= 0). Concurrent misses on one key share a single load, and a load that
// races with an invalidation is returned to its callers but not stored.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu         sync.Mutex
	entries    map[string]entry
	generation uint64

	flight resilience.SingleFlight
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.storedAt) >= s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// store keeps value unless the cache was invalidated after gen was read.
func (s *Store) store(key string, value any, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.entries[key] = entry{value: value, storedAt: s.now()}
}

func (s *Store) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// DeletePrefix drops every key starting with prefix. Loads still in flight
// are not stored.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.generation++
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Load returns the cached value for key or runs loader to fill it. Errors are
// never cached. A nil store or an empty key bypasses caching.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	if s == nil || key == "" {
		return loader(ctx)
	}
	if v, ok := s.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	// Loads started before an invalidation must not be joined after it.
	gen := s.currentGeneration()
	v, err, _ := s.flight.Do(key+"@"+strconv.FormatUint(gen, 10), func() (any, error) {
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.store(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if typed, ok := v.(T); ok {
		return typed, nil
	}
	return loader(ctx)
}
