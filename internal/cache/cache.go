// Package cache provides TTL memoization for the two file loaders, so a
// dashboard redraw inside the freshness window never re-reads a file.
package cache

import (
	"sync"
	"time"
)

// Loader memoizes the result of a load function for a fixed TTL. Errors are
// never cached: a failed load leaves the loader empty and the next Get
// retries.
type Loader[T any] struct {
	load func() (T, error)
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	value    T
	loadedAt time.Time
	valid    bool
}

// NewLoader wraps load with a TTL cache.
func NewLoader[T any](ttl time.Duration, load func() (T, error)) *Loader[T] {
	return &Loader[T]{load: load, ttl: ttl, now: time.Now}
}

// Get returns the cached value while it is younger than the TTL and reloads
// otherwise.
func (l *Loader[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.valid && l.now().Sub(l.loadedAt) < l.ttl {
		return l.value, nil
	}

	v, err := l.load()
	if err != nil {
		var zero T
		return zero, err
	}
	l.value = v
	l.loadedAt = l.now()
	l.valid = true
	return v, nil
}

// Invalidate drops the cached value so the next Get reloads regardless of
// age.
func (l *Loader[T]) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.valid = false
}
