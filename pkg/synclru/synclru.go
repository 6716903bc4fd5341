// Package synclru makes an lru.Cache safe for concurrent use.
package synclru

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/lrucache/pkg/lru"
)

// Cache is a thread-safe LRU cache with a fixed capacity.
//
// Get and Put take the write lock because both update recency.
// Snapshots only take the read lock.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	inner *lru.Cache[K, V]

	loads   singleflight.Group
	keyFunc func(K) string
}

type config[K comparable, V any] struct {
	keyFunc func(K) string
	lruOpts []lru.Option[K, V]
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithKeyFunc sets how keys are turned into GetOrLoad deduplication keys.
// The default formats the key together with its dynamic type.
func WithKeyFunc[K comparable, V any](fn func(K) string) Option[K, V] {
	return func(cfg *config[K, V]) {
		if fn != nil {
			cfg.keyFunc = fn
		}
	}
}

// WithEvictionListener registers l with the underlying cache.
// OnEvict runs while the write lock is held and must not use the Cache.
func WithEvictionListener[K comparable, V any](l lru.EvictionListener[K, V]) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.lruOpts = append(cfg.lruOpts, lru.WithEvictionListener(l))
	}
}

// New creates a thread-safe cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	cfg := config[K, V]{keyFunc: defaultKey[K]}
	for _, opt := range opts {
		opt(&cfg)
	}

	inner, err := lru.New(capacity, cfg.lruOpts...)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		inner:   inner,
		keyFunc: cfg.keyFunc,
	}, nil
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

// Put stores value under key, evicting the least recently used entry when full.
func (c *Cache[K, V]) Put(key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Put(key, value)
}

// Len returns the number of items currently in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Len()
}

// Cap returns the cache capacity.
func (c *Cache[K, V]) Cap() int {
	return c.inner.Cap()
}

// Keys returns a copy of the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Keys()
}

// Items returns a copy of the cached key/value pairs.
func (c *Cache[K, V]) Items() map[K]V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Items()
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// storing its result. Concurrent misses for the same key share one load.
// Errors returned by load are not cached.
//
// The shared load runs with the values of the first caller's ctx but without
// its cancellation. Each caller stops waiting when its own ctx is done; the
// load keeps running and still fills the cache for the others.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K, load func(context.Context, K) (V, error)) (V, error) {
	value, err := c.Get(key)
	if err == nil || !errors.Is(err, lru.ErrNotFound) {
		return value, err
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.loads.DoChan(c.keyFunc(key), func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if v, err := c.Get(key); err == nil {
			return v, nil
		}
		v, err := load(loadCtx, key)
		if err != nil {
			return v, fmt.Errorf("load %v: %w", key, err)
		}
		if err := c.Put(key, v); err != nil {
			return v, err
		}
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("load %v: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

func defaultKey[K comparable](key K) string {
	return fmt.Sprintf("%T:%v", key, key)
}
