package lru

//go:generate mockery --name=EvictionListener --with-expecter --output=mocks --outpkg=mocks --structname=MockEvictionListener

// EvictionListener is notified when Put evicts the least recently used entry.
//
// OnEvict runs after the cache is consistent again, before Put returns.
// It must not call back into the same cache.
type EvictionListener[K comparable, V any] interface {
	OnEvict(key K, value V)
}

// EvictionFunc adapts a plain function to EvictionListener.
type EvictionFunc[K comparable, V any] func(key K, value V)

// OnEvict calls f(key, value).
func (f EvictionFunc[K, V]) OnEvict(key K, value V) {
	f(key, value)
}

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictionListener registers l to be notified of evictions.
func WithEvictionListener[K comparable, V any](l EvictionListener[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.listener = l
	}
}

// WithEvictionFunc registers fn to be called for every eviction.
func WithEvictionFunc[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	if fn == nil {
		return WithEvictionListener[K, V](nil)
	}
	return WithEvictionListener[K, V](EvictionFunc[K, V](fn))
}
