package port

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache is a fixed-capacity key/value cache with recency ordering.
// Implementations are lru.Cache (single goroutine) and synclru.Cache.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and marks it as most recently used.
	// It fails with lru.ErrNotFound when the key is absent.
	Get(key K) (V, error)

	// Put stores value under key. Inserting into a full cache evicts the
	// least recently used entry.
	Put(key K, value V) error

	// Len returns the number of items currently in the cache.
	Len() int

	// Keys returns a copy of the keys from most to least recently used.
	Keys() []K

	// Items returns a copy of the cached key/value pairs.
	Items() map[K]V
}
