package cache

// Store is the capability set shared by bounded cache implementations:
// write, read, delete, and reset, plus size queries.
//
// Alternative eviction policies (most-recently-used, time-based) can
// satisfy Store without changing callers.
type Store[K comparable, V any] interface {
	// Put writes/overwrites a key.
	Put(key K, value V)

	// Get reads a key; the boolean reports whether it was found.
	Get(key K) (V, bool)

	// Remove deletes a key if present, returning the removed value.
	Remove(key K) (V, bool)

	// Clear removes all entries.
	Clear()

	// Len returns the number of stored entries.
	Len() int

	// IsEmpty reports whether no entries are stored.
	IsEmpty() bool
}

var _ Store[string, int] = (*Cache[string, int])(nil)
