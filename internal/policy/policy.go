package policy

import "fmt"

// Kind selects one of the supported eviction strategies.
type Kind string

const (
	LRU  Kind = "lru"
	LFU  Kind = "lfu"
	FIFO Kind = "fifo"
	LIFO Kind = "lifo"
)

// Policy tracks insertion/access order or frequency for the keys currently
// resident in a cache and names a victim on demand. Implementations hold
// bookkeeping only; the cache owns the entry map and invokes every method
// under its own lock, so policies carry no locking of their own.
type Policy[K comparable] interface {
	// OnGet records an access to key. Called only for keys present in the cache.
	OnGet(key K)
	// OnPut records an insert or overwrite of key.
	OnPut(key K)
	// Evict removes and returns the victim key, or false if nothing is tracked.
	Evict() (K, bool)
	// Remove drops bookkeeping for an explicitly removed key.
	Remove(key K)
	// Clear resets all bookkeeping.
	Clear()
	// Len reports the number of tracked keys.
	Len() int
}

// New builds the policy for kind. The set of kinds is closed; an
// unrecognized kind is a construction error.
func New[K comparable](kind Kind) (Policy[K], error) {
	switch kind {
	case LRU:
		return newLRU[K](), nil
	case LFU:
		return newLFU[K](), nil
	case FIFO:
		return newFIFO[K](), nil
	case LIFO:
		return newLIFO[K](), nil
	default:
		return nil, fmt.Errorf("unknown eviction policy %q", kind)
	}
}
