package cache

import "time"

// entry is the stored record for a single key. All fields are guarded by
// the owning Cache's lock.
type entry[V any] struct {
	value        V
	createdAt    time.Time
	lastAccessed time.Time
	accessCount  uint64
	expiresAt    time.Time // zero means the entry never expires
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
