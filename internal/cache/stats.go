package cache

// Stats is a snapshot of the cache's usage counters. Counters only grow;
// Clear and reconstruction are the only resets. The counters are purely
// observational and never feed back into eviction or expiration.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// HitRate reports the fraction of gets that found a live entry, or 0 when
// nothing has been read yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
