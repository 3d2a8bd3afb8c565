package policy

import "container/heap"

// lfuCompactFloor is the heap size below which compaction never runs.
const lfuCompactFloor = 64

// lfu ranks keys by access frequency, breaking ties by earliest insertion.
//
// The heap uses lazy deletion: a frequency bump pushes a fresh slot and
// leaves the old one behind, and Evict skips slots whose recorded frequency
// no longer matches the live counter. Once stale slots outnumber live keys
// two to one the heap is rebuilt from the counters, so its size stays
// bounded under read-heavy workloads that never evict.
type lfu[K comparable] struct {
	keys  map[K]lfuStat
	slots lfuHeap[K]
	seq   uint64
}

type lfuStat struct {
	freq uint64
	seq  uint64 // insertion order, fixed for the key's residency
}

type lfuSlot[K comparable] struct {
	key  K
	freq uint64
	seq  uint64
}

func newLFU[K comparable]() *lfu[K] {
	return &lfu[K]{keys: make(map[K]lfuStat)}
}

func (p *lfu[K]) OnGet(key K) {
	stat, ok := p.keys[key]
	if !ok {
		return
	}
	stat.freq++
	p.keys[key] = stat
	heap.Push(&p.slots, lfuSlot[K]{key: key, freq: stat.freq, seq: stat.seq})
	p.compact()
}

// OnPut starts new keys at frequency one. Overwrites leave the frequency
// alone; only reads raise a key's rank.
func (p *lfu[K]) OnPut(key K) {
	if _, ok := p.keys[key]; ok {
		return
	}
	p.seq++
	stat := lfuStat{freq: 1, seq: p.seq}
	p.keys[key] = stat
	heap.Push(&p.slots, lfuSlot[K]{key: key, freq: stat.freq, seq: stat.seq})
}

func (p *lfu[K]) Evict() (K, bool) {
	for p.slots.Len() > 0 {
		slot := heap.Pop(&p.slots).(lfuSlot[K])
		stat, ok := p.keys[slot.key]
		if !ok || stat.freq != slot.freq {
			continue // stale slot from a frequency bump or removal
		}
		delete(p.keys, slot.key)
		p.compact()
		return slot.key, true
	}
	var zero K
	return zero, false
}

func (p *lfu[K]) Remove(key K) {
	delete(p.keys, key) // remaining slots go stale and are skipped on Evict
}

func (p *lfu[K]) Clear() {
	p.keys = make(map[K]lfuStat)
	p.slots = p.slots[:0]
	p.seq = 0
}

func (p *lfu[K]) Len() int { return len(p.keys) }

// compact rebuilds the heap from the live counters. The rebuild is O(n)
// but only fires after at least as many pushes, so it amortizes away.
func (p *lfu[K]) compact() {
	if len(p.slots) <= lfuCompactFloor || len(p.slots) <= 2*len(p.keys) {
		return
	}
	rebuilt := make(lfuHeap[K], 0, len(p.keys))
	for key, stat := range p.keys {
		rebuilt = append(rebuilt, lfuSlot[K]{key: key, freq: stat.freq, seq: stat.seq})
	}
	heap.Init(&rebuilt)
	p.slots = rebuilt
}

type lfuHeap[K comparable] []lfuSlot[K]

func (h lfuHeap[K]) Len() int { return len(h) }

func (h lfuHeap[K]) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h lfuHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *lfuHeap[K]) Push(x any) { *h = append(*h, x.(lfuSlot[K])) }

func (h *lfuHeap[K]) Pop() any {
	old := *h
	n := len(old)
	slot := old[n-1]
	*h = old[:n-1]
	return slot
}
