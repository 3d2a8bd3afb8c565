package policy

import "container/list"

// lru keeps keys ordered by recency. Reads and writes both promote a key
// to the front; eviction takes the back.
type lru[K comparable] struct {
	order *list.List
	elems map[K]*list.Element
}

func newLRU[K comparable]() *lru[K] {
	return &lru[K]{order: list.New(), elems: make(map[K]*list.Element)}
}

func (p *lru[K]) OnGet(key K) { p.touch(key) }

func (p *lru[K]) OnPut(key K) { p.touch(key) }

func (p *lru[K]) touch(key K) {
	if elem, ok := p.elems[key]; ok {
		p.order.MoveToFront(elem)
		return
	}
	p.elems[key] = p.order.PushFront(key)
}

func (p *lru[K]) Evict() (K, bool) {
	elem := p.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	p.order.Remove(elem)
	delete(p.elems, key)
	return key, true
}

func (p *lru[K]) Remove(key K) {
	if elem, ok := p.elems[key]; ok {
		p.order.Remove(elem)
		delete(p.elems, key)
	}
}

func (p *lru[K]) Clear() {
	p.order.Init()
	p.elems = make(map[K]*list.Element)
}

func (p *lru[K]) Len() int { return p.order.Len() }
