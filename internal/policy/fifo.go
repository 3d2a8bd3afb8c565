package policy

import "container/list"

// fifo evicts in insertion order. Accesses never reorder anything, and an
// overwrite keeps the key's original position in the queue.
type fifo[K comparable] struct {
	order *list.List // front = oldest insertion
	elems map[K]*list.Element
}

func newFIFO[K comparable]() *fifo[K] {
	return &fifo[K]{order: list.New(), elems: make(map[K]*list.Element)}
}

func (p *fifo[K]) OnGet(key K) {}

func (p *fifo[K]) OnPut(key K) {
	if _, ok := p.elems[key]; ok {
		return
	}
	p.elems[key] = p.order.PushBack(key)
}

func (p *fifo[K]) Evict() (K, bool) {
	elem := p.order.Front()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	p.order.Remove(elem)
	delete(p.elems, key)
	return key, true
}

func (p *fifo[K]) Remove(key K) {
	if elem, ok := p.elems[key]; ok {
		p.order.Remove(elem)
		delete(p.elems, key)
	}
}

func (p *fifo[K]) Clear() {
	p.order.Init()
	p.elems = make(map[K]*list.Element)
}

func (p *fifo[K]) Len() int { return p.order.Len() }
