package policy

import "container/list"

// lifo evicts the most recently inserted key still resident. Like fifo it
// ignores accesses and keeps a key's original slot on overwrite.
type lifo[K comparable] struct {
	order *list.List // back = newest insertion
	elems map[K]*list.Element
}

func newLIFO[K comparable]() *lifo[K] {
	return &lifo[K]{order: list.New(), elems: make(map[K]*list.Element)}
}

func (p *lifo[K]) OnGet(key K) {}

func (p *lifo[K]) OnPut(key K) {
	if _, ok := p.elems[key]; ok {
		return
	}
	p.elems[key] = p.order.PushBack(key)
}

func (p *lifo[K]) Evict() (K, bool) {
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

func (p *lifo[K]) Remove(key K) {
	if elem, ok := p.elems[key]; ok {
		p.order.Remove(elem)
		delete(p.elems, key)
	}
}

func (p *lifo[K]) Clear() {
	p.order.Init()
	p.elems = make(map[K]*list.Element)
}

func (p *lifo[K]) Len() int { return p.order.Len() }
