package memory

import "sync"

// table keeps rows keyed by id in insertion order.
type table[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	orders []string
	idOf   func(T) string
}

func newTable[T any](idOf func(T) string, seed []T) *table[T] {
	t := &table[T]{
		items:  make(map[string]T, len(seed)),
		orders: make([]string, 0, len(seed)),
		idOf:   idOf,
	}
	for _, item := range seed {
		t.put(item)
	}
	return t
}

func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.orders))
	for _, id := range t.orders {
		item := t.items[id]
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	item, ok := t.items[id]
	return item, ok
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.orders {
		if item := t.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) put(item T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(item)
	if _, exists := t.items[id]; !exists {
		t.orders = append(t.orders, id)
	}
	t.items[id] = item
}

// replace updates an existing row and reports whether it was found.
func (t *table[T]) replace(item T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(item)
	if _, exists := t.items[id]; !exists {
		return false
	}
	t.items[id] = item
	return true
}

func (t *table[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.items[id]; !exists {
		return
	}
	delete(t.items, id)
	for i, existing := range t.orders {
		if existing == id {
			t.orders = append(t.orders[:i], t.orders[i+1:]...)
			break
		}
	}
}

func idSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
