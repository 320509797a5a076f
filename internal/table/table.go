// Package table provides the key/value storage shared by every eviction policy.
package table

// Table maps keys to values. It holds no ordering or eviction state.
type Table[K comparable, V any] struct {
	items map[K]V
}

// New creates an empty table. sizeHint preallocates room for that many entries.
func New[K comparable, V any](sizeHint int) *Table[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Table[K, V]{items: make(map[K]V, sizeHint)}
}

// Insert stores value under key, overwriting any previous value.
func (t *Table[K, V]) Insert(key K, value V) {
	t.items[key] = value
}

// Remove deletes key. Missing keys are ignored.
func (t *Table[K, V]) Remove(key K) {
	delete(t.items, key)
}

// Contains reports whether key is resident.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.items[key]
	return ok
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.items[key]
	return v, ok
}

// Len returns the number of resident keys.
func (t *Table[K, V]) Len() int {
	return len(t.items)
}

// Keys returns a snapshot of the resident keys in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	return keys
}
