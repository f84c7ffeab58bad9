// Package tally provides an insertion-ordered accumulator keyed by name.
package tally

// Counter accumulates values per key and remembers first-seen order.
type Counter[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

func New[K comparable, V any]() *Counter[K, V] {
	return &Counter[K, V]{index: make(map[K]int)}
}

// Seed registers keys with zero values so they are reported even if
// nothing is added to them.
func (c *Counter[K, V]) Seed(keys ...K) {
	for _, k := range keys {
		c.slot(k)
	}
}

// Update applies fn to the value stored under k.
func (c *Counter[K, V]) Update(k K, fn func(*V)) {
	fn(&c.values[c.slot(k)])
}

func (c *Counter[K, V]) Get(k K) (V, bool) {
	i, ok := c.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return c.values[i], true
}

func (c *Counter[K, V]) Len() int { return len(c.keys) }

// Each visits entries in insertion order.
func (c *Counter[K, V]) Each(fn func(K, V)) {
	for i, k := range c.keys {
		fn(k, c.values[i])
	}
}

func (c *Counter[K, V]) slot(k K) int {
	if i, ok := c.index[k]; ok {
		return i
	}
	var zero V
	c.index[k] = len(c.keys)
	c.keys = append(c.keys, k)
	c.values = append(c.values, zero)
	return len(c.keys) - 1
}

// Count is a Counter of plain occurrence counts.
type Count[K comparable] struct {
	*Counter[K, int]
}

func NewCount[K comparable]() Count[K] {
	return Count[K]{New[K, int]()}
}

func (c Count[K]) Inc(k K) {
	c.Update(k, func(v *int) { *v++ })
}
