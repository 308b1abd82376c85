// Package memo provides explicit memo tables and the cached recursive
// searches built on them.
//
// A Table is always passed into the recursion that fills it; nothing is
// cached in package-level state. Two independent top-level queries either
// use two tables or Clear one in between, so results computed under one
// budget or mask can never leak into another query.
//
// The key of a table must carry every parameter that affects the result:
// a node reached with a different remaining budget or a different set of
// visited required nodes is a different subproblem.
package memo

// Table is a hash-map backed memo cache.
type Table[K comparable, V any] struct {
	m map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]V)}
}

// Get returns the cached value for k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	v, ok := t.m[k]
	return v, ok
}

// Put stores v under k and returns v.
func (t *Table[K, V]) Put(k K, v V) V {
	t.m[k] = v
	return v
}

// Do returns the cached value for k, computing and storing it with fn on a miss.
// fn may recurse into Do with other keys.
func (t *Table[K, V]) Do(k K, fn func() V) V {
	if v, ok := t.m[k]; ok {
		return v
	}
	return t.Put(k, fn())
}

// Len returns the number of cached entries.
func (t *Table[K, V]) Len() int { return len(t.m) }

// Clear drops every entry.
func (t *Table[K, V]) Clear() { clear(t.m) }
