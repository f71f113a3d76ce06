package chainmap

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// initialCapacity is the number of buckets a fresh table starts with.
	initialCapacity = 4
	// resizeFactor is the multiplier applied when growing and the divisor
	// applied when shrinking. It also sets the load thresholds: the table
	// grows once count*resizeFactor exceeds the bucket count, and shrinks
	// once count*resizeFactor*resizeFactor falls below it.
	resizeFactor = 2
)

// entry is a single key-value pair stored in a bucket chain.
type entry[K Key, V any] struct {
	key   K
	value V
}

// Map is a hash table mapping unique keys to values, resolving collisions
// by separate chaining. Each bucket holds its entries in insertion order.
// The bucket array grows and shrinks automatically so that lookups stay
// amortized O(1).
//
// The zero value is an empty map ready for use. Map is not safe for
// concurrent use; callers that share one across goroutines must provide
// their own synchronization.
type Map[K Key, V any] struct {
	buckets [][]entry[K, V]
	count   int
}

// New returns an empty map with the initial bucket capacity.
func New[K Key, V any]() *Map[K, V] {
	return &Map[K, V]{buckets: make([][]entry[K, V], initialCapacity)}
}

// NewFromMap returns a map populated from src, inserting one entry per
// key. The resulting count and capacity do not depend on src's iteration
// order.
func NewFromMap[K Key, V any](src map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Set inserts the key with the given value, or replaces the value if the
// key is already present. Inserting may reallocate the bucket array.
func (m *Map[K, V]) Set(key K, value V) {
	m.set(key, value, true)
}

// set is the shared insert path. During a rehash it runs with resize
// disabled so that reinserting entries cannot trigger a nested
// reallocation.
func (m *Map[K, V]) set(key K, value V, resize bool) {
	if m.buckets == nil {
		m.buckets = make([][]entry[K, V], initialCapacity)
	}
	idx, pos, ok := m.find(key)
	if ok {
		m.buckets[idx][pos].value = value
		return
	}
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.count++
	if resize {
		m.maybeResize()
	}
}

// Get returns the value stored for key. The second return value reports
// whether the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if idx, pos, ok := m.find(key); ok {
		return m.buckets[idx][pos].value, true
	}
	var zero V
	return zero, false
}

// Delete removes the entry for key and reports whether it was present.
// The remaining entries in the bucket keep their relative order. Removing
// may reallocate the bucket array.
func (m *Map[K, V]) Delete(key K) bool {
	idx, pos, ok := m.find(key)
	if !ok {
		return false
	}
	m.buckets[idx] = slices.Delete(m.buckets[idx], pos, pos+1)
	m.count--
	m.maybeResize()
	return true
}

// index maps a key to its bucket position under the current capacity.
func (m *Map[K, V]) index(key K) int {
	return int(hashKey(key) % uint64(len(m.buckets)))
}

// find locates key, returning its bucket and its position within the
// bucket's chain. Keys are compared with ==; matching the bucket only
// proves the hashes collide. On a miss it returns the bucket the key
// would occupy and ok=false.
func (m *Map[K, V]) find(key K) (idx, pos int, ok bool) {
	if len(m.buckets) == 0 {
		return 0, -1, false
	}
	idx = m.index(key)
	for i := range m.buckets[idx] {
		if m.buckets[idx][i].key == key {
			return idx, i, true
		}
	}
	return idx, -1, false
}

// maybeResize reallocates the bucket array when the load leaves the
// steady band. Growth doubles the capacity as soon as entries outnumber
// half the buckets; shrinking halves it once entries fall below a
// quarter, but never below initialCapacity. Every surviving entry is
// reinserted under the new capacity.
func (m *Map[K, V]) maybeResize() {
	capacity := len(m.buckets)
	loaded := m.count * resizeFactor

	var newCapacity int
	switch {
	case loaded > capacity:
		newCapacity = capacity * resizeFactor
	case loaded*resizeFactor < capacity:
		newCapacity = capacity / resizeFactor
		if newCapacity < initialCapacity {
			newCapacity = initialCapacity
		}
	default:
		return
	}
	if newCapacity == capacity {
		return
	}

	old := m.buckets
	m.buckets = make([][]entry[K, V], newCapacity)
	m.count = 0
	for _, bucket := range old {
		for _, e := range bucket {
			m.set(e.key, e.value, false)
		}
	}
}

// String renders all entries as "Map{k: v, ...}" in iteration order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Map{")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
