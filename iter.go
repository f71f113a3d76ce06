package chainmap

import "iter"

// All returns a lazy sequence over all key-value pairs, in bucket order
// and within each bucket in chain order. The sequence is restartable:
// ranging over it again walks the table from the start.
//
// The map must not be mutated while a sequence returned by All, Keys or
// Values is being consumed; the order entries are visited in is not a
// stable contract and changes across resizes.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].key, bucket[i].value) {
					return
				}
			}
		}
	}
}

// Keys returns a lazy sequence over all keys. See All for ordering and
// mutation caveats.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].key) {
					return
				}
			}
		}
	}
}

// Values returns a lazy sequence over all values. See All for ordering
// and mutation caveats.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].value) {
					return
				}
			}
		}
	}
}
