/*
Package chainmap provides a generic hash table with separate chaining and
automatic resizing.

Map associates unique keys with values and keeps its average lookup cost
bounded by growing and shrinking the bucket array as entries come and go.
Keys are built-in string or integer types; values are unconstrained.

Basic usage:

	import "github.com/theflywheel/chainmap"

	m := chainmap.New[string, int]()

	// Insert data
	m.Set("answer", 42)

	// Retrieve data
	v, ok := m.Get("answer")
	if ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	m.Delete("answer")

	// Iterate
	for k, v := range m.All() {
		fmt.Println(k, v)
	}

Features:

  - Generic over key and value types, checked at compile time
  - Separate chaining for collision resolution, with chains kept in
    insertion order
  - Automatic doubling once entries outnumber half the buckets, and
    halving once they fall below a quarter (never below the initial
    capacity of 4)
  - Deterministic xxHash-based bucket placement, identical across runs
  - Lazy, restartable iteration over keys, values and pairs

Implementation Details:

The table is a slice of buckets, each bucket an insertion-ordered slice
of key-value entries. An operation hashes its key, reduces the hash
modulo the bucket count, and scans the addressed bucket comparing keys
with ==. After every insert or delete the load is checked; when it
leaves the steady band a fresh bucket array is allocated and every entry
is rehashed into it.

Map is deliberately single-threaded: no internal locking is performed,
and mutating the table while iterating over it is not allowed. Wrap the
map in a mutex if it must be shared across goroutines.
*/
package chainmap
