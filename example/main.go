package main

import (
	"fmt"

	"github.com/theflywheel/chainmap"
)

func main() {
	m := chainmap.New[string, int]()

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Set(fmt.Sprintf("key_%d", i), i*100)
	}

	fmt.Printf("Inserted 10 key-value pairs, len=%d\n", m.Len())

	// Retrieve and display some values, including misses
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key_%d", i)
		if v, ok := m.Get(key); ok {
			fmt.Printf("%s => %d\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	m.Set("key_2", 999)
	if v, ok := m.Get("key_2"); ok {
		fmt.Printf("key_2 after update => %d\n", v)
	}

	// Delete a key
	if m.Delete("key_3") {
		fmt.Printf("Deleted key_3, len=%d\n", m.Len())
	}

	// Iterate over everything that is left
	for k, v := range m.All() {
		fmt.Printf("  %s: %d\n", k, v)
	}

	// Human-readable rendering of the whole table
	fmt.Println(m)
}
