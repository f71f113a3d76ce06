package chainmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Key is the set of types usable as map keys: the built-in string and
// integer types. All of them support == comparison and have a stable
// byte representation to hash.
type Key interface {
	string | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// hashKey computes a 64-bit xxHash of the key's value. The hash is
// deterministic across runs and processes: a given key always produces
// the same hash, so bucket placement depends only on the key and the
// current capacity.
func hashKey[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	default:
		// Unreachable: the Key constraint admits no other types.
		panic("chainmap: unsupported key type")
	}
}

// hashUint64 hashes an integer key through its big-endian encoding.
func hashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}
