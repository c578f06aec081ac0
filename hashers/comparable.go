package hashers

import (
	"github.com/dolthub/maphash"

	"github.com/homier/handleset"
)

// Comparable returns a Hasher for any comparable key type K, backed by
// dolthub/maphash's generic Hasher so callers don't need to hand-write a
// well-distributed hash for ordinary key types. The table's own
// per-instance seed is folded into dolthub/maphash's digest on every call,
// so rehashing (which installs a fresh table seed) still perturbs the
// result exactly as a hand-written Hasher would.
func Comparable[K comparable]() handleset.Hasher[K] {
	h := maphash.NewHasher[K]()

	return func(key K, tableSeed uint64) uint64 {
		return h.Hash(key) ^ tableSeed
	}
}
