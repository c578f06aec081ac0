// Package hashers provides ready-made handleset.Hasher implementations.
// None of them are required by handleset.Table -- the table accepts any
// Hasher, callback-style, so these exist purely for convenience.
package hashers

import "github.com/homier/handleset"

const (
	murmur64M = 0xc6a4a7935bd1e995
	murmur64R = 47
)

// Murmur64A returns a Hasher for byte-slice elements implementing
// MurmurHash64A, the 64-bit variant of Austin Appleby's MurmurHash2. This
// is the reference byte hasher: a pluggable convenience, not privileged by
// the table core in any way. keySeed is folded together with the table's
// own per-instance seed on every call, so a rehash (which installs a fresh
// table seed) still perturbs the digest.
func Murmur64A(keySeed uint64) handleset.Hasher[[]byte] {
	return func(key []byte, tableSeed uint64) uint64 {
		return murmurHash64A(key, keySeed^tableSeed)
	}
}

func murmurHash64A(data []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(data)) * murmur64M)

	for len(data) >= 8 {
		k := leUint64(data)
		k *= murmur64M
		k ^= k >> murmur64R
		k *= murmur64M

		h ^= k
		h *= murmur64M

		data = data[8:]
	}

	switch len(data) {
	case 7:
		h ^= uint64(data[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(data[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(data[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(data[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(data[0])
		h *= murmur64M
	}

	h ^= h >> murmur64R
	h *= murmur64M
	h ^= h >> murmur64R

	return h
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
