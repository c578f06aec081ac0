package handleset

import "math/bits"

// nextPow2 returns the smallest power of two >= v, or 1 if v <= 1.
func nextPow2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return uint64(1) << bits.Len64(v-1)
}
