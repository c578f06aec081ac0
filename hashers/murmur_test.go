package hashers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmur64A_Deterministic(t *testing.T) {
	h := Murmur64A(7)

	a := h([]byte("hello world"), 11)
	b := h([]byte("hello world"), 11)

	assert.Equal(t, a, b)
}

func TestMurmur64A_DifferentSeedsDiffer(t *testing.T) {
	key := []byte("the quick brown fox")

	a := Murmur64A(1)(key, 0)
	b := Murmur64A(2)(key, 0)

	assert.NotEqual(t, a, b)
}

func TestMurmur64A_TailLengths(t *testing.T) {
	h := Murmur64A(0)

	seen := map[uint64]bool{}
	for n := 0; n <= 16; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(i + 1)
		}

		v := h(buf, 0)
		assert.Falsef(t, seen[v], "collision at length %d", n)
		seen[v] = true
	}
}

func TestMurmur64A_EmptyInput(t *testing.T) {
	h := Murmur64A(0)
	assert.NotPanics(t, func() { h(nil, 0) })
}
