package hashers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homier/handleset"
)

func TestComparable_UsableAsTableHasher(t *testing.T) {
	hash := Comparable[string]()

	tbl, err := handleset.New[string](hash, func(a, b string) bool { return a == b })
	assert.NoError(t, err)

	tbl.Insert("foo")
	_, ok := tbl.Find("foo")
	assert.True(t, ok)

	_, ok = tbl.Find("bar")
	assert.False(t, ok)
}

func TestComparable_DeterministicPerProcess(t *testing.T) {
	hash := Comparable[int]()

	a := hash(42, 1)
	b := hash(42, 1)

	assert.Equal(t, a, b)
}

func TestComparable_SeedPerturbsResult(t *testing.T) {
	hash := Comparable[int]()

	a := hash(42, 1)
	b := hash(42, 2)

	assert.NotEqual(t, a, b)
}
