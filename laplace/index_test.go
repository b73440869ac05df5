package laplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexIsPermutation(t *testing.T) {
	const maxDegree = 6
	seen := map[int]Alpha{}
	for _, a := range Alphas(maxDegree) {
		idx := IndexOf(a)
		if other, ok := seen[idx]; ok {
			t.Fatalf("Index collision: %v and %v both map to %d", a, other, idx)
		}
		seen[idx] = a
	}
	assert.Equal(t, LTerm(maxDegree), len(seen), "every slot in 0..LTerm(maxDegree)-1 should be used exactly once")
	for i := 0; i < LTerm(maxDegree); i++ {
		_, ok := seen[i]
		assert.True(t, ok, "slot %d was never produced by any multi-index", i)
	}
}

func TestDegreeSlotCounts(t *testing.T) {
	for p := 1; p <= 8; p++ {
		assert.Equal(t, p*(p+1)*(p+2)/6, MTerm(p), "MTerm(%d)", p)
		assert.Equal(t, (p+1)*(p+2)*(p+3)/6, LTerm(p), "LTerm(%d)", p)
	}
}

func TestIndexKnownValues(t *testing.T) {
	assert.Equal(t, 0, Index(0, 0, 0))
	assert.Equal(t, 3, Index(0, 0, 1))
	assert.Equal(t, 2, Index(0, 1, 0))
	assert.Equal(t, 1, Index(1, 0, 0))
	assert.Equal(t, 9, Index(0, 0, 2))
	assert.Equal(t, 4, Index(2, 0, 0))
}

func TestWeightIsFactorialProduct(t *testing.T) {
	assert.Equal(t, 1, Weight(0, 0, 0))
	assert.Equal(t, 1, Weight(1, 0, 0))
	assert.Equal(t, 2, Weight(2, 0, 0))
	assert.Equal(t, 1, Weight(1, 1, 0))
	assert.Equal(t, 1, Weight(1, 1, 1)*Weight(0, 0, 0))
	assert.Equal(t, 24, Weight(4, 0, 0))
}
