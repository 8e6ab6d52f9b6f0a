package wordspace

import (
	"math/rand"

	"github.com/katalvlaran/vecspace/vector"
)

// BasisVector returns a freshly built Random Indexing basis vector over
// dims dimensions: plus entries set to +1 and minus entries set to -1, at
// distinct indices chosen uniformly at random, everything else implicitly
// zero. This is the seed vector assigned to each newly observed term —
// stable for the term's lifetime, folded into the context vectors of
// whatever it co-occurs with.
func BasisVector(dims, plus, minus int, rng *rand.Rand) (*vector.Sparse, error) {
	if plus+minus > dims {
		return nil, ErrInvalidBasis
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	chosen := make(map[int]struct{}, plus+minus)
	pick := func() int {
		for {
			i := rng.Intn(dims)
			if _, taken := chosen[i]; !taken {
				chosen[i] = struct{}{}
				return i
			}
		}
	}

	v := vector.NewSparse(plus + minus)
	indices := make([]int, 0, plus+minus)
	for i := 0; i < plus; i++ {
		indices = append(indices, pick())
	}
	for i := 0; i < minus; i++ {
		indices = append(indices, pick())
	}
	for i, idx := range indices {
		value := 1.0
		if i >= plus {
			value = -1.0
		}
		v.NewElement(uint32(idx), value)
	}
	return v, nil
}
