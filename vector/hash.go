package vector

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash folds the element count followed by every (index, value) pair into
// an xxhash digest. Two vectors with the same nonzero contents hash equal
// only if they also enumerate the same element count and (index, value)
// sequence: a Dense vector enumerates its zero positions too, so it hashes
// differently from a Sparse holding the same nonzeros, while a OneHot and a
// one-entry Sparse with the same entry hash equal. Hash is not a
// canonicalizing hash, matching Equal's representation-sensitive semantics
// rather than CanonicalEqual's.
func (s *Sparse) Hash() uint64 {
	return hashElements(s)
}

// Hash folds the element count followed by every (position, value) pair.
func (d *Dense) Hash() uint64 {
	return hashElements(d)
}

// Hash folds the single (index, value) pair.
func (o *OneHot) Hash() uint64 {
	return hashElements(o)
}

func hashElements(v Vector) uint64 {
	h := xxhash.New()
	var buf [8]byte
	n := v.NumElements()
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[:4], v.ElementIndex(i))
		_, _ = h.Write(buf[:4])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.ElementValue(i)))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
