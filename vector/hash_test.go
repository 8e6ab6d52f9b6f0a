package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vecspace/vector"
)

type HashSuite struct {
	suite.Suite
}

func TestHashSuite(t *testing.T) {
	suite.Run(t, new(HashSuite))
}

func (s *HashSuite) TestSparseHashStableAndSensitiveToContent() {
	a := vector.NewSparse(0)
	a.NewElement(1, 10)
	b := vector.NewSparse(0)
	b.NewElement(1, 10)
	c := vector.NewSparse(0)
	c.NewElement(1, 11)

	require.Equal(s.T(), a.Hash(), b.Hash())
	require.NotEqual(s.T(), a.Hash(), c.Hash())
}

func (s *HashSuite) TestDenseHashDiffersFromSparseForSameLogicalContent() {
	d := vector.NewDense(2)
	d.SetElement(1, 10)
	sp := vector.NewSparse(0)
	sp.NewElement(1, 10)

	// Dense enumerates index 0 with value 0 as a stored element; Sparse
	// does not, so their digests differ even though CanonicalEqual holds.
	require.NotEqual(s.T(), d.Hash(), sp.Hash())
	require.True(s.T(), vector.CanonicalEqual(d, sp))
}

func (s *HashSuite) TestOneHotHash() {
	a := vector.NewOneHot(2, 5)
	b := vector.NewOneHot(2, 5)
	c := vector.NewOneHot(2, 9)
	require.Equal(s.T(), a.Hash(), b.Hash())
	require.NotEqual(s.T(), a.Hash(), c.Hash())
}
