package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vecspace/vector"
)

type OptionsSuite struct {
	suite.Suite
}

func TestOptionsSuite(t *testing.T) {
	suite.Run(t, new(OptionsSuite))
}

func (s *OptionsSuite) TestNewDenseVectorAppliesOptions() {
	d := vector.NewDenseVector(
		vector.WithCapacity(4),
		vector.WithKey("k1"),
		vector.WithLabel("l1"),
		vector.WithWeight(2.5),
	)
	require.Equal(s.T(), 4, d.Capacity())
	require.Equal(s.T(), "k1", d.Key())
	require.Equal(s.T(), "l1", d.Label())
	require.Equal(s.T(), 2.5, d.Weight())
}

func (s *OptionsSuite) TestNewSparseVectorDefaultsWeightToOne() {
	sp := vector.NewSparseVector(vector.WithKey("doc1"))
	require.Equal(s.T(), "doc1", sp.Key())
	require.Equal(s.T(), 1.0, sp.Weight())
}

func (s *OptionsSuite) TestWithCapacityPanicsOnNegative() {
	require.Panics(s.T(), func() {
		vector.WithCapacity(-1)
	})
}
