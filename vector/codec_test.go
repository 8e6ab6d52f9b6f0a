package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vecspace/vector"
)

type CodecSuite struct {
	suite.Suite
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

func (s *CodecSuite) TestRenderParseRoundTripDense() {
	d := vector.NewDense(3)
	d.SetElement(0, 1)
	d.SetElement(1, 2.5)
	d.SetElement(2, -3)
	d.SetLabel("doc1")

	text := vector.Render(d)
	require.Contains(s.T(), text, "DenseVector")

	parsed, ok := vector.Parse(text)
	require.True(s.T(), ok)
	pd, ok := parsed.(*vector.Dense)
	require.True(s.T(), ok)
	require.Equal(s.T(), "doc1", pd.Label())
	require.Equal(s.T(), []float64{1, 2.5, -3}, collectDense(pd))
}

func (s *CodecSuite) TestRenderParseRoundTripSparse() {
	sp := vector.NewSparse(0)
	sp.NewElement(1, 10)
	sp.NewElement(5, 50)
	sp.SetKey("k1")
	sp.SetLabel("l1")

	text := vector.Render(sp)
	parsed, ok := vector.Parse(text)
	require.True(s.T(), ok)
	psp, ok := parsed.(*vector.Sparse)
	require.True(s.T(), ok)
	require.Equal(s.T(), "k1", psp.Key())
	require.Equal(s.T(), []uint32{1, 5}, collectIndices(psp))
	require.Equal(s.T(), []float64{10, 50}, collectValues(psp))
}

func (s *CodecSuite) TestParseMissingValueDefaultsToZero() {
	parsed, ok := vector.Parse("#<SparseVector:k1:l1:3 7:9>")
	require.True(s.T(), ok)
	psp, ok := parsed.(*vector.Sparse)
	require.True(s.T(), ok)
	require.Equal(s.T(), []uint32{3, 7}, collectIndices(psp))
	require.Equal(s.T(), []float64{0, 9}, collectValues(psp))
}

func (s *CodecSuite) TestParseRejectsMalformedInput() {
	_, ok := vector.Parse("not a vector")
	require.False(s.T(), ok)
}

func (s *CodecSuite) TestLiteralMarshalJSON() {
	sp := vector.NewSparse(0)
	sp.NewElement(0, 1)
	lit := vector.Literal{Vector: sp}
	data, err := lit.MarshalJSON()
	require.NoError(s.T(), err)

	var roundTripped vector.Literal
	require.NoError(s.T(), roundTripped.UnmarshalJSON(data))
	require.True(s.T(), vector.CanonicalEqual(sp, roundTripped.Vector))
}
