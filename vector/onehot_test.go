package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vecspace/vector"
)

type OneHotSuite struct {
	suite.Suite
}

func TestOneHotSuite(t *testing.T) {
	suite.Run(t, new(OneHotSuite))
}

func (s *OneHotSuite) TestElementValueIgnoresPositionLikeElementIndex() {
	oh := vector.NewOneHot(3, 7)
	require.Equal(s.T(), 1, oh.NumElements())
	require.Equal(s.T(), uint32(3), oh.ElementIndex(0))
	require.Equal(s.T(), 7.0, oh.ElementValue(0))
}

func (s *OneHotSuite) TestLength() {
	oh := vector.NewOneHot(0, -4)
	require.Equal(s.T(), 4.0, oh.Length())
}

func (s *OneHotSuite) TestEqual() {
	a := vector.NewOneHot(2, 1)
	b := vector.NewOneHot(2, 1)
	c := vector.NewOneHot(2, 2)
	require.True(s.T(), a.Equal(b))
	require.False(s.T(), a.Equal(c))
}

func (s *OneHotSuite) TestCloneIsIndependent() {
	a := vector.NewOneHot(1, 5)
	c := a.Clone().(*vector.OneHot)
	require.True(s.T(), a.Equal(c))
	require.NotSame(s.T(), a, c)
}
