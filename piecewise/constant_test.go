package piecewise_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
)

// ConstantSuite exercises PiecewiseConstant's Eval/Extend semantics,
// including the S5 scenario from spec.md §8.
type ConstantSuite struct {
	suite.Suite
}

func TestConstantSuite(t *testing.T) {
	suite.Run(t, new(ConstantSuite))
}

// TestEvalRightContinuous mirrors the original implementation's
// it_evals_correctly test.
func (s *ConstantSuite) TestEvalRightContinuous() {
	f, err := piecewise.NewPiecewiseConstant(-numeric.INFINITY, numeric.INFINITY, []piecewise.Point{
		{X: 1.0, Y: 1.0}, {X: 2.0, Y: 2.0},
	})
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1.0, f.Eval(-1.0))
	require.Equal(s.T(), 1.0, f.Eval(1.0))
	require.Equal(s.T(), 1.0, f.Eval(1.5))
	require.Equal(s.T(), 2.0, f.Eval(2.0))
	require.Equal(s.T(), 2.0, f.Eval(3.0))
}

// TestExtendIdempotentAndMerging is scenario S5: the second Extend call
// overwrites the first within tolerance, and a same-value Extend adds no
// new point.
func (s *ConstantSuite) TestExtendIdempotentAndMerging() {
	f, err := piecewise.NewPiecewiseConstant(-numeric.INFINITY, numeric.INFINITY, []piecewise.Point{{X: 0, Y: 0}})
	require.NoError(s.T(), err)

	require.NoError(s.T(), f.Extend(1.0, 2.0))
	require.Equal(s.T(), 0.0, f.Eval(-1.0))
	require.Equal(s.T(), 0.0, f.Eval(0.9))
	require.Equal(s.T(), 2.0, f.Eval(1.0))

	require.NoError(s.T(), f.Extend(1.0+numeric.TOL/2, 3.0))
	require.Equal(s.T(), 3.0, f.Eval(1.0))

	require.NoError(s.T(), f.Extend(3.0, 3.0))
	require.Equal(s.T(), 3.0, f.Eval(1.0))
	require.Equal(s.T(), 3.0, f.Eval(4.0))
	require.Len(s.T(), f.Points(), 2)
}

func (s *ConstantSuite) TestExtendRejectsBackwardTime() {
	f, err := piecewise.NewPiecewiseConstant(-numeric.INFINITY, numeric.INFINITY, []piecewise.Point{{X: 5, Y: 1}})
	require.NoError(s.T(), err)

	err = f.Extend(5-numeric.TOL*10, 2.0)
	require.ErrorIs(s.T(), err, piecewise.ErrBackwardExtend)
}

func (s *ConstantSuite) TestConstructorValidation() {
	_, err := piecewise.NewPiecewiseConstant(0, 1, nil)
	require.ErrorIs(s.T(), err, piecewise.ErrEmptyPoints)

	_, err = piecewise.NewPiecewiseConstant(0, 1, []piecewise.Point{{X: 1, Y: 0}, {X: 0.5, Y: 1}})
	require.ErrorIs(s.T(), err, piecewise.ErrUnorderedPoints)

	_, err = piecewise.NewPiecewiseConstant(0, 1, []piecewise.Point{{X: 2, Y: 0}})
	require.ErrorIs(s.T(), err, piecewise.ErrOutOfDomain)
}

func (s *ConstantSuite) TestSeededConstant() {
	f := piecewise.NewSeededConstant(0, numeric.INFINITY, 0, 0)
	require.Equal(s.T(), 0.0, f.Eval(0))
	require.Equal(s.T(), 0.0, f.Eval(100))
}
