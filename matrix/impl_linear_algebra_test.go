// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for inversion and determinant.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/simplealgebra/matrix"
	"github.com/katalvlaran/simplealgebra/numeric"
	"github.com/katalvlaran/simplealgebra/ring"
)

// InversionSuite runs every inverse variant over the same fixtures.
type InversionSuite struct {
	suite.Suite
	tri      *matrix.Square[Q] // tridiagonal, invertible
	swapped  *matrix.Square[Q] // zero diagonal, needs pivoting
	zeroRow  *matrix.Square[Q]
	diagonal *matrix.Square[F]
}

func (s *InversionSuite) SetupTest() {
	t := s.T()
	s.tri = ratSquare(t, [][]string{
		{"2", "1", "0"},
		{"1", "3", "1"},
		{"0", "1", "4"},
	})
	s.swapped = ratSquare(t, [][]string{
		{"0", "2"},
		{"3", "0"},
	})
	s.zeroRow = ratSquare(t, [][]string{
		{"1", "2"},
		{"0", "0"},
	})
	s.diagonal = floatSquare(t, [][]float64{{2, 0}, {0, 3}})
}

func (s *InversionSuite) TestLeftInverseTimesMatrixIsIdentity() {
	inv, err := s.tri.InvertLeft()
	s.Require().NoError(err)
	s.Require().True(inv.Mult(s.tri).IsExactIdentity(), "%v", inv.Mult(s.tri))
	s.Require().NoError(inv.Validate())
}

func (s *InversionSuite) TestMatrixTimesRightInverseIsIdentity() {
	inv, err := s.tri.InvertRight()
	s.Require().NoError(err)
	s.Require().True(s.tri.Mult(inv).IsExactIdentity(), "%v", s.tri.Mult(inv))
}

func (s *InversionSuite) TestRevCoeffVariantsAgreeForCommutativeEntries() {
	l, err := s.tri.InvertLeft()
	s.Require().NoError(err)
	lr, err := s.tri.InvertLeftRevCoeff()
	s.Require().NoError(err)
	rr, err := s.tri.InvertRightRevCoeff()
	s.Require().NoError(err)

	requireSameRat(s.T(), l, lr)
	requireSameRat(s.T(), l, rr)
}

func (s *InversionSuite) TestPivotExchange() {
	want := [][]string{{"0", "1/3"}, {"1/2", "0"}}

	l, err := s.swapped.InvertLeft()
	s.Require().NoError(err)
	requireRatGrid(s.T(), want, l)

	r, err := s.swapped.InvertRight()
	s.Require().NoError(err)
	requireRatGrid(s.T(), want, r)

	// the input is untouched by the working copy
	requireRatGrid(s.T(), [][]string{{"0", "2"}, {"3", "0"}}, s.swapped)
}

func (s *InversionSuite) TestStoredZeroPivotIsSkipped() {
	s.Require().NoError(s.swapped.SetVal(0, 0, numeric.Rat{}))

	l, err := s.swapped.InvertLeft()
	s.Require().NoError(err)
	requireRatGrid(s.T(), [][]string{{"0", "1/3"}, {"1/2", "0"}}, l)
}

func (s *InversionSuite) TestZeroRowIsNotInvertible() {
	for name, inv := range map[string]func() (*matrix.Square[Q], error){
		"left":          s.zeroRow.InvertLeft,
		"right":         s.zeroRow.InvertRight,
		"left reverse":  s.zeroRow.InvertLeftRevCoeff,
		"right reverse": s.zeroRow.InvertRightRevCoeff,
	} {
		_, err := inv()
		s.Require().ErrorIs(err, ring.ErrNotInvertible, name)
	}
}

func (s *InversionSuite) TestDiagonalFloat() {
	inv, err := s.diagonal.InvertLeft()
	s.Require().NoError(err)
	requireFloatGrid(s.T(), [][]float64{{0.5, 0}, {0, 1.0 / 3}}, inv, 1e-15)
}

func (s *InversionSuite) TestInverseViaOptionalOps() {
	l, err := s.tri.HandleOptionalOp(ring.Op[*matrix.Square[Q]](ring.OpInvertLeftRevCoeff))
	s.Require().NoError(err)
	p, err := l.HandleOptionalOp(ring.Op(ring.OpMultRevCoeff, s.tri))
	s.Require().NoError(err)
	s.Require().True(p.IsExactIdentity())
}

func TestInversionSuite(t *testing.T) {
	suite.Run(t, new(InversionSuite))
}

// blockMatrix builds [[A, B], [0, C]] over 2×2 rational blocks whose
// products do not commute.
func blockMatrix(t *testing.T) *matrix.Square[*matrix.Square[Q]] {
	t.Helper()
	a := ratSquare(t, [][]string{{"1", "1"}, {"0", "1"}})
	b := ratSquare(t, [][]string{{"1", "0"}, {"2", "1"}})
	c := ratSquare(t, [][]string{{"2", "1"}, {"1", "1"}})
	require.False(t, a.Mult(c).IsExactZero())

	fac := matrix.NewFactory[Q](numeric.RatFactory{}, matrix.Dim(2))
	m := matrix.New[*matrix.Square[Q]](fac, matrix.Dim(2))
	require.NoError(t, m.SetVal(0, 0, a))
	require.NoError(t, m.SetVal(0, 1, b))
	require.NoError(t, m.SetVal(1, 1, c))

	return m
}

func TestInvert_NestedBlocks(t *testing.T) {
	m := blockMatrix(t)

	l, err := m.InvertLeft()
	require.NoError(t, err)
	require.True(t, l.Mult(m).IsExactIdentity(), "%v", l.Mult(m))

	r, err := m.InvertRight()
	require.NoError(t, err)
	require.True(t, m.Mult(r).IsExactIdentity(), "%v", m.Mult(r))
}

func TestInvert_NestedBlocksRevCoeff(t *testing.T) {
	m := blockMatrix(t)

	l, err := m.InvertLeftRevCoeff()
	require.NoError(t, err)
	p, err := l.HandleOptionalOp(ring.Op(ring.OpMultRevCoeff, m))
	require.NoError(t, err)
	require.True(t, p.IsExactIdentity(), "%v", p)

	r, err := m.InvertRightRevCoeff()
	require.NoError(t, err)
	require.True(t, m.MultRevCoeff(r).IsExactIdentity(), "%v", m.MultRevCoeff(r))
}

func TestDeterminant(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{7}}, 7},
		{"diag 2x2", [][]float64{{2, 0}, {0, 3}}, 6},
		{"dense 2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity 3x3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"dense 3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"odd column sign", [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, -1},
		{"empty first row", [][]float64{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, float64(floatSquare(t, tc.rows).Determinant()), 1e-12)
		})
	}
}

func TestAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 4, 6} {
		m := randomDominant(t, rng, n, 0.5)
		d, err := numeric.ToDense(m)
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(d))

		l, err := m.InvertLeft()
		require.NoError(t, err)
		r, err := m.InvertRight()
		require.NoError(t, err)
		for _, got := range []*matrix.Square[F]{l, r} {
			gd, err := numeric.ToDense(got)
			require.NoError(t, err)
			require.True(t, mat.EqualApprox(&want, gd, 1e-9), "n=%d\nwant %v\ngot  %v", n, mat.Formatted(&want), mat.Formatted(gd))
		}

		if n <= 4 {
			require.InDelta(t, mat.Det(d), float64(m.Determinant()), 1e-9)
		}
	}
}
