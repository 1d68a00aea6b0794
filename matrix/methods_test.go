// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplealgebra/matrix"
	"github.com/katalvlaran/simplealgebra/numeric"
	"github.com/katalvlaran/simplealgebra/ring"
)

func TestAdd_UnionOfPositions(t *testing.T) {
	a := floatSquare(t, [][]float64{{1, 0}, {0, 2}})
	b := floatSquare(t, [][]float64{{3, 4}, {0, 0}})

	sum := a.Add(b)
	requireFloatGrid(t, [][]float64{{4, 4}, {0, 2}}, sum, 0)
	require.Equal(t, 3, sum.Len())

	// operands untouched
	requireFloatGrid(t, [][]float64{{1, 0}, {0, 2}}, a, 0)
}

func TestMult_Dense(t *testing.T) {
	a := floatSquare(t, [][]float64{{1, 2}, {3, 4}})
	b := floatSquare(t, [][]float64{{5, 6}, {7, 8}})

	requireFloatGrid(t, [][]float64{{19, 22}, {43, 50}}, a.Mult(b), 0)
}

func TestMult_SparseSkipsEmptyProducts(t *testing.T) {
	a := floatSquare(t, [][]float64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})
	b := floatSquare(t, [][]float64{{0, 0, 0}, {0, 0, 2}, {0, 0, 0}})

	p := a.Mult(b)
	require.Equal(t, 1, p.Len())
	require.Equal(t, F(2), p.GetVal(0, 2))
	require.Zero(t, b.Mult(a).Len())
}

func TestRingLaws_Rat(t *testing.T) {
	a := ratSquare(t, [][]string{{"1", "2"}, {"3", "4"}})
	b := ratSquare(t, [][]string{{"0", "1"}, {"1", "0"}})
	c := ratSquare(t, [][]string{{"2", "0"}, {"1/2", "1"}})

	t.Run("associativity", func(t *testing.T) {
		requireSameRat(t, a.Mult(b).Mult(c), a.Mult(b.Mult(c)))
	})
	t.Run("left distributivity", func(t *testing.T) {
		requireSameRat(t, a.Mult(b).Add(a.Mult(c)), a.Mult(b.Add(c)))
	})
	t.Run("right distributivity", func(t *testing.T) {
		requireSameRat(t, a.Mult(c).Add(b.Mult(c)), a.Add(b).Mult(c))
	})
	t.Run("additive inverse", func(t *testing.T) {
		require.True(t, a.Add(a.Negate()).IsExactZero())
	})
	t.Run("identity", func(t *testing.T) {
		id := a.Factory().Identity()
		requireSameRat(t, a, id.Mult(a))
		requireSameRat(t, a, a.Mult(id))
	})
}

func TestDivideBy(t *testing.T) {
	a := floatSquare(t, [][]float64{{2, 0}, {0, 4}})

	h, err := a.DivideBy(2)
	require.NoError(t, err)
	requireFloatGrid(t, [][]float64{{1, 0}, {0, 2}}, h, 0)

	_, err = a.DivideBy(0)
	require.ErrorIs(t, err, ring.ErrBadCreation)
}

func TestHandleOptionalOp(t *testing.T) {
	a := floatSquare(t, [][]float64{{1, 2}, {3, 4}})

	t.Run("transpose", func(t *testing.T) {
		tr, err := a.HandleOptionalOp(ring.Op[*matrix.Square[F]](ring.OpTranspose))
		require.NoError(t, err)
		requireFloatGrid(t, [][]float64{{1, 3}, {2, 4}}, tr, 0)
	})
	t.Run("mult rev coeff commutative", func(t *testing.T) {
		p, err := a.HandleOptionalOp(ring.Op(ring.OpMultRevCoeff, a))
		require.NoError(t, err)
		requireFloatGrid(t, [][]float64{{7, 10}, {15, 22}}, p, 0)
	})
	t.Run("mult rev coeff without argument", func(t *testing.T) {
		_, err := a.HandleOptionalOp(ring.Op[*matrix.Square[F]](ring.OpMultRevCoeff))
		require.ErrorIs(t, err, ring.ErrStructuralMismatch)
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := a.HandleOptionalOp(ring.Op[*matrix.Square[F]](ring.OpRankTwoTrace))
		require.ErrorIs(t, err, ring.ErrUnsupportedOp)
	})
}

func TestMultRevCoeff_NonCommutativeEntries(t *testing.T) {
	fac := matrix.NewFactory[Q](numeric.RatFactory{}, matrix.Dim(2))
	p := ratSquare(t, [][]string{{"1", "1"}, {"0", "1"}})
	q := ratSquare(t, [][]string{{"1", "0"}, {"1", "1"}})

	// 1x1 block matrices: the only coefficient product is p*q vs q*p.
	a := matrix.New[*matrix.Square[Q]](fac, matrix.Dim(1))
	b := matrix.New[*matrix.Square[Q]](fac, matrix.Dim(1))
	require.NoError(t, a.SetVal(0, 0, p))
	require.NoError(t, b.SetVal(0, 0, q))

	requireSameRat(t, p.Mult(q), a.Mult(b).GetVal(0, 0))
	requireSameRat(t, q.Mult(p), a.MultRevCoeff(b).GetVal(0, 0))
}

func TestMutate_PreservesPositions(t *testing.T) {
	a := floatSquare(t, [][]float64{{1, 2}, {0, 3}})

	out, err := a.Mutate(ring.NewMultLeftMutator[F](2, "two"))
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	requireFloatGrid(t, [][]float64{{2, 4}, {0, 6}}, out, 0)

	_, err = a.Mutate(ring.MutatorFunc[F](func(v F) (F, error) { return v.InvertLeft() }))
	require.NoError(t, err)

	_, err = a.Mutate(ring.MutatorFunc[F](func(v F) (F, error) { return v.DivideBy(0) }))
	require.ErrorIs(t, err, ring.ErrBadCreation)
}

func TestCloneForWorker_StatelessReturnsSelf(t *testing.T) {
	a := floatSquare(t, [][]float64{{1, 2}, {0, 3}})
	require.Same(t, a, a.CloneForWorker(3))

	f := matrix.NewFactory[F](numeric.FloatFactory{}, matrix.Dim(2))
	require.Same(t, f, f.CloneForWorker(1))
}

func TestFactory_Properties(t *testing.T) {
	f := matrix.NewFactory[F](numeric.FloatFactory{}, matrix.Dim(3))
	require.False(t, f.IsMultCommutative())
	require.True(t, f.IsNestedMultCommutative())
	require.True(t, f.Identity().IsExactIdentity())
	require.True(t, f.Zero().IsExactZero())

	nested := matrix.NewFactory[*matrix.Square[F]](f, matrix.Dim(2))
	require.False(t, nested.IsNestedMultCommutative())
	require.True(t, nested.Identity().IsExactIdentity())
}
