// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Build small Float/Rat matrices from dense literals.
//   - Compare sparse results against dense expectations, treating absent
//     entries as zero.

package matrix_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplealgebra/matrix"
	"github.com/katalvlaran/simplealgebra/numeric"
)

type (
	F = numeric.Float
	Q = numeric.Rat
)

// floatSquare builds a Square[Float] from rows, skipping zeros.
func floatSquare(t testing.TB, rows [][]float64) *matrix.Square[F] {
	t.Helper()
	m := matrix.New[F](numeric.FloatFactory{}, matrix.Dim(len(rows)))
	for i, row := range rows {
		require.Len(t, row, len(rows), "row %d", i)
		for j, v := range row {
			if v != 0 {
				require.NoError(t, m.SetVal(i, j, F(v)))
			}
		}
	}

	return m
}

// ratSquare builds a Square[Rat] from rows of "p/q" literals; "0" is skipped.
func ratSquare(t testing.TB, rows [][]string) *matrix.Square[Q] {
	t.Helper()
	m := matrix.New[Q](numeric.RatFactory{}, matrix.Dim(len(rows)))
	for i, row := range rows {
		require.Len(t, row, len(rows), "row %d", i)
		for j, s := range row {
			q := mustRat(t, s)
			if !q.IsExactZero() {
				require.NoError(t, m.SetVal(i, j, q))
			}
		}
	}

	return m
}

func mustRat(t testing.TB, s string) Q {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	require.True(t, ok, "bad rational literal %q", s)

	return numeric.RatFromBig(r)
}

// requireFloatGrid compares got against a dense expectation within tol.
func requireFloatGrid(t testing.TB, want [][]float64, got *matrix.Square[F], tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Size())
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], float64(got.GetVal(i, j)), tol, "(%d,%d) of %v", i, j, got)
		}
	}
}

// requireRatGrid compares got against a dense expectation exactly.
func requireRatGrid(t testing.TB, want [][]string, got *matrix.Square[Q]) {
	t.Helper()
	require.Equal(t, len(want), got.Size())
	for i := range want {
		for j := range want[i] {
			w := mustRat(t, want[i][j])
			require.True(t, w.Equal(got.GetVal(i, j)), "(%d,%d): want %v, got %v", i, j, w, got.GetVal(i, j))
		}
	}
}

// requireSameRat compares two Rat matrices position by position.
func requireSameRat(t testing.TB, want, got *matrix.Square[Q]) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size())
	n := want.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.True(t, want.GetVal(i, j).Equal(got.GetVal(i, j)),
				"(%d,%d): want %v, got %v", i, j, want.GetVal(i, j), got.GetVal(i, j))
		}
	}
}

// requirePanicsIs asserts fn panics with an error matching target.
func requirePanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}

// randomDominant returns an n×n matrix with entries in [-1,1) at the given
// density and |diag| >= n, hence invertible.
func randomDominant(t testing.TB, rng *rand.Rand, n int, density float64) *matrix.Square[F] {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = float64(n) + rng.Float64()
			} else if rng.Float64() < density {
				rows[i][j] = 2*rng.Float64() - 1
			}
		}
	}

	return floatSquare(t, rows)
}
