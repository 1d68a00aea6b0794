// SPDX-License-Identifier: MIT
// Package tensor: copies into matrices and multivectors.
// Einstein also satisfies matrix.IndexedSink, which covers the opposite
// direction (matrix → tensor).

package tensor

import (
	"fmt"

	"github.com/katalvlaran/simplealgebra/matrix"
)

func (t *Einstein[I, R]) requireRank(op string, rank int) error {
	if t.Rank() != rank {
		return tensorErrorf(op, fmt.Errorf("rank %d, want %d: %w", t.Rank(), rank, ErrRankMismatch))
	}

	return nil
}

// RankOneToMultivector writes the vector Σ t[i]·e_i into out.
func (t *Einstein[I, R]) RankOneToMultivector(out matrix.MultivectorSink[R]) error {
	if err := t.requireRank(opRankOneToMultivector, 1); err != nil {
		return err
	}
	for _, e := range t.sorted() {
		out.SetBlade([]int{e.key[0]}, e.val)
	}

	return nil
}

// RankOneToRowVector writes out[row][i] = t[i].
func (t *Einstein[I, R]) RankOneToRowVector(row int, out *matrix.Square[R]) error {
	if err := t.requireRank(opRankOneToRowVector, 1); err != nil {
		return err
	}
	for _, e := range t.sorted() {
		if err := out.SetVal(row, e.key[0], e.val); err != nil {
			return tensorErrorf(opRankOneToRowVector, err)
		}
	}

	return nil
}

// RankOneToColumnVector writes out[i][col] = t[i].
func (t *Einstein[I, R]) RankOneToColumnVector(col int, out *matrix.Square[R]) error {
	if err := t.requireRank(opRankOneToColumnVector, 1); err != nil {
		return err
	}
	for _, e := range t.sorted() {
		if err := out.SetVal(e.key[0], col, e.val); err != nil {
			return tensorErrorf(opRankOneToColumnVector, err)
		}
	}

	return nil
}

// RankTwoToSquareMatrix writes out[i][j] = t[i, j].
func (t *Einstein[I, R]) RankTwoToSquareMatrix(out *matrix.Square[R]) error {
	if err := t.requireRank(opRankTwoToSquareMatrix, 2); err != nil {
		return err
	}
	for _, e := range t.sorted() {
		if err := out.SetVal(e.key[0], e.key[1], e.val); err != nil {
			return tensorErrorf(opRankTwoToSquareMatrix, err)
		}
	}

	return nil
}
