// SPDX-License-Identifier: MIT
// Package matrix: conversions into tensors and multivectors.
//
// The tensor and geometric-algebra packages depend on matrix, not the other
// way round, so the targets are described by the small sink interfaces
// below. Only stored entries are written; the sink is expected to start
// empty.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/simplealgebra/ring"
)

// IndexedSink receives entries keyed by basis-index tuples. Rank is the
// required key length. *tensor.Einstein satisfies it.
type IndexedSink[R any] interface {
	Rank() int
	SetVal(key []int, v R) error
}

// MultivectorSink receives entries keyed by basis blades.
type MultivectorSink[R any] interface {
	SetBlade(blade []int, v R)
}

func requireRank[R any](out IndexedSink[R], rank int) error {
	if got := out.Rank(); got != rank {
		return fmt.Errorf("sink rank %d, want %d: %w", got, rank, ring.ErrStructuralMismatch)
	}

	return nil
}

// ColumnVectorToRankOneTensor writes column col into out as out[row] = m[row][col].
func (m *Square[R]) ColumnVectorToRankOneTensor(col int, out IndexedSink[R]) error {
	if err := validateLine(m, col); err != nil {
		return matrixErrorf(opColumnToTensor, err)
	}
	if err := requireRank(out, 1); err != nil {
		return matrixErrorf(opColumnToTensor, err)
	}

	c := m.cols[col]
	for _, row := range sortedKeys(c) {
		if err := out.SetVal([]int{row}, c[row]); err != nil {
			return matrixErrorf(opColumnToTensor, err)
		}
	}

	return nil
}

// RowVectorToRankOneTensor writes row into out as out[col] = m[row][col].
func (m *Square[R]) RowVectorToRankOneTensor(row int, out IndexedSink[R]) error {
	if err := validateLine(m, row); err != nil {
		return matrixErrorf(opRowToTensor, err)
	}
	if err := requireRank(out, 1); err != nil {
		return matrixErrorf(opRowToTensor, err)
	}

	r := m.rows[row]
	for _, col := range sortedKeys(r) {
		if err := out.SetVal([]int{col}, r[col]); err != nil {
			return matrixErrorf(opRowToTensor, err)
		}
	}

	return nil
}

// ToRankTwoTensor writes every entry into out as out[row, col].
func (m *Square[R]) ToRankTwoTensor(out IndexedSink[R]) error {
	if err := requireRank(out, 2); err != nil {
		return matrixErrorf(opToRankTwoTensor, err)
	}

	var err error
	m.Range(func(r, c int, v R) bool {
		err = out.SetVal([]int{r, c}, v)
		return err == nil
	})
	if err != nil {
		return matrixErrorf(opToRankTwoTensor, err)
	}

	return nil
}

// ColumnVectorToMultivector writes column col as the vector Σ m[row][col]·e_row.
func (m *Square[R]) ColumnVectorToMultivector(col int, out MultivectorSink[R]) error {
	if err := validateLine(m, col); err != nil {
		return matrixErrorf(opColumnToMultivector, err)
	}

	c := m.cols[col]
	for _, row := range sortedKeys(c) {
		out.SetBlade([]int{row}, c[row])
	}

	return nil
}

// RowVectorToMultivector writes row as the vector Σ m[row][col]·e_col.
func (m *Square[R]) RowVectorToMultivector(row int, out MultivectorSink[R]) error {
	if err := validateLine(m, row); err != nil {
		return matrixErrorf(opRowToMultivector, err)
	}

	r := m.rows[row]
	for _, col := range sortedKeys(r) {
		out.SetBlade([]int{col}, r[col])
	}

	return nil
}
