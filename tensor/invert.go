// SPDX-License-Identifier: MIT
// Package tensor: inverses.
//
// InvertLeft/InvertRight scale every entry by the inverse of the entry sum
// and swap the slot lists. The result is not an inverse in general: a
// scalar s maps to s⁻¹·s = 1. Rank-two inverses go through the matrix
// engine (MatrixInverseLeft/MatrixInverseRight).

package tensor

import (
	"fmt"

	"github.com/katalvlaran/simplealgebra/matrix"
)

// InvertLeft returns the tensor with slot lists swapped and every entry v
// replaced by s⁻¹·v, where s is the sum of all entries and s⁻¹ its left
// inverse. Keys are rewritten as covariant values followed by
// contravariant ones. This is not t⁻¹ (a scalar s maps to 1); use
// MatrixInverseLeft for rank-two tensors.
func (t *Einstein[I, R]) InvertLeft() (*Einstein[I, R], error) {
	inv, err := t.sum().InvertLeft()
	if err != nil {
		return nil, tensorErrorf(opInvertLeft, err)
	}

	return t.swapScaled(func(v R) R { return inv.Mult(v) }), nil
}

// InvertRight is InvertLeft with v·s⁻¹ and the right inverse of the sum.
func (t *Einstein[I, R]) InvertRight() (*Einstein[I, R], error) {
	inv, err := t.sum().InvertRight()
	if err != nil {
		return nil, tensorErrorf(opInvertRight, err)
	}

	return t.swapScaled(func(v R) R { return v.Mult(inv) }), nil
}

func (t *Einstein[I, R]) sum() R {
	s := t.fac.Zero()
	for _, e := range t.sorted() {
		s = s.Add(e.val)
	}

	return s
}

func (t *Einstein[I, R]) swapScaled(scale func(R) R) *Einstein[I, R] {
	out := newShared(t.fac, t.cov, t.contra)
	nc := len(t.contra)
	for _, e := range t.entries {
		key := make([]int, 0, len(e.key))
		key = append(key, e.key[nc:]...)
		key = append(key, e.key[:nc]...)
		out.put(key, scale(e.val))
	}

	return out
}

// MatrixInverseLeft treats a rank-two tensor as a dim×dim matrix (first
// slot = row), inverts it with matrix.Square.InvertLeft and copies the
// result back under the same slot names.
func (t *Einstein[I, R]) MatrixInverseLeft(dim matrix.NumDimensions) (*Einstein[I, R], error) {
	return t.matrixInverse(opMatrixInverseLeft, dim, (*matrix.Square[R]).InvertLeft)
}

// MatrixInverseRight is MatrixInverseLeft with the right inverse.
func (t *Einstein[I, R]) MatrixInverseRight(dim matrix.NumDimensions) (*Einstein[I, R], error) {
	return t.matrixInverse(opMatrixInverseRight, dim, (*matrix.Square[R]).InvertRight)
}

func (t *Einstein[I, R]) matrixInverse(op string, dim matrix.NumDimensions, inv func(*matrix.Square[R]) (*matrix.Square[R], error)) (*Einstein[I, R], error) {
	if t.Rank() != 2 {
		return nil, tensorErrorf(op, fmt.Errorf("rank %d: %w", t.Rank(), ErrRankMismatch))
	}

	m := matrix.New(t.fac, dim)
	if err := t.RankTwoToSquareMatrix(m); err != nil {
		return nil, tensorErrorf(op, err)
	}
	mi, err := inv(m)
	if err != nil {
		return nil, tensorErrorf(op, err)
	}

	out := t.derive()
	if err = mi.ToRankTwoTensor(out); err != nil {
		return nil, tensorErrorf(op, err)
	}

	return out, nil
}
