// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One private elementwise kernel (ewMap) behind Negate, DivideBy and
//     Mutate. Sparsity positions are preserved: absent entries stay absent
//     even when f(zero) would not be zero.

package matrix

import "github.com/katalvlaran/simplealgebra/ring"

// Mutate applies mut to every stored entry.
func (m *Square[R]) Mutate(mut ring.Mutator[R]) (*Square[R], error) {
	out, err := m.ewMap(mut.Mutate)
	if err != nil {
		return nil, matrixErrorf(opMutate, err)
	}

	return out, nil
}

// ewMap builds a matrix with f applied at every stored position, stopping
// at the first error. Deterministic row-major order.
func (m *Square[R]) ewMap(f func(R) (R, error)) (*Square[R], error) {
	out := New(m.fac, m.dim)
	var err error
	m.Range(func(r, c int, v R) bool {
		var nv R
		if nv, err = f(v); err != nil {
			return false
		}
		out.set(r, c, nv)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
