// SPDX-License-Identifier: MIT
// Package matrix: inversion and determinant.
//
// Inversion works over any ring, commutative or not. The determinant is
// only meaningful when R commutes; callers are responsible for that.

package matrix

import "github.com/katalvlaran/simplealgebra/ring"

// InvertLeft returns X with X·m = I, using row operations.
// Fails with ring.ErrNotInvertible when some step finds no invertible pivot.
func (m *Square[R]) InvertLeft() (*Square[R], error) {
	return m.invert(opInvertLeft, byRows, ring.Natural)
}

// InvertRight returns X with m·X = I, using column operations.
func (m *Square[R]) InvertRight() (*Square[R], error) {
	return m.invert(opInvertRight, byColumns, ring.Natural)
}

// InvertLeftRevCoeff returns X with X.MultRevCoeff(m) = I.
func (m *Square[R]) InvertLeftRevCoeff() (*Square[R], error) {
	return m.invert(opInvertLeftRevCoeff, byRows, ring.Reversed)
}

// InvertRightRevCoeff returns X with m.MultRevCoeff(X) = I.
func (m *Square[R]) InvertRightRevCoeff() (*Square[R], error) {
	return m.invert(opInvertRightRevCoeff, byColumns, ring.Reversed)
}

func (m *Square[R]) invert(op string, ax axis, order ring.Order) (*Square[R], error) {
	out, err := newEliminator[R](ax, order).run(m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// Determinant returns det(m).
//
// Implementation:
//   - 0×0 → identity; 1×1 → m[0][0]; 2×2 → m00*m11 - m10*m01.
//   - Larger: Laplace expansion along row 0, Σ (-1)^j m[0][j]·det(minor j),
//     skipping absent entries of row 0.
//
// Complexity: O(n!) in the dense worst case. Intended for small or very
// sparse matrices.
func (m *Square[R]) Determinant() R {
	switch n := m.Size(); {
	case n <= 0:
		return m.fac.Identity()
	case n == 1:
		return m.GetVal(0, 0)
	case n == 2:
		t0 := m.GetVal(0, 0).Mult(m.GetVal(1, 1))
		t1 := m.GetVal(1, 0).Mult(m.GetVal(0, 1))
		return ring.Sub(t0, t1)
	}

	row0 := m.rows[0]
	var det R
	found := false
	for _, j := range sortedKeys(row0) {
		term := row0[j].Mult(m.minor(0, j).Determinant())
		if j%2 == 1 {
			term = term.Negate()
		}
		if found {
			det = det.Add(term)
		} else {
			det, found = term, true
		}
	}
	if !found {
		return m.fac.Zero()
	}

	return det
}

// minor drops row r0 and column c0, shifting later indices down by one.
func (m *Square[R]) minor(r0, c0 int) *Square[R] {
	out := New(m.fac, Dim(m.Size()-1))
	for r, row := range m.rows {
		if r == r0 {
			continue
		}
		rr := r
		if r > r0 {
			rr--
		}
		for c, v := range row {
			if c == c0 {
				continue
			}
			cc := c
			if c > c0 {
				cc--
			}
			out.set(rr, cc, v)
		}
	}

	return out
}
