// SPDX-License-Identifier: MIT
// Package matrix: ring-element methods of Square.
//
// Every method returns a new matrix; receivers and arguments are never
// modified. Entry values are shared between input and output because ring
// elements are immutable.

package matrix

import (
	"github.com/katalvlaran/simplealgebra/ring"
)

// Add returns m + b. Positions stored in only one operand are copied,
// overlapping positions are added.
//
// Panics with ring.ErrStructuralMismatch when the sizes differ.
func (m *Square[R]) Add(b *Square[R]) *Square[R] {
	requireSameDim(opAdd, m, b)

	out := m.clone()
	b.Range(func(r, c int, v R) bool {
		if cur, ok := out.get(r, c); ok {
			out.set(r, c, cur.Add(v))
		} else {
			out.set(r, c, v)
		}
		return true
	})

	return out
}

// Mult returns m·b with coefficient products taken as left*right.
//
// Panics with ring.ErrStructuralMismatch when the sizes differ.
func (m *Square[R]) Mult(b *Square[R]) *Square[R] {
	requireSameDim(opMult, m, b)

	return m.mult(b, ring.Natural)
}

// MultRevCoeff returns m·b with every coefficient product reversed:
// out[i][j] = Σ b[k][j]*m[i][k]. It equals Mult whenever R commutes.
func (m *Square[R]) MultRevCoeff(b *Square[R]) *Square[R] {
	requireSameDim(opMultRevCoeff, m, b)

	return m.mult(b, ring.Reversed)
}

// mult is the shared product kernel.
//
// Implementation:
//   - Stage 1: for every non-empty row i of m and non-empty column j of b,
//     walk the smaller of row i / column j and probe the other for the
//     shared middle index k.
//   - Stage 2: accumulate ring.Mul(order, m[i][k], b[k][j]); store only
//     when at least one product existed.
//
// Complexity: O(rows(m)·cols(b)·min(nnz row, nnz col)).
func (m *Square[R]) mult(b *Square[R], order ring.Order) *Square[R] {
	out := New(m.fac, m.dim)

	rowIdx := sortedKeys(m.rows)
	colIdx := sortedKeys(b.cols)
	colKeys := make(map[int][]int, len(colIdx))
	for _, j := range colIdx {
		colKeys[j] = sortedKeys(b.cols[j])
	}

	for _, i := range rowIdx {
		row := m.rows[i]
		rowKeys := sortedKeys(row)
		for _, j := range colIdx {
			col := b.cols[j]

			var acc R
			found := false
			accumulate := func(p R) {
				if found {
					acc = acc.Add(p)
				} else {
					acc, found = p, true
				}
			}

			if len(rowKeys) <= len(colKeys[j]) {
				for _, k := range rowKeys {
					if bv, ok := col[k]; ok {
						accumulate(ring.Mul(order, row[k], bv))
					}
				}
			} else {
				for _, k := range colKeys[j] {
					if av, ok := row[k]; ok {
						accumulate(ring.Mul(order, av, col[k]))
					}
				}
			}

			if found {
				out.set(i, j, acc)
			}
		}
	}

	return out
}

// Negate returns -m.
func (m *Square[R]) Negate() *Square[R] {
	out, _ := m.ewMap(func(v R) (R, error) { return v.Negate(), nil })
	return out
}

// DivideBy divides every entry by n.
func (m *Square[R]) DivideBy(n int64) (*Square[R], error) {
	out, err := m.ewMap(func(v R) (R, error) { return v.DivideBy(n) })
	if err != nil {
		return nil, matrixErrorf(opDivideBy, err)
	}

	return out, nil
}

// Transpose returns mᵀ.
func (m *Square[R]) Transpose() *Square[R] {
	out := New(m.fac, m.dim)
	for r, row := range m.rows {
		for c, v := range row {
			out.set(c, r, v)
		}
	}

	return out
}

// Factory returns the factory of matrices with m's dimension and entries.
func (m *Square[R]) Factory() ring.Factory[*Square[R]] {
	return NewFactory(m.fac, m.dim)
}

// HandleOptionalOp dispatches the matrix optional operations:
// OpTranspose, OpMultRevCoeff (one argument), OpInvertLeftRevCoeff and
// OpInvertRightRevCoeff. Other kinds fail with ring.ErrUnsupportedOp.
func (m *Square[R]) HandleOptionalOp(op ring.OptionalOp[*Square[R]]) (*Square[R], error) {
	switch op.Kind {
	case ring.OpTranspose:
		return m.Transpose(), nil
	case ring.OpMultRevCoeff:
		b, err := op.Arg(0)
		if err != nil {
			return nil, matrixErrorf(opHandleOptionalOp, err)
		}
		if b == nil {
			return nil, matrixErrorf(opMultRevCoeff, ErrNilMatrix)
		}
		if b.Size() != m.Size() {
			return nil, matrixErrorf(opMultRevCoeff, ring.ErrStructuralMismatch)
		}
		return m.mult(b, ring.Reversed), nil
	case ring.OpInvertLeftRevCoeff:
		return m.InvertLeftRevCoeff()
	case ring.OpInvertRightRevCoeff:
		return m.InvertRightRevCoeff()
	default:
		return ring.Unsupported(op)
	}
}

// CloneForWorker clones the factory and every entry. When none of them
// carries per-worker state the receiver itself is returned.
func (m *Square[R]) CloneForWorker(worker int) *Square[R] {
	fac := m.fac.CloneForWorker(worker)
	changed := !ring.Same(fac, m.fac)

	type cell struct {
		r, c int
		v    R
	}
	var cells []cell
	m.Range(func(r, c int, v R) bool {
		cv := v.CloneForWorker(worker)
		if !ring.Same(cv, v) {
			changed = true
		}
		cells = append(cells, cell{r, c, cv})
		return true
	})
	if !changed {
		return m
	}

	out := New(fac, m.dim)
	for _, x := range cells {
		out.set(x.r, x.c, x.v)
	}

	return out
}

// IsExactZero reports whether every stored entry is an exact zero.
func (m *Square[R]) IsExactZero() bool {
	zero := true
	m.Range(func(_, _ int, v R) bool {
		zero = ring.IsExactZero(v)
		return zero
	})

	return zero
}

// IsExactIdentity reports whether every diagonal entry is an exact identity
// and every other stored entry an exact zero.
func (m *Square[R]) IsExactIdentity() bool {
	diag := 0
	ok := true
	m.Range(func(r, c int, v R) bool {
		if r == c {
			diag++
			ok = ring.IsExactIdentity(v)
		} else {
			ok = ring.IsExactZero(v)
		}
		return ok
	})

	return ok && diag == m.Size()
}
