// SPDX-License-Identifier: MIT
// Package matrix: the generalised Gauss–Jordan kernel behind all four
// inverses.
//
// A "line" is a row (left inverses) or a column (right inverses); "pos" is
// the index along it. The pivot multiplier is applied from the left when
// eliminating rows in natural order or columns in reverse order, and from
// the right otherwise. That side also selects the one-sided inverse used
// on the pivot, so a single kernel covers
//
//	left/natural   rows     InvertLeft   mv*v   dst -= mult*src
//	left/reverse   rows     InvertRight  v*mv   dst -= src*mult
//	right/natural  columns  InvertRight  v*mv   dst -= src*mult
//	right/reverse  columns  InvertLeft   mv*v   dst -= mult*src

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplealgebra/ring"
)

type axis int

const (
	byRows axis = iota
	byColumns
)

type eliminator[R ring.Elem[R]] struct {
	axis     axis
	leftSide bool
}

func newEliminator[R ring.Elem[R]](ax axis, order ring.Order) eliminator[R] {
	return eliminator[R]{
		axis:     ax,
		leftSide: (ax == byRows) == (order == ring.Natural),
	}
}

// apply multiplies v by mult on the kernel's side.
func (e eliminator[R]) apply(mult, v R) R {
	if e.leftSide {
		return mult.Mult(v)
	}

	return v.Mult(mult)
}

func (e eliminator[R]) invert(v R) (R, error) {
	if e.leftSide {
		return v.InvertLeft()
	}

	return v.InvertRight()
}

func (e eliminator[R]) line(m *Square[R], l int) map[int]R {
	if e.axis == byRows {
		return m.rows[l]
	}

	return m.cols[l]
}

func (e eliminator[R]) at(m *Square[R], l, pos int) (R, bool) {
	if e.axis == byRows {
		return m.get(l, pos)
	}

	return m.get(pos, l)
}

func (e eliminator[R]) put(m *Square[R], l, pos int, v R) {
	if e.axis == byRows {
		m.set(l, pos, v)
	} else {
		m.set(pos, l, v)
	}
}

func (e eliminator[R]) drop(m *Square[R], l, pos int) {
	if e.axis == byRows {
		m.del(l, pos)
	} else {
		m.del(pos, l)
	}
}

// exchange swaps lines a and b of m.
func (e eliminator[R]) exchange(m *Square[R], a, b int) {
	la, lb := e.snapshot(m, a), e.snapshot(m, b)
	for pos := range la {
		e.drop(m, a, pos)
	}
	for pos := range lb {
		e.drop(m, b, pos)
	}
	for pos, v := range la {
		e.put(m, b, pos, v)
	}
	for pos, v := range lb {
		e.put(m, a, pos, v)
	}
}

func (e eliminator[R]) snapshot(m *Square[R], l int) map[int]R {
	src := e.line(m, l)
	out := make(map[int]R, len(src))
	for pos, v := range src {
		out[pos] = v
	}

	return out
}

// scale replaces line k of m with mv applied to each of its entries.
func (e eliminator[R]) scale(m *Square[R], k int, mv R) {
	src := e.line(m, k)
	for _, pos := range sortedKeys(src) {
		e.put(m, k, pos, e.apply(mv, src[pos]))
	}
}

// subtract performs line d -= mult·(line k) on m.
func (e eliminator[R]) subtract(m *Square[R], d, k int, mult R) {
	src := e.line(m, k)
	for _, pos := range sortedKeys(src) {
		delta := e.apply(mult, src[pos]).Negate()
		if cur, ok := e.at(m, d, pos); ok {
			e.put(m, d, pos, cur.Add(delta))
		} else {
			e.put(m, d, pos, delta)
		}
	}
}

// pivot returns the inverse of the pivot for step k, exchanging line k with
// the first later line whose position-k entry is invertible when the
// current one is not. The same exchange is applied to acc.
func (e eliminator[R]) pivot(work, acc *Square[R], k, n int) (R, error) {
	if v, ok := e.at(work, k, k); ok {
		inv, err := e.invert(v)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, ring.ErrNotInvertible) {
			return inv, err
		}
	}

	for c := k + 1; c < n; c++ {
		v, ok := e.at(work, c, k)
		if !ok {
			continue
		}
		inv, err := e.invert(v)
		if err != nil {
			if errors.Is(err, ring.ErrNotInvertible) {
				continue
			}
			return inv, err
		}
		e.exchange(work, k, c)
		e.exchange(acc, k, c)

		return inv, nil
	}

	var zero R
	return zero, fmt.Errorf("no invertible pivot at %d: %w", k, ring.ErrNotInvertible)
}

// run reduces a private copy of m to the identity and returns the
// accumulated inverse.
//
// Implementation:
//   - Stage 1 (Prepare): work := copy of m; acc := identity.
//   - Stage 2 (Execute), for k = 0..n-1:
//     pivot setup (with exchange), normalise line k on the kernel's side and
//     force work[k][k] to the exact identity, then for every other line d
//     with a non-zero entry at position k subtract mult·(line k) and drop
//     the eliminated entry. Every operation is mirrored on acc.
//   - Stage 3 (Finalize): acc is the requested one-sided inverse.
//
// Complexity: O(n·nnz) ring operations in the sparse case, O(n³) dense.
func (e eliminator[R]) run(m *Square[R]) (*Square[R], error) {
	n := m.Size()
	id := m.fac.Identity()
	work := m.clone()
	acc := NewDiagonal(id, m.fac, m.dim)

	for k := 0; k < n; k++ {
		mv, err := e.pivot(work, acc, k, n)
		if err != nil {
			return nil, err
		}

		e.scale(work, k, mv)
		e.scale(acc, k, mv)
		if d, ok := e.at(work, k, k); !ok || !ring.IsExactIdentity(d) {
			e.put(work, k, k, id)
		}

		for d := 0; d < n; d++ {
			if d == k {
				continue
			}
			mult, ok := e.at(work, d, k)
			if !ok {
				continue
			}
			if !ring.IsExactZero(mult) {
				e.subtract(work, d, k, mult)
				e.subtract(acc, d, k, mult)
			}
			e.drop(work, d, k)
		}
	}

	return acc, nil
}
