// SPDX-License-Identifier: MIT
// Package matrix: construction, accessors and mirrored storage primitives.
//
// Every write goes through set/del so the row-major and column-major maps
// never drift apart. Public setters validate indices; private ones trust
// the caller (kernels only touch indices they read from storage or derived
// from Size()).

package matrix

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/simplealgebra/ring"
)

// New returns an empty (all zero) matrix of the given dimension.
func New[R ring.Elem[R]](fac ring.Factory[R], dim NumDimensions) *Square[R] {
	return &Square[R]{
		fac:  fac,
		dim:  dim,
		rows: make(map[int]map[int]R),
		cols: make(map[int]map[int]R),
	}
}

// NewDiagonal returns the matrix with val on every diagonal position.
// NewDiagonal(fac.Identity(), fac, dim) is the identity matrix.
func NewDiagonal[R ring.Elem[R]](val R, fac ring.Factory[R], dim NumDimensions) *Square[R] {
	m := New(fac, dim)
	for i := 0; i < dim.Size(); i++ {
		m.set(i, i, val)
	}

	return m
}

// Dim returns the dimension descriptor.
func (m *Square[R]) Dim() NumDimensions { return m.dim }

// Size returns Dim().Size().
func (m *Square[R]) Size() int { return m.dim.Size() }

// Elems returns the factory of the entries.
func (m *Square[R]) Elems() ring.Factory[R] { return m.fac }

// Get returns the stored entry at (row, col) and whether one exists.
func (m *Square[R]) Get(row, col int) (R, bool) {
	return m.get(row, col)
}

// GetVal returns the entry at (row, col), or the ring's zero when absent.
func (m *Square[R]) GetVal(row, col int) R {
	if v, ok := m.get(row, col); ok {
		return v
	}

	return m.fac.Zero()
}

// SetVal stores v at (row, col) in both views.
func (m *Square[R]) SetVal(row, col int, v R) error {
	if err := validateIndex(m, row, col); err != nil {
		return matrixErrorf(opSetVal, err)
	}
	m.set(row, col, v)

	return nil
}

// Remove deletes the entry at (row, col); absent entries are ignored.
func (m *Square[R]) Remove(row, col int) {
	m.del(row, col)
}

// Len returns the number of stored entries.
func (m *Square[R]) Len() int {
	n := 0
	for _, r := range m.rows {
		n += len(r)
	}

	return n
}

// Range calls fn for every stored entry in row-major, column-ascending
// order until fn returns false.
func (m *Square[R]) Range(fn func(row, col int, v R) bool) {
	for _, r := range sortedKeys(m.rows) {
		row := m.rows[r]
		for _, c := range sortedKeys(row) {
			if !fn(r, c, row[c]) {
				return
			}
		}
	}
}

// String renders the stored entries, mostly for test failure messages.
func (m *Square[R]) String() string {
	s := fmt.Sprintf("Square(%d){", m.Size())
	first := true
	m.Range(func(r, c int, v R) bool {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("(%d,%d)=%v", r, c, v)
		return true
	})

	return s + "}"
}

func (m *Square[R]) get(row, col int) (R, bool) {
	r, ok := m.rows[row]
	if !ok {
		var zero R
		return zero, false
	}
	v, ok := r[col]

	return v, ok
}

func (m *Square[R]) set(row, col int, v R) {
	r := m.rows[row]
	if r == nil {
		r = make(map[int]R)
		m.rows[row] = r
	}
	r[col] = v

	c := m.cols[col]
	if c == nil {
		c = make(map[int]R)
		m.cols[col] = c
	}
	c[row] = v
}

func (m *Square[R]) del(row, col int) {
	if r, ok := m.rows[row]; ok {
		delete(r, col)
		if len(r) == 0 {
			delete(m.rows, row)
		}
	}
	if c, ok := m.cols[col]; ok {
		delete(c, row)
		if len(c) == 0 {
			delete(m.cols, col)
		}
	}
}

// clone copies the storage; entry values are shared (they are immutable).
func (m *Square[R]) clone() *Square[R] {
	out := New(m.fac, m.dim)
	for r, row := range m.rows {
		for c, v := range row {
			out.set(r, c, v)
		}
	}

	return out
}

func sortedKeys[V any](m map[int]V) []int {
	return slices.Sorted(maps.Keys(m))
}
