// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/simplealgebra/ring"

// NewFactory returns the factory of dim×dim matrices over fac.
func NewFactory[R ring.Elem[R]](fac ring.Factory[R], dim NumDimensions) *SquareFactory[R] {
	return &SquareFactory[R]{fac: fac, dim: dim}
}

// Identity returns the identity matrix.
func (f *SquareFactory[R]) Identity() *Square[R] {
	return NewDiagonal(f.fac.Identity(), f.fac, f.dim)
}

// Zero returns the empty matrix.
func (f *SquareFactory[R]) Zero() *Square[R] {
	return New(f.fac, f.dim)
}

// IsMultCommutative is false: matrix products do not commute in general.
func (f *SquareFactory[R]) IsMultCommutative() bool { return false }

// IsNestedMultCommutative reports whether the entries' products commute.
func (f *SquareFactory[R]) IsNestedMultCommutative() bool {
	return f.fac.IsMultCommutative()
}

// CloneForWorker clones the entry factory, returning f when that is a no-op.
func (f *SquareFactory[R]) CloneForWorker(worker int) ring.Factory[*Square[R]] {
	c := f.fac.CloneForWorker(worker)
	if ring.Same(c, f.fac) {
		return f
	}

	return &SquareFactory[R]{fac: c, dim: f.dim}
}

// Elems returns the entry factory.
func (f *SquareFactory[R]) Elems() ring.Factory[R] { return f.fac }

// Dim returns the dimension descriptor.
func (f *SquareFactory[R]) Dim() NumDimensions { return f.dim }
