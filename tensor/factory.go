// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/simplealgebra/ring"

// NewFactory returns the factory of tensors over fac.
func NewFactory[I comparable, R ring.Elem[R]](fac ring.Factory[R]) *EinsteinFactory[I, R] {
	return &EinsteinFactory[I, R]{fac: fac}
}

// Identity returns the rank-zero tensor holding the identity.
func (f *EinsteinFactory[I, R]) Identity() *Einstein[I, R] {
	return NewScalar[I](f.fac.Identity(), f.fac)
}

// Zero returns the neutral tensor: no slots and no entries.
func (f *EinsteinFactory[I, R]) Zero() *Einstein[I, R] {
	return newShared[I](f.fac, nil, nil)
}

// IsMultCommutative is false: slot order of a product depends on operand order.
func (f *EinsteinFactory[I, R]) IsMultCommutative() bool { return false }

// IsNestedMultCommutative reports whether entry products commute.
func (f *EinsteinFactory[I, R]) IsNestedMultCommutative() bool {
	return f.fac.IsMultCommutative()
}

// CloneForWorker clones the entry factory, returning f when that is a no-op.
func (f *EinsteinFactory[I, R]) CloneForWorker(worker int) ring.Factory[*Einstein[I, R]] {
	c := f.fac.CloneForWorker(worker)
	if ring.Same(c, f.fac) {
		return f
	}

	return &EinsteinFactory[I, R]{fac: c}
}

// Elems returns the entry factory.
func (f *EinsteinFactory[I, R]) Elems() ring.Factory[R] { return f.fac }
