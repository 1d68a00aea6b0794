// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single home for index, shape and mirror-consistency checks.
//  - Return plain sentinels; callers wrap them with their op tag.
//
// Note:
//  - validateIndex and requireSameDim are on kernel entry paths and allocate
//    nothing on success. Validate walks all storage and is for tests/debug.

package matrix

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/simplealgebra/ring"
)

// validateIndex checks 0 <= row, col < Size().
func validateIndex[R ring.Elem[R]](m *Square[R], row, col int) error {
	n := m.Size()
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, n, n, ErrOutOfRange)
	}

	return nil
}

// validateLine checks a single row or column index.
func validateLine[R ring.Elem[R]](m *Square[R], i int) error {
	if n := m.Size(); i < 0 || i >= n {
		return fmt.Errorf("line %d of %d: %w", i, n, ErrOutOfRange)
	}

	return nil
}

// requireSameDim panics unless a and b have the same size. A nil operand is
// reported the same way.
func requireSameDim[R ring.Elem[R]](op string, a, b *Square[R]) {
	if b == nil {
		panic(matrixErrorf(op, ErrNilMatrix))
	}
	if a.Size() != b.Size() {
		panicStructural(op, "%d vs %d", a.Size(), b.Size())
	}
}

// Validate checks the storage invariants: every entry lies inside the
// dimension, is present in both views with the same value, and validates
// itself. Empty inner maps are reported as well.
//
// Complexity: O(nnz) plus the cost of the entries' own Validate.
func (m *Square[R]) Validate() error {
	if m.dim == nil || m.Size() < 0 {
		return matrixErrorf(opValidate, fmt.Errorf("dimension: %w", ring.ErrStructuralMismatch))
	}

	count := 0
	for r, row := range m.rows {
		if len(row) == 0 {
			return matrixErrorf(opValidate, fmt.Errorf("empty row %d: %w", r, ring.ErrStructuralMismatch))
		}
		for c, v := range row {
			if err := validateIndex(m, r, c); err != nil {
				return matrixErrorf(opValidate, err)
			}
			mv, ok := m.cols[c][r]
			if !ok || !sameEntry(v, mv) {
				return matrixErrorf(opValidate, fmt.Errorf("(%d,%d) not mirrored: %w", r, c, ring.ErrStructuralMismatch))
			}
			if err := v.Validate(); err != nil {
				return matrixErrorf(opValidate, fmt.Errorf("(%d,%d): %w", r, c, err))
			}
			count++
		}
	}

	mirrored := 0
	for c, col := range m.cols {
		if len(col) == 0 {
			return matrixErrorf(opValidate, fmt.Errorf("empty column %d: %w", c, ring.ErrStructuralMismatch))
		}
		mirrored += len(col)
	}
	if mirrored != count {
		return matrixErrorf(opValidate, fmt.Errorf("%d row entries, %d column entries: %w", count, mirrored, ring.ErrStructuralMismatch))
	}

	return nil
}

// sameEntry compares the two stored copies of an entry. Types that cannot
// be compared with == are accepted as long as both views hold a value.
func sameEntry[R any](a, b R) bool {
	t := reflect.TypeOf(any(a))
	if t == nil || !t.Comparable() {
		return true
	}

	return ring.Same(a, b)
}
