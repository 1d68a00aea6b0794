// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/simplealgebra/matrix"
	"github.com/katalvlaran/simplealgebra/ring"
)

// ToDense copies m into a dense gonum matrix. Absent entries become 0.
func ToDense(m *matrix.Square[Float]) (*mat.Dense, error) {
	if m == nil {
		return nil, numericErrorf(opToDense, matrix.ErrNilMatrix)
	}
	n := m.Size()
	if n < 1 {
		return nil, numericErrorf(opToDense, fmt.Errorf("size %d: %w", n, ring.ErrStructuralMismatch))
	}

	d := mat.NewDense(n, n, nil)
	m.Range(func(row, col int, v Float) bool {
		d.Set(row, col, float64(v))
		return true
	})

	return d, nil
}

// FromDense copies a square gonum matrix into a sparse Square[Float].
// Exact zeros are not stored.
func FromDense(a mat.Matrix) (*matrix.Square[Float], error) {
	r, c := a.Dims()
	if r != c || r < 1 {
		return nil, numericErrorf(opFromDense, fmt.Errorf("%dx%d: %w", r, c, ring.ErrStructuralMismatch))
	}

	out := matrix.New[Float](FloatFactory{}, matrix.Dim(r))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			f, err := NewFloat(v)
			if err != nil {
				return nil, numericErrorf(opFromDense, err)
			}
			if err = out.SetVal(i, j, f); err != nil {
				return nil, numericErrorf(opFromDense, err)
			}
		}
	}

	return out, nil
}
