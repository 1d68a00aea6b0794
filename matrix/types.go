// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/simplealgebra/ring"

// NumDimensions describes the logical size of a square matrix. It may be
// backed by anything able to report an integer size, including values
// computed lazily by the caller.
type NumDimensions interface {
	Size() int
}

// Dim is the plain integer NumDimensions.
type Dim int

// Size returns int(d).
func (d Dim) Size() int { return int(d) }

// Square is a sparse Dim×Dim matrix over the ring R.
//
// rows[r][c] and cols[c][r] hold the same value for every stored entry.
// Empty inner maps are pruned so len(rows) counts non-empty rows.
type Square[R ring.Elem[R]] struct {
	fac  ring.Factory[R]
	dim  NumDimensions
	rows map[int]map[int]R
	cols map[int]map[int]R
}

// SquareFactory is the ring factory of Square[R] for a fixed dimension.
type SquareFactory[R ring.Elem[R]] struct {
	fac ring.Factory[R]
	dim NumDimensions
}
