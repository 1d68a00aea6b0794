// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/simplealgebra/ring"

// Einstein is a sparse tensor over R with slot names of type I.
//
// Every key stored in entries has length len(contra)+len(cov). The slot
// lists are copied on construction and never modified afterwards, so
// derived tensors may share them.
type Einstein[I comparable, R ring.Elem[R]] struct {
	fac     ring.Factory[R]
	contra  []I
	cov     []I
	entries map[string]entry[R]
}

// entry keeps the decoded key next to the value so kernels never parse
// map keys back.
type entry[R any] struct {
	key []int
	val R
}

// EinsteinFactory is the ring factory of Einstein[I, R].
type EinsteinFactory[I comparable, R ring.Elem[R]] struct {
	fac ring.Factory[R]
}
