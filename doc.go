// SPDX-License-Identifier: MIT

// Package simplealgebra is a small generic algebra toolkit: sparse square
// matrices and Einstein-notation tensors over any element type that
// satisfies a ring contract, including matrices of matrices.
//
// What is inside?
//
//   - ring/     the element contract (add, multiply, negate, one-sided
//     inverses), element factories, optional operations, mutators, and
//     the matrix exponential by scaling and squaring
//   - matrix/   sparse square matrices: sum, product, transpose,
//     Gauss-Jordan left/right inverses, cofactor determinant, and
//     vector/tensor/multivector conversions
//   - tensor/   sparse tensors with named upper and lower slots: sum,
//     contraction by repeated names, index reduction, trace, scalar and
//     matrix-backed inverses
//   - numeric/  ready-made elements (Float, exact Rat) and a gonum bridge
//   - parallel/ per-worker cloning fan-out for batch evaluation
//
// Entries equal to zero are not required to be stored; every read of an
// absent entry yields the element factory's zero. Noncommutative
// elements are first class: each product and inverse states which side
// the coefficient multiplies from.
//
// Quick example:
//
//	      [ 2 0 ]⁻¹   [ 1/2  0  ]
//	      [ 0 4 ]   = [  0  1/4 ]
//
//	m := matrix.New[numeric.Float](numeric.FloatFactory{}, matrix.Dim(2))
//	_ = m.SetVal(0, 0, 2)
//	_ = m.SetVal(1, 1, 4)
//	inv, err := m.InvertLeft()
//
// The simplealgebra command under cmd/ evaluates YAML documents from the
// shell.
//
//	go install github.com/katalvlaran/simplealgebra/cmd/simplealgebra@latest
package simplealgebra
