// SPDX-License-Identifier: MIT

// Package ring defines the algebraic contract shared by every value the
// simplealgebra engines compute with.
//
// Purpose:
//   - Elem[T] is a ring element: Add, Mult and Negate are total, the two
//     one-sided inverses may fail with ErrNotInvertible, and DivideBy divides
//     by a non-zero integer.
//   - Factory[T] produces the identities of a ring and answers whether its
//     multiplication (and the multiplication of the values nested inside it)
//     commutes.
//   - OptionalOp[T] is a closed tagged variant for operations only some rings
//     support (transpose, reverse-coefficient products, traces, ...).
//   - Mutator[T] is a fallible elementwise transform.
//
// Multiplication is never assumed to be commutative. Containers such as
// matrices and tensors are themselves Elem values, so matrices of matrices and
// tensors of matrices compose without extra glue.
//
// Concurrency:
//   - Nothing in this package is synchronised. Values are used by one
//     goroutine at a time; CloneForWorker hands each worker its own copy of
//     anything that carries mutable state. Stateless values return themselves.
package ring
