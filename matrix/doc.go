// SPDX-License-Identifier: MIT

// Package matrix implements sparse square matrices over an arbitrary ring.
//
// A Square[R] is itself a ring element (ring.Elem[*Square[R]]), so matrices
// nest: Square[*Square[numeric.Float]] is a block matrix whose inversion
// never assumes the blocks commute.
//
// Storage:
//   - Two mirrored maps, row → col → value and col → row → value, updated in
//     lockstep. An absent entry is the ring's zero; nothing enumerates the
//     logical Dim×Dim grid, so very large sparse dimensions are cheap.
//
// Algorithms:
//   - Add, Mult (natural and reverse coefficient order), Negate, DivideBy,
//     Mutate, Transpose.
//   - Generalised Gauss–Jordan inversion with pivot exchange. Left inverses
//     use row operations, right inverses column operations; each exists in
//     natural and reverse coefficient order, all four sharing one kernel.
//   - Determinant by Laplace expansion along row 0 (commutative rings only).
//   - Conversions into rank-one/rank-two tensors and multivectors through
//     the IndexedSink and MultivectorSink interfaces.
//
// Determinism:
//   - Every accumulating loop over sparse storage walks sorted keys, so
//     floating point results do not depend on map iteration order.
//
// Errors:
//   - Recoverable conditions are returned (ring.ErrNotInvertible,
//     ErrOutOfRange, ...). Operand dimensions that disagree inside Add/Mult
//     are programmer errors and panic with an error wrapping
//     ring.ErrStructuralMismatch.
package matrix
