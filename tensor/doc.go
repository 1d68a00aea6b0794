// SPDX-License-Identifier: MIT

// Package tensor implements sparse tensors under the Einstein summation
// convention.
//
// An Einstein[I, R] maps basis-index tuples to values of the ring R and
// carries two ordered lists of slot names of the comparable type I: the
// contravariant (upper) and covariant (lower) slots. A stored key lists the
// contravariant basis values first, then the covariant ones.
//
// Multiplication contracts every slot name that appears with opposite
// variance in the two operands; a name appearing with the same variance in
// both is kept once and both operands must agree on it. Addition matches
// slots by name, so a_ij + b_ji lines up the basis values correctly.
//
// Tensors are ring elements themselves and are immutable through their
// arithmetic API. SetVal and Remove exist for building values.
package tensor
