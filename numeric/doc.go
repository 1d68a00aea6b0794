// SPDX-License-Identifier: MIT

// Package numeric provides concrete scalar rings for the simplealgebra
// engines:
//
//   - Float, a float64 ring that refuses NaN and ±Inf;
//   - Rat, an exact rational ring backed by math/big;
//   - a bridge between Square[Float] and gonum's *mat.Dense.
//
// Both rings are commutative, stateless and immutable, so CloneForWorker
// returns the receiver.
package numeric
