// SPDX-License-Identifier: MIT
// Package ring: sentinel error set shared by every ring implementation.
// Implementations wrap these with an op tag (fmt.Errorf("op: %w", ErrX)) and
// callers match them with errors.Is.

package ring

import "errors"

var (
	// ErrNotInvertible is returned by InvertLeft/InvertRight when the element
	// has no inverse on the requested side. Elimination treats it as
	// "try another pivot", so it must stay a plain returned error.
	ErrNotInvertible = errors.New("ring: element is not invertible")

	// ErrBadCreation indicates that constructing a value would produce
	// something outside the ring (NaN, ±Inf, division by zero).
	ErrBadCreation = errors.New("ring: invalid value created")

	// ErrUnsupportedOp is the default outcome of HandleOptionalOp.
	ErrUnsupportedOp = errors.New("ring: operation not supported")

	// ErrStructuralMismatch reports operands (or an internal representation)
	// whose shapes disagree. Validate returns it; contract methods without an
	// error result panic with an error wrapping it.
	ErrStructuralMismatch = errors.New("ring: structural mismatch")
)
