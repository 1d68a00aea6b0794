// SPDX-License-Identifier: MIT

package ring

import "fmt"

// OpKind enumerates the optional operations a ring may implement.
type OpKind int

const (
	// OpTranspose transposes a matrix.
	OpTranspose OpKind = iota + 1
	// OpMultRevCoeff multiplies matrices with every coefficient product
	// taken in reverse order (right*left). Takes one argument.
	OpMultRevCoeff
	// OpInvertLeftRevCoeff is the left inverse under reverse-coefficient products.
	OpInvertLeftRevCoeff
	// OpInvertRightRevCoeff is the right inverse under reverse-coefficient products.
	OpInvertRightRevCoeff
	// OpRankTwoTrace sums the diagonal of a rank-two tensor.
	OpRankTwoTrace
	// OpAbsoluteValue returns |x| for ordered scalar rings.
	OpAbsoluteValue
	// OpSqrt returns the principal square root for scalar rings.
	OpSqrt
)

var opKindNames = map[OpKind]string{
	OpTranspose:           "TRANSPOSE",
	OpMultRevCoeff:        "MULT_REV_COEFF",
	OpInvertLeftRevCoeff:  "INVERT_LEFT_REV_COEFF",
	OpInvertRightRevCoeff: "INVERT_RIGHT_REV_COEFF",
	OpRankTwoTrace:        "RANK_TWO_TRACE",
	OpAbsoluteValue:       "ABSOLUTE_VALUE",
	OpSqrt:                "SQRT",
}

// String returns the canonical upper-case name of k.
func (k OpKind) String() string {
	if s, ok := opKindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("OpKind(%d)", int(k))
}

// OptionalOp is a request for an optional operation with its arguments.
// The receiver of HandleOptionalOp is the implicit first operand.
type OptionalOp[T any] struct {
	Kind OpKind
	Args []T
}

// Op builds an OptionalOp.
func Op[T any](kind OpKind, args ...T) OptionalOp[T] {
	return OptionalOp[T]{Kind: kind, Args: args}
}

// Arg returns the i-th argument of op, or ErrStructuralMismatch when the
// request carries fewer arguments.
func (op OptionalOp[T]) Arg(i int) (T, error) {
	if i < 0 || i >= len(op.Args) {
		var zero T
		return zero, fmt.Errorf("%s: argument %d of %d: %w", op.Kind, i, len(op.Args), ErrStructuralMismatch)
	}

	return op.Args[i], nil
}

// Unsupported is the default HandleOptionalOp behaviour: it always fails
// with ErrUnsupportedOp. Implementations call it from their default branch.
func Unsupported[T any](op OptionalOp[T]) (T, error) {
	var zero T
	return zero, fmt.Errorf("%s: %w", op.Kind, ErrUnsupportedOp)
}
