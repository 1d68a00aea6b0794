// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and op tags.
// Sentinels are prefixed "matrix: ..."; algorithms wrap them (and the ring
// sentinels) with the op tag via matrixErrorf so errors.Is keeps matching.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplealgebra/ring"
)

var (
	// ErrOutOfRange indicates that a row or column lies outside [0, Dim).
	// Public indexers (SetVal, conversions) return it, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Square was passed as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Op tags (single source of truth for error labels).
const (
	opAdd                 = "Add"
	opMult                = "Mult"
	opMultRevCoeff        = "MultRevCoeff"
	opDivideBy            = "DivideBy"
	opMutate              = "Mutate"
	opSetVal              = "SetVal"
	opInvertLeft          = "InvertLeft"
	opInvertRight         = "InvertRight"
	opInvertLeftRevCoeff  = "InvertLeftRevCoeff"
	opInvertRightRevCoeff = "InvertRightRevCoeff"
	opValidate            = "Validate"
	opColumnToTensor      = "ColumnVectorToRankOneTensor"
	opRowToTensor         = "RowVectorToRankOneTensor"
	opToRankTwoTensor     = "ToRankTwoTensor"
	opColumnToMultivector = "ColumnVectorToMultivector"
	opRowToMultivector    = "RowVectorToMultivector"
	opHandleOptionalOp    = "HandleOptionalOp"
)

// matrixErrorf wraps err with an operation tag, e.g. "InvertLeft: ...".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// panicStructural aborts an operation whose operands cannot be combined.
// Only contract methods without an error result use it.
func panicStructural(op, format string, args ...any) {
	panic(matrixErrorf(op, fmt.Errorf(format+": %w", append(args, ring.ErrStructuralMismatch)...)))
}
