// SPDX-License-Identifier: MIT
// Package tensor: sentinel errors and op tags.

package tensor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplealgebra/ring"
)

var (
	// ErrKeyLength reports a key whose length differs from the tensor rank.
	ErrKeyLength = fmt.Errorf("tensor: key length differs from rank: %w", ring.ErrStructuralMismatch)

	// ErrRankMismatch reports an operation applied to a tensor of the wrong rank.
	ErrRankMismatch = fmt.Errorf("tensor: unexpected rank: %w", ring.ErrStructuralMismatch)

	// ErrNegativeIndex reports a negative basis index.
	ErrNegativeIndex = errors.New("tensor: negative basis index")

	// ErrNilTensor reports a nil *Einstein argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

const (
	opAdd                   = "Add"
	opMult                  = "Mult"
	opSetVal                = "SetVal"
	opDivideBy              = "DivideBy"
	opMutate                = "Mutate"
	opInvertLeft            = "InvertLeft"
	opInvertRight           = "InvertRight"
	opRankTwoTrace          = "RankTwoTrace"
	opRegenCovar            = "RegenCovar"
	opRegenContravar        = "RegenContravar"
	opValidate              = "Validate"
	opMatrixInverseLeft     = "MatrixInverseLeft"
	opMatrixInverseRight    = "MatrixInverseRight"
	opRankOneToMultivector  = "RankOneToMultivector"
	opRankOneToRowVector    = "RankOneToRowVector"
	opRankOneToColumnVector = "RankOneToColumnVector"
	opRankTwoToSquareMatrix = "RankTwoToSquareMatrix"
)

func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// panicStructural aborts Add/Mult/Regen* whose operands cannot be combined.
func panicStructural(op, format string, args ...any) {
	panic(tensorErrorf(op, fmt.Errorf(format+": %w", append(args, ring.ErrStructuralMismatch)...)))
}
