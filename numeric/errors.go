// SPDX-License-Identifier: MIT

package numeric

import "fmt"

// op tags used in wrapped errors.
const (
	opNewFloat    = "NewFloat"
	opNewRat      = "NewRat"
	opInvertLeft  = "InvertLeft"
	opInvertRight = "InvertRight"
	opDivideBy    = "DivideBy"
	opValidate    = "Validate"
	opSqrt        = "Sqrt"
	opToDense     = "ToDense"
	opFromDense   = "FromDense"
)

// numericErrorf prefixes err with the op tag, keeping errors.Is working.
func numericErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
