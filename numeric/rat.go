// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/simplealgebra/ring"
)

// Rat is an exact rational number. The zero value is 0. Rat values are
// immutable: every operation allocates a fresh big.Rat.
type Rat struct {
	v *big.Rat
}

// NewRat returns num/den. den == 0 yields ring.ErrBadCreation.
func NewRat(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, numericErrorf(opNewRat, fmt.Errorf("%d/0: %w", num, ring.ErrBadCreation))
	}

	return Rat{v: big.NewRat(num, den)}, nil
}

// RatInt returns the integer n as a Rat.
func RatInt(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// RatFromBig copies r.
func RatFromBig(r *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(r)}
}

var ratZero = new(big.Rat)

func (a Rat) val() *big.Rat {
	if a.v == nil {
		return ratZero
	}

	return a.v
}

// Big returns a copy of the underlying value.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.val()) }

// Equal reports numeric equality.
func (a Rat) Equal(b Rat) bool { return a.val().Cmp(b.val()) == 0 }

// String returns "a/b", or "a" for integers.
func (a Rat) String() string { return a.val().RatString() }

func (a Rat) Add(b Rat) Rat  { return Rat{v: new(big.Rat).Add(a.val(), b.val())} }
func (a Rat) Mult(b Rat) Rat { return Rat{v: new(big.Rat).Mul(a.val(), b.val())} }
func (a Rat) Negate() Rat    { return Rat{v: new(big.Rat).Neg(a.val())} }

// InvertLeft returns 1/a.
func (a Rat) InvertLeft() (Rat, error) { return a.invert(opInvertLeft) }

// InvertRight returns 1/a.
func (a Rat) InvertRight() (Rat, error) { return a.invert(opInvertRight) }

func (a Rat) invert(op string) (Rat, error) {
	if a.val().Sign() == 0 {
		return Rat{}, numericErrorf(op, ring.ErrNotInvertible)
	}

	return Rat{v: new(big.Rat).Inv(a.val())}, nil
}

// DivideBy returns a/n.
func (a Rat) DivideBy(n int64) (Rat, error) {
	if n == 0 {
		return Rat{}, numericErrorf(opDivideBy, ring.ErrBadCreation)
	}

	return Rat{v: new(big.Rat).Quo(a.val(), new(big.Rat).SetInt64(n))}, nil
}

// Factory returns RatFactory.
func (a Rat) Factory() ring.Factory[Rat] { return RatFactory{} }

// HandleOptionalOp supports OpAbsoluteValue.
func (a Rat) HandleOptionalOp(op ring.OptionalOp[Rat]) (Rat, error) {
	if op.Kind == ring.OpAbsoluteValue {
		return Rat{v: new(big.Rat).Abs(a.val())}, nil
	}

	return ring.Unsupported(op)
}

// Validate always succeeds: every big.Rat is a valid rational.
func (a Rat) Validate() error { return nil }

// CloneForWorker returns a.
func (a Rat) CloneForWorker(int) Rat { return a }

func (a Rat) IsExactIdentity() bool { return a.val().Cmp(ratOne) == 0 }
func (a Rat) IsExactZero() bool     { return a.val().Sign() == 0 }

var ratOne = big.NewRat(1, 1)

// RatFactory is the factory of Rat.
type RatFactory struct{}

func (RatFactory) Identity() Rat                          { return RatInt(1) }
func (RatFactory) Zero() Rat                              { return Rat{} }
func (RatFactory) IsMultCommutative() bool                { return true }
func (RatFactory) IsNestedMultCommutative() bool          { return true }
func (f RatFactory) CloneForWorker(int) ring.Factory[Rat] { return f }
