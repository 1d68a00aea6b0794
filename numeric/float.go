// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simplealgebra/ring"
)

// Float is the ring of finite float64 values.
type Float float64

// NewFloat wraps v, rejecting NaN and ±Inf with ring.ErrBadCreation.
func NewFloat(v float64) (Float, error) {
	if !isFinite(v) {
		return 0, numericErrorf(opNewFloat, fmt.Errorf("%v: %w", v, ring.ErrBadCreation))
	}

	return Float(v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float64 returns the underlying value.
func (a Float) Float64() float64 { return float64(a) }

func (a Float) Add(b Float) Float  { return a + b }
func (a Float) Mult(b Float) Float { return a * b }
func (a Float) Negate() Float      { return -a }

// InvertLeft returns 1/a. Multiplication commutes, so both sides agree.
func (a Float) InvertLeft() (Float, error) { return a.invert(opInvertLeft) }

// InvertRight returns 1/a.
func (a Float) InvertRight() (Float, error) { return a.invert(opInvertRight) }

func (a Float) invert(op string) (Float, error) {
	inv := 1 / float64(a)
	if !isFinite(inv) {
		return 0, numericErrorf(op, fmt.Errorf("%v: %w", float64(a), ring.ErrNotInvertible))
	}

	return Float(inv), nil
}

// DivideBy returns a/n.
func (a Float) DivideBy(n int64) (Float, error) {
	if n == 0 {
		return 0, numericErrorf(opDivideBy, ring.ErrBadCreation)
	}

	return a / Float(n), nil
}

// Factory returns FloatFactory.
func (a Float) Factory() ring.Factory[Float] { return FloatFactory{} }

// HandleOptionalOp supports OpAbsoluteValue and OpSqrt.
func (a Float) HandleOptionalOp(op ring.OptionalOp[Float]) (Float, error) {
	switch op.Kind {
	case ring.OpAbsoluteValue:
		return Float(math.Abs(float64(a))), nil
	case ring.OpSqrt:
		r := math.Sqrt(float64(a))
		if !isFinite(r) {
			return 0, numericErrorf(opSqrt, fmt.Errorf("%v: %w", float64(a), ring.ErrNotInvertible))
		}
		return Float(r), nil
	default:
		return ring.Unsupported(op)
	}
}

// Validate rejects NaN and ±Inf.
func (a Float) Validate() error {
	if !isFinite(float64(a)) {
		return numericErrorf(opValidate, fmt.Errorf("%v: %w", float64(a), ring.ErrBadCreation))
	}

	return nil
}

// CloneForWorker returns a.
func (a Float) CloneForWorker(int) Float { return a }

// IsExactIdentity reports a == 1.
func (a Float) IsExactIdentity() bool { return a == 1 }

// IsExactZero reports a == 0.
func (a Float) IsExactZero() bool { return a == 0 }

// FloatFactory is the factory of Float.
type FloatFactory struct{}

func (FloatFactory) Identity() Float                          { return 1 }
func (FloatFactory) Zero() Float                              { return 0 }
func (FloatFactory) IsMultCommutative() bool                  { return true }
func (FloatFactory) IsNestedMultCommutative() bool            { return true }
func (f FloatFactory) CloneForWorker(int) ring.Factory[Float] { return f }
