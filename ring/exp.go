// SPDX-License-Identifier: MIT

package ring

import "fmt"

// Exp approximates e^x. The argument is halved numIter times, the cubic
// Taylor polynomial 1 + x + x²/2 + x³/6 is evaluated on the result and the
// value is squared numIter times. Works for any ring whose DivideBy succeeds
// for 2 and 6, including matrices.
//
// Complexity: numIter+3 multiplications plus two divisions.
func Exp[T Elem[T]](x T, numIter int) (T, error) {
	if numIter < 0 {
		var zero T
		return zero, fmt.Errorf("Exp: numIter %d: %w", numIter, ErrBadCreation)
	}
	if numIter > 0 {
		half, err := x.DivideBy(2)
		if err != nil {
			return half, fmt.Errorf("Exp: %w", err)
		}
		e, err := Exp(half, numIter-1)
		if err != nil {
			return e, err
		}

		return e.Mult(e), nil
	}

	x2 := x.Mult(x)
	x3 := x2.Mult(x)
	h2, err := x2.DivideBy(2)
	if err != nil {
		return h2, fmt.Errorf("Exp: %w", err)
	}
	h3, err := x3.DivideBy(6)
	if err != nil {
		return h3, fmt.Errorf("Exp: %w", err)
	}

	return x.Factory().Identity().Add(x).Add(h2).Add(h3), nil
}
