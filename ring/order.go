// SPDX-License-Identifier: MIT

package ring

// Order selects how a coefficient product is formed. Natural computes a*b,
// Reversed computes b*a. The matrix and tensor engines take an Order instead
// of duplicating every kernel for reverse-coefficient arithmetic.
type Order int

const (
	Natural Order = iota
	Reversed
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == Reversed {
		return "reversed"
	}

	return "natural"
}

// Mul multiplies a and b under order o.
func Mul[T Elem[T]](o Order, a, b T) T {
	if o == Reversed {
		return b.Mult(a)
	}

	return a.Mult(b)
}
