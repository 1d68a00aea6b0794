// SPDX-License-Identifier: MIT

package ring

// Elem is the contract every ring element satisfies. T is the concrete
// element type itself, so implementations read as
//
//	type Float float64
//	func (a Float) Add(b Float) Float { ... }
//
// and containers are parameterised as Square[R Elem[R]].
type Elem[T any] interface {
	// Add returns the receiver plus b. Total.
	Add(b T) T
	// Mult returns the receiver times b, in that order. Total.
	Mult(b T) T
	// Negate returns the additive inverse. Total.
	Negate() T
	// InvertLeft returns x with x*receiver = 1, or ErrNotInvertible.
	InvertLeft() (T, error)
	// InvertRight returns x with receiver*x = 1, or ErrNotInvertible.
	InvertRight() (T, error)
	// DivideBy divides by a non-zero integer. n == 0 yields ErrBadCreation.
	DivideBy(n int64) (T, error)
	// Factory returns the factory of the receiver's ring.
	Factory() Factory[T]
	// HandleOptionalOp executes op or returns ErrUnsupportedOp.
	HandleOptionalOp(op OptionalOp[T]) (T, error)
	// Validate performs a deep structural self-check. Test and debug use only.
	Validate() error
	// CloneForWorker returns a copy safe for exclusive use by worker.
	// Stateless values return themselves.
	CloneForWorker(worker int) T
}

// Factory produces the distinguished elements of a ring and describes it.
type Factory[T any] interface {
	// Identity returns the multiplicative identity.
	Identity() T
	// Zero returns the additive identity.
	Zero() T
	// IsMultCommutative reports whether a*b == b*a for all elements.
	IsMultCommutative() bool
	// IsNestedMultCommutative reports whether the multiplication of values
	// nested inside elements of this ring commutes. Scalars report the same
	// answer as IsMultCommutative.
	IsNestedMultCommutative() bool
	// CloneForWorker mirrors Elem.CloneForWorker for factories.
	CloneForWorker(worker int) Factory[T]
}

// WorkerCloner is the clone-for-worker capability on its own. Elements,
// factories, mutators and index allocators all satisfy it.
type WorkerCloner[T any] interface {
	CloneForWorker(worker int) T
}

// Sub returns a - b.
func Sub[T Elem[T]](a, b T) T {
	return a.Add(b.Negate())
}
