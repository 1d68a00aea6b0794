// SPDX-License-Identifier: MIT

package ring

import "fmt"

// Mutator is a fallible elementwise transform. Matrices and tensors apply
// it to every stored entry without changing where entries are stored.
type Mutator[T any] interface {
	Mutate(in T) (T, error)
	CloneForWorker(worker int) Mutator[T]
}

// MutatorFunc adapts a plain function. It holds no state, so every worker
// shares it.
type MutatorFunc[T any] func(in T) (T, error)

// Mutate calls f(in).
func (f MutatorFunc[T]) Mutate(in T) (T, error) { return f(in) }

// CloneForWorker returns f.
func (f MutatorFunc[T]) CloneForWorker(int) Mutator[T] { return f }

// MultLeftMutator left-multiplies every input by a fixed element.
type MultLeftMutator[T Elem[T]] struct {
	elem T
	name string
}

// NewMultLeftMutator returns a mutator computing elem*in. name is only used
// for String.
func NewMultLeftMutator[T Elem[T]](elem T, name string) *MultLeftMutator[T] {
	return &MultLeftMutator[T]{elem: elem, name: name}
}

// Mutate returns elem*in.
func (m *MultLeftMutator[T]) Mutate(in T) (T, error) {
	return m.elem.Mult(in), nil
}

// Elem returns the fixed left factor.
func (m *MultLeftMutator[T]) Elem() T { return m.elem }

// CloneForWorker clones the left factor. When the factor is stateless the
// receiver itself is returned.
func (m *MultLeftMutator[T]) CloneForWorker(worker int) Mutator[T] {
	c := m.elem.CloneForWorker(worker)
	if Same(c, m.elem) {
		return m
	}

	return &MultLeftMutator[T]{elem: c, name: m.name}
}

// String implements fmt.Stringer.
func (m *MultLeftMutator[T]) String() string {
	return fmt.Sprintf("multLeft[%s]", m.name)
}
