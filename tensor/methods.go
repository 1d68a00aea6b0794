// SPDX-License-Identifier: MIT
// Package tensor: ring-element methods other than Mult and the inverses.

package tensor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/simplealgebra/ring"
)

// Add returns t + b.
//
// The neutral tensor (rank zero, no entries) is absorbed: the other operand
// is returned as is. Otherwise both operands must have the same number of
// contravariant and covariant slots. When the names agree but their order
// differs, b's keys are permuted by name before merging.
//
// Panics with ring.ErrStructuralMismatch on slot-count or name mismatch.
func (t *Einstein[I, R]) Add(b *Einstein[I, R]) *Einstein[I, R] {
	if b == nil {
		panic(tensorErrorf(opAdd, ErrNilTensor))
	}
	if t.isNeutral() {
		return b
	}
	if b.isNeutral() {
		return t
	}
	if len(t.contra) != len(b.contra) || len(t.cov) != len(b.cov) {
		panicStructural(opAdd, "slots %v/%v vs %v/%v", t.contra, t.cov, b.contra, b.cov)
	}

	src := b.sorted()
	if !slices.Equal(t.contra, b.contra) || !slices.Equal(t.cov, b.cov) {
		perm := t.additionRemap(b)
		for i, e := range src {
			src[i] = entry[R]{key: pick(e.key, perm), val: e.val}
		}
	}

	out := t.clone()
	for _, e := range src {
		out.accumulate(e.key, e.val)
	}

	return out
}

// additionRemap returns perm with perm[i] = position in b's keys of the
// slot named like t's i-th slot (same variance).
func (t *Einstein[I, R]) additionRemap(b *Einstein[I, R]) []int {
	perm := make([]int, 0, t.Rank())
	for _, name := range t.contra {
		j := slices.Index(b.contra, name)
		if j < 0 {
			panicStructural(opAdd, "contravariant %v missing from %v", name, b.contra)
		}
		perm = append(perm, j)
	}
	for _, name := range t.cov {
		j := slices.Index(b.cov, name)
		if j < 0 {
			panicStructural(opAdd, "covariant %v missing from %v", name, b.cov)
		}
		perm = append(perm, len(b.contra)+j)
	}

	return perm
}

// clone copies the entry map; slot lists and values are shared.
func (t *Einstein[I, R]) clone() *Einstein[I, R] {
	out := t.derive()
	for k, e := range t.entries {
		out.entries[k] = e
	}

	return out
}

// Negate returns -t.
func (t *Einstein[I, R]) Negate() *Einstein[I, R] {
	out, _ := t.ewMap(func(v R) (R, error) { return v.Negate(), nil })
	return out
}

// DivideBy divides every entry by n.
func (t *Einstein[I, R]) DivideBy(n int64) (*Einstein[I, R], error) {
	out, err := t.ewMap(func(v R) (R, error) { return v.DivideBy(n) })
	if err != nil {
		return nil, tensorErrorf(opDivideBy, err)
	}

	return out, nil
}

// Mutate applies mut to every stored entry.
func (t *Einstein[I, R]) Mutate(mut ring.Mutator[R]) (*Einstein[I, R], error) {
	out, err := t.ewMap(mut.Mutate)
	if err != nil {
		return nil, tensorErrorf(opMutate, err)
	}

	return out, nil
}

func (t *Einstein[I, R]) ewMap(f func(R) (R, error)) (*Einstein[I, R], error) {
	out := t.derive()
	for _, e := range t.sorted() {
		v, err := f(e.val)
		if err != nil {
			return nil, err
		}
		out.put(e.key, v)
	}

	return out, nil
}

// RegenCovar returns the same entries under new covariant slot names.
// Panics with ring.ErrStructuralMismatch when the slot count changes.
func (t *Einstein[I, R]) RegenCovar(cov []I) *Einstein[I, R] {
	if len(cov) != len(t.cov) {
		panicStructural(opRegenCovar, "%d names for %d slots", len(cov), len(t.cov))
	}
	out := newShared(t.fac, t.contra, slices.Clone(cov))
	for k, e := range t.entries {
		out.entries[k] = e
	}

	return out
}

// RegenContravar returns the same entries under new contravariant slot names.
func (t *Einstein[I, R]) RegenContravar(contra []I) *Einstein[I, R] {
	if len(contra) != len(t.contra) {
		panicStructural(opRegenContravar, "%d names for %d slots", len(contra), len(t.contra))
	}
	out := newShared(t.fac, slices.Clone(contra), t.cov)
	for k, e := range t.entries {
		out.entries[k] = e
	}

	return out
}

// Factory returns the tensor factory over t's entry ring.
func (t *Einstein[I, R]) Factory() ring.Factory[*Einstein[I, R]] {
	return NewFactory[I](t.fac)
}

// HandleOptionalOp supports ring.OpRankTwoTrace.
func (t *Einstein[I, R]) HandleOptionalOp(op ring.OptionalOp[*Einstein[I, R]]) (*Einstein[I, R], error) {
	if op.Kind == ring.OpRankTwoTrace {
		return t.RankTwoTrace()
	}

	return ring.Unsupported(op)
}

// Validate checks key lengths, slot names and every entry.
func (t *Einstein[I, R]) Validate() error {
	var zero I
	for _, names := range [][]I{t.contra, t.cov} {
		for _, name := range names {
			if name == zero {
				return tensorErrorf(opValidate, fmt.Errorf("zero-valued slot name in %v/%v: %w", t.contra, t.cov, ring.ErrStructuralMismatch))
			}
		}
	}

	rank := t.Rank()
	for k, e := range t.entries {
		if len(e.key) != rank {
			return tensorErrorf(opValidate, fmt.Errorf("key %v: %w", e.key, ErrKeyLength))
		}
		if encodeKey(e.key) != k {
			return tensorErrorf(opValidate, fmt.Errorf("key %v filed as %q: %w", e.key, k, ring.ErrStructuralMismatch))
		}
		if err := e.val.Validate(); err != nil {
			return tensorErrorf(opValidate, fmt.Errorf("key %v: %w", e.key, err))
		}
	}

	return nil
}

// CloneForWorker clones the factory and every entry. When nothing carries
// per-worker state the receiver itself is returned. Slot lists are shared.
func (t *Einstein[I, R]) CloneForWorker(worker int) *Einstein[I, R] {
	fac := t.fac.CloneForWorker(worker)
	changed := !ring.Same(fac, t.fac)

	cloned := make(map[string]entry[R], len(t.entries))
	for k, e := range t.entries {
		v := e.val.CloneForWorker(worker)
		if !ring.Same(v, e.val) {
			changed = true
		}
		cloned[k] = entry[R]{key: e.key, val: v}
	}
	if !changed {
		return t
	}

	out := newShared(fac, t.contra, t.cov)
	out.entries = cloned

	return out
}

// IsExactZero reports whether every stored entry is an exact zero.
func (t *Einstein[I, R]) IsExactZero() bool {
	for _, e := range t.entries {
		if !ring.IsExactZero(e.val) {
			return false
		}
	}

	return true
}

// IsExactIdentity reports a rank-zero tensor holding an exact identity.
func (t *Einstein[I, R]) IsExactIdentity() bool {
	if t.Rank() != 0 || len(t.entries) != 1 {
		return false
	}
	for _, e := range t.entries {
		return ring.IsExactIdentity(e.val)
	}

	return false
}
