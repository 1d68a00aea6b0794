// SPDX-License-Identifier: MIT
// Package tensor: construction, accessors and key encoding.

package tensor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplealgebra/ring"
)

// New returns an empty tensor with the given slot names. The slices are
// copied.
func New[I comparable, R ring.Elem[R]](fac ring.Factory[R], contra, cov []I) *Einstein[I, R] {
	return newShared(fac, slices.Clone(contra), slices.Clone(cov))
}

// newShared builds a tensor that takes ownership of the slot slices.
func newShared[I comparable, R ring.Elem[R]](fac ring.Factory[R], contra, cov []I) *Einstein[I, R] {
	return &Einstein[I, R]{
		fac:     fac,
		contra:  contra,
		cov:     cov,
		entries: make(map[string]entry[R]),
	}
}

// NewScalar returns the rank-zero tensor holding val.
func NewScalar[I comparable, R ring.Elem[R]](val R, fac ring.Factory[R]) *Einstein[I, R] {
	t := newShared[I](fac, nil, nil)
	t.put(nil, val)

	return t
}

// Rank returns the number of slots.
func (t *Einstein[I, R]) Rank() int { return len(t.contra) + len(t.cov) }

// Contravariant returns a copy of the contravariant slot names.
func (t *Einstein[I, R]) Contravariant() []I { return slices.Clone(t.contra) }

// Covariant returns a copy of the covariant slot names.
func (t *Einstein[I, R]) Covariant() []I { return slices.Clone(t.cov) }

// Elems returns the factory of the entries.
func (t *Einstein[I, R]) Elems() ring.Factory[R] { return t.fac }

// Len returns the number of stored entries.
func (t *Einstein[I, R]) Len() int { return len(t.entries) }

// Get returns the entry stored at key and whether it exists.
func (t *Einstein[I, R]) Get(key []int) (R, bool) {
	e, ok := t.entries[encodeKey(key)]
	return e.val, ok
}

// GetVal returns the entry at key, or zero when absent.
func (t *Einstein[I, R]) GetVal(key []int) R {
	if v, ok := t.Get(key); ok {
		return v
	}

	return t.fac.Zero()
}

// SetVal stores v at key. The key must have exactly Rank() non-negative
// components; it is copied.
func (t *Einstein[I, R]) SetVal(key []int, v R) error {
	if len(key) != t.Rank() {
		return tensorErrorf(opSetVal, fmt.Errorf("len %d, rank %d: %w", len(key), t.Rank(), ErrKeyLength))
	}
	for _, k := range key {
		if k < 0 {
			return tensorErrorf(opSetVal, fmt.Errorf("%v: %w", key, ErrNegativeIndex))
		}
	}
	t.put(slices.Clone(key), v)

	return nil
}

// Remove deletes the entry at key.
func (t *Einstein[I, R]) Remove(key []int) {
	delete(t.entries, encodeKey(key))
}

// Range calls fn for every entry in lexicographic key order until fn
// returns false. fn must not retain or modify key.
func (t *Einstein[I, R]) Range(fn func(key []int, v R) bool) {
	for _, e := range t.sorted() {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// String renders slots and entries, mostly for test failure messages.
func (t *Einstein[I, R]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Einstein^%v_%v{", t.contra, t.cov)
	for i, e := range t.sorted() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", e.key, e.val)
	}
	b.WriteString("}")

	return b.String()
}

// isNeutral reports the additive neutral tensor: no slots, no entries.
func (t *Einstein[I, R]) isNeutral() bool {
	return t.Rank() == 0 && len(t.entries) == 0
}

// put stores v under key without copying or validating key.
func (t *Einstein[I, R]) put(key []int, v R) {
	t.entries[encodeKey(key)] = entry[R]{key: key, val: v}
}

// accumulate adds v into the entry at key.
func (t *Einstein[I, R]) accumulate(key []int, v R) {
	k := encodeKey(key)
	if cur, ok := t.entries[k]; ok {
		t.entries[k] = entry[R]{key: cur.key, val: cur.val.Add(v)}
		return
	}
	t.entries[k] = entry[R]{key: key, val: v}
}

// sorted returns the entries in lexicographic key order.
func (t *Einstein[I, R]) sorted() []entry[R] {
	out := make([]entry[R], 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry[R]) int { return slices.Compare(a.key, b.key) })

	return out
}

// derive returns an empty tensor sharing t's factory and slot lists.
func (t *Einstein[I, R]) derive() *Einstein[I, R] {
	return newShared(t.fac, t.contra, t.cov)
}

func encodeKey(key []int) string {
	b := make([]byte, 0, 4*len(key))
	for i, k := range key {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(k), 10)
	}

	return string(b)
}

// pick returns key[pos] for every pos in positions.
func pick(key []int, positions []int) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = key[p]
	}

	return out
}
