// SPDX-License-Identifier: MIT
// Package tensor: Einstein-summation product.

package tensor

import (
	"slices"
)

// slotPlan describes how the slots of a product map onto the operands.
// Positions index the concatenation leftKey ++ rightKey.
type slotPlan[I comparable] struct {
	contra, cov    []I   // result slot names
	keep           []int // result key = pick(concat, keep)
	matchL, matchR []int // left and right positions that must agree
}

// planProduct classifies every slot of a·b.
//
// Implementation:
//   - Stage 1: each left slot whose name does not occur in b is kept.
//   - Stage 2: a left slot whose name occurs in b with the opposite variance
//     is contracted; with the same variance it is kept once. Both cases
//     require the two basis values to agree.
//   - Stage 3: right slots whose names do not occur in a are appended.
//   - Result keys list contravariant positions first, matching the result
//     slot lists.
func planProduct[I comparable](aContra, aCov, bContra, bCov []I) slotPlan[I] {
	var p slotPlan[I]
	na := len(aContra) + len(aCov)
	nbContra := len(bContra)
	bAll := append(slices.Clone(bContra), bCov...)

	var keepContra, keepCov []int

	for i, name := range aContra {
		j := slices.Index(bAll, name)
		if j >= 0 {
			p.matchL = append(p.matchL, i)
			p.matchR = append(p.matchR, j)
		}
		if j < 0 || j < nbContra {
			p.contra = append(p.contra, name)
			keepContra = append(keepContra, i)
		}
	}
	for i, name := range aCov {
		pos := len(aContra) + i
		j := slices.Index(bAll, name)
		if j >= 0 {
			p.matchL = append(p.matchL, pos)
			p.matchR = append(p.matchR, j)
		}
		if j < 0 || j >= nbContra {
			p.cov = append(p.cov, name)
			keepCov = append(keepCov, pos)
		}
	}

	for j, name := range bContra {
		if !slices.Contains(aContra, name) && !slices.Contains(aCov, name) {
			p.contra = append(p.contra, name)
			keepContra = append(keepContra, na+j)
		}
	}
	for j, name := range bCov {
		if !slices.Contains(aContra, name) && !slices.Contains(aCov, name) {
			p.cov = append(p.cov, name)
			keepCov = append(keepCov, na+nbContra+j)
		}
	}

	p.keep = append(keepContra, keepCov...)

	return p
}

// Mult returns the Einstein-summation product t·b with coefficient
// products taken as left*right.
//
// Right entries are indexed by the basis values of their matched slots, so
// each left entry only meets the right entries it agrees with.
//
// Complexity: O(nnz(t) + nnz(b) + number of agreeing pairs).
func (t *Einstein[I, R]) Mult(b *Einstein[I, R]) *Einstein[I, R] {
	if b == nil {
		panic(tensorErrorf(opMult, ErrNilTensor))
	}

	p := planProduct(t.contra, t.cov, b.contra, b.cov)
	out := newShared(t.fac, p.contra, p.cov)

	index := make(map[string][]entry[R])
	for _, e := range b.sorted() {
		k := encodeKey(pick(e.key, p.matchR))
		index[k] = append(index[k], e)
	}

	concat := make([]int, t.Rank()+b.Rank())
	for _, ea := range t.sorted() {
		partners := index[encodeKey(pick(ea.key, p.matchL))]
		if len(partners) == 0 {
			continue
		}
		copy(concat, ea.key)
		for _, eb := range partners {
			copy(concat[len(ea.key):], eb.key)
			out.accumulate(pick(concat, p.keep), ea.val.Mult(eb.val))
		}
	}

	return out
}
