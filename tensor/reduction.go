// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"slices"
)

// IndexReduction drops the named contravariant and covariant slots. Every
// stored entry is added into the entry of the result that shares its
// basis values on the remaining slots.
func (t *Einstein[I, R]) IndexReduction(contra, cov []I) *Einstein[I, R] {
	var keep []int
	var newContra, newCov []I
	for i, name := range t.contra {
		if !slices.Contains(contra, name) {
			newContra = append(newContra, name)
			keep = append(keep, i)
		}
	}
	for i, name := range t.cov {
		if !slices.Contains(cov, name) {
			newCov = append(newCov, name)
			keep = append(keep, len(t.contra)+i)
		}
	}

	out := newShared(t.fac, newContra, newCov)
	for _, e := range t.sorted() {
		out.accumulate(pick(e.key, keep), e.val)
	}

	return out
}

// RankTwoTrace returns the rank-zero tensor holding Σ t[i, i].
func (t *Einstein[I, R]) RankTwoTrace() (*Einstein[I, R], error) {
	if t.Rank() != 2 {
		return nil, tensorErrorf(opRankTwoTrace, fmt.Errorf("rank %d: %w", t.Rank(), ErrRankMismatch))
	}

	sum := t.fac.Zero()
	for _, e := range t.sorted() {
		if e.key[0] == e.key[1] {
			sum = sum.Add(e.val)
		}
	}

	return NewScalar[I](sum, t.fac), nil
}
