// SPDX-License-Identifier: MIT

package ring

import "reflect"

// Same reports whether a and b are the same value in the sense of Go's ==,
// returning false instead of panicking when the dynamic type is not
// comparable. Pointer-backed elements compare by identity.
func Same[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	ta := reflect.TypeOf(av)
	if ta != reflect.TypeOf(bv) || !ta.Comparable() {
		return false
	}

	return av == bv
}
