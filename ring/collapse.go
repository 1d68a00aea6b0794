// SPDX-License-Identifier: MIT

package ring

// Collapsible is implemented by rings that can recognise, without any
// approximation, a value that is already the canonical identity or zero.
// Elimination keeps such values instead of overwriting them, which matters
// for symbolic rings where replacing an expression loses information.
type Collapsible interface {
	IsExactIdentity() bool
	IsExactZero() bool
}

// IsExactIdentity reports whether v is Collapsible and an exact identity.
func IsExactIdentity(v any) bool {
	c, ok := v.(Collapsible)
	return ok && c.IsExactIdentity()
}

// IsExactZero reports whether v is Collapsible and an exact zero.
func IsExactZero(v any) bool {
	c, ok := v.(Collapsible)
	return ok && c.IsExactZero()
}
