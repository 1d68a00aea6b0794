// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/simplealgebra/ring"

// SetRowViewOnly writes v into the row-major view only, breaking the
// mirror invariant so tests can exercise Validate.
func SetRowViewOnly[R ring.Elem[R]](m *Square[R], row, col int, v R) {
	r := m.rows[row]
	if r == nil {
		r = make(map[int]R)
		m.rows[row] = r
	}
	r[col] = v
}
