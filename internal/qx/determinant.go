package qx

import (
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

// determinantQ computes the determinant of a square matrix of Q
// entries via Gaussian elimination with partial pivoting (any nonzero
// pivot below the diagonal). Q is a field, so elimination is exact.
func determinantQ(mat [][]q.Q) (q.Q, error) {
	n := len(mat)
	m := make([][]q.Q, n)
	for i := range mat {
		m[i] = append([]q.Q(nil), mat[i]...)
	}
	sign := 1
	var det q.Q
	var oneZ z.Z
	oneZ.SetInt64(1)
	det.SetFromInt(&oneZ)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !m[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			var zero q.Q
			return zero, nil
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			sign = -sign
		}
		det.Mul(&det, &m[col][col])

		var inv q.Q
		if err := inv.Inv(&m[col][col]); err != nil {
			return q.Q{}, err
		}
		for r := col + 1; r < n; r++ {
			if m[r][col].IsZero() {
				continue
			}
			var factor q.Q
			factor.Mul(&m[r][col], &inv)
			for c := col; c < n; c++ {
				var term q.Q
				term.Mul(&factor, &m[col][c])
				m[r][c].Sub(&m[r][c], &term)
			}
		}
	}
	if sign < 0 {
		det.Neg(&det)
	}
	return det, nil
}
