package qx

import "github.com/flintlib/flint-sub040/internal/z"

// Equal reports whether a and b are identical in canonical form:
// same length, same denominator, and pointwise-equal coefficients
// (spec §3.3's canonical form makes this the same as value equality).
func Equal(a, b *Qx) bool {
	if a.length != b.length {
		return false
	}
	aDen, bDen := a.Den(), b.Den()
	if !z.Equal(&aDen, &bDen) {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !z.Equal(&a.coeffs[i], &b.coeffs[i]) {
			return false
		}
	}
	return true
}
