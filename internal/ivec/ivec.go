// Package ivec implements the integer-vector utilities of spec §3.4 /
// §4.4: in-place and out-of-place operations over contiguous slices of
// z.Z, shared by internal/q and internal/qx. Vectors are plain Go
// slices; ownership rests with the caller, and operations are written
// to tolerate aliasing of their output with an input the same way
// internal/z does (spec §4.1.3).
package ivec

import (
	"golang.org/x/exp/constraints"

	"github.com/flintlib/flint-sub040/internal/z"
)

// SetZero sets every entry of v to 0.
func SetZero(v []z.Z) {
	for i := range v {
		v[i].SetInt64(0)
	}
}

// Set copies src into dst (dst must be at least len(src)).
func Set(dst, src []z.Z) {
	for i := range src {
		dst[i].Set(&src[i])
	}
}

// Neg sets dst[i] = -src[i] for all i (aliasing dst == src is fine).
func Neg(dst, src []z.Z) {
	for i := range src {
		dst[i].Neg(&src[i])
	}
}

// Equal reports whether a and b hold equal values index-for-index.
func Equal(a, b []z.Z) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !z.Equal(&a[i], &b[i]) {
			return false
		}
	}
	return true
}

// Content returns gcd(v[0], ..., v[len(v)-1]), 0 for an empty or
// all-zero vector.
func Content(v []z.Z) z.Z {
	var g z.Z
	for i := range v {
		z.GCD(&g, &g, &v[i])
	}
	return g
}

// Height returns the maximum absolute value among v's entries, 0 for
// an empty vector. Its bit-length is the per-entry size bound Qx's
// multiply-budget estimate combines with SumMaxBits
// (internal/qx/regime.go).
func Height(v []z.Z) z.Z {
	var h z.Z
	for i := range v {
		var a z.Z
		a.Abs(&v[i])
		if z.Cmp(&a, &h) > 0 {
			h.Set(&a)
		}
	}
	return h
}

// MaxBits returns the largest BitLen among v's entries.
func MaxBits(v []z.Z) int {
	m := 0
	for i := range v {
		if b := v[i].BitLen(); b > m {
			m = b
		}
	}
	return m
}

// SumMaxBits returns the bit-length of the sum of the absolute values
// of v's entries, and the maximum single-entry bit-length (spec
// §4.4): used by Qx's Mul/MulLow to bound the size of a coefficient
// product before computing it (internal/qx/regime.go).
func SumMaxBits(v []z.Z) (sumBits int, maxBits int) {
	var sum z.Z
	for i := range v {
		var a z.Z
		a.Abs(&v[i])
		sum.Add(&sum, &a)
		if b := v[i].BitLen(); b > maxBits {
			maxBits = b
		}
	}
	return sum.BitLen(), maxBits
}

// MaxLimbs returns an upper bound on the number of 64-bit limbs needed
// to represent the largest-magnitude entry in v.
func MaxLimbs(v []z.Z) int {
	bits := MaxBits(v)
	return (bits + z.WordBits - 1) / z.WordBits
}

// Abs returns the absolute value of x, a small generic helper used by
// Qx's multiply-budget estimate (internal/qx/regime.go) to widen the
// size bound for lopsided-degree multiplies, and by MaxLimbs-adjacent
// plain machine-word bookkeeping that never needs to go through Z.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MaxOf returns the greater of a and b, used by Qx's multiply-budget
// estimate (internal/qx/regime.go) to combine the two operands' size
// bounds into a single projected coefficient size.
func MaxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
