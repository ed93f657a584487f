package z

import "github.com/flintlib/flint-sub040/internal/bpi"

// Add sets z = x + y and returns z, demoting the result to small form
// when it fits.
func (z *Z) Add(x, y *Z) *Z {
	if x.big == nil && y.big == nil {
		a, b := x.small, y.small
		sum := a + b
		overflowed := (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
		if !overflowed && sum >= SmallMin && sum <= SmallMax {
			z.small, z.big = sum, nil
			return z
		}
	}
	z.big = bpi.Add(bpi.New(), x.asBig(), y.asBig())
	z.demote()
	return z
}

// Sub sets z = x - y and returns z.
func (z *Z) Sub(x, y *Z) *Z {
	var negY Z
	negY.Neg(y)
	return z.Add(x, &negY)
}

// Neg sets z = -x and returns z.
func (z *Z) Neg(x *Z) *Z {
	if x.big == nil {
		neg := -x.small
		if neg >= SmallMin && neg <= SmallMax {
			z.small, z.big = neg, nil
			return z
		}
		z.big = bpi.SetInt64(bpi.New(), neg)
		return z
	}
	z.big = bpi.Neg(bpi.New(), x.big)
	z.demote()
	return z
}

// Mul sets z = x * y and returns z, promoting through the BPI (which
// itself dispatches to an FFT multiply for very large operands) and
// demoting back to small form when the product fits.
func (z *Z) Mul(x, y *Z) *Z {
	if x.big == nil && y.big == nil && fitsSmallProduct(x.small, y.small) {
		z.small, z.big = x.small*y.small, nil
		return z
	}
	z.big = bpi.Mul(bpi.New(), x.asBig(), y.asBig())
	z.demote()
	return z
}

// fitsSmallProduct reports whether a*b is representable in small form
// without overflowing int64 first. It is conservative: a cheap
// bit-length check that may fall through to the BPI path even for a
// few products that would actually fit, never the reverse.
func fitsSmallProduct(a, b int64) bool {
	if a == 0 || b == 0 {
		return true
	}
	abs := func(v int64) int64 {
		if v < 0 {
			return -v
		}
		return v
	}
	aa, ab := abs(a), abs(b)
	// aa, ab < 2^62 each (small-form bound); only safe to multiply
	// directly in int64 when their bit-lengths sum under 62.
	bitLen := func(v int64) int {
		n := 0
		for v > 0 {
			n++
			v >>= 1
		}
		return n
	}
	return bitLen(aa)+bitLen(ab) < WordBits-2
}

// AddMul sets z += x*y and returns z.
func (z *Z) AddMul(x, y *Z) *Z {
	var p Z
	p.Mul(x, y)
	return z.Add(z, &p)
}

// SubMul sets z -= x*y and returns z.
func (z *Z) SubMul(x, y *Z) *Z {
	var p Z
	p.Mul(x, y)
	return z.Sub(z, &p)
}

// AddWord sets z = x + w and returns z.
func (z *Z) AddWord(x *Z, w int64) *Z {
	var wz Z
	wz.SetInt64(w)
	return z.Add(x, &wz)
}

// SubWord sets z = x - w and returns z.
func (z *Z) SubWord(x *Z, w int64) *Z {
	var wz Z
	wz.SetInt64(w)
	return z.Sub(x, &wz)
}

// MulWord sets z = x * w and returns z.
func (z *Z) MulWord(x *Z, w int64) *Z {
	var wz Z
	wz.SetInt64(w)
	return z.Mul(x, &wz)
}
