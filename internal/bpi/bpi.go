// Package bpi is the Bignum Primitive Interface adapter: it names the
// subset of math/big's arbitrary-precision integer that the core's
// tagged integer (internal/z) builds on, per spec §6.1. math/big.Int
// already implements every primitive §6.1 requires; this package does
// not reimplement them, it gives them the names and call shapes the
// rest of the core is written against, and adds the two things the
// standard library does not hand over directly: an n-th-root oracle
// and an FFT-accelerated multiply for operands too large for schoolbook
// multiplication to be worth it.
package bpi

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// BigInt is the BPI's opaque arbitrary-precision signed integer.
type BigInt = big.Int

// fftThresholdWords is the operand size, in big.Word (machine-word) limbs,
// above which Mul dispatches to the FFT path. Below it, schoolbook/
// Karatsuba multiplication inside math/big already wins.
const fftThresholdWords = 1024

// New returns a new zero-valued BigInt.
func New() *BigInt { return new(big.Int) }

// Copy returns a deep copy of x.
func Copy(x *BigInt) *BigInt { return new(big.Int).Set(x) }

// SetInt64 sets z to x and returns z.
func SetInt64(z *BigInt, x int64) *BigInt { return z.SetInt64(x) }

// SetUint64 sets z to x and returns z.
func SetUint64(z *BigInt, x uint64) *BigInt { return z.SetUint64(x) }

// SetString sets z to the value of s in the given base (0 means
// auto-detect a prefix, 10 and [2,62] are used directly by the core)
// and reports whether s was a valid representation.
func SetString(z *BigInt, s string, base int) (*BigInt, bool) { return z.SetString(s, base) }

// Text returns the string representation of x in the given base.
func Text(x *BigInt, base int) string { return x.Text(base) }

// Sign returns -1, 0 or +1 according to whether x is negative, zero
// or positive.
func Sign(x *BigInt) int { return x.Sign() }

// Cmp compares x and y; Cmp returns a total order.
func Cmp(x, y *BigInt) int { return x.Cmp(y) }

// CmpAbs compares |x| and |y|.
func CmpAbs(x, y *BigInt) int {
	ax, ay := new(big.Int).Abs(x), new(big.Int).Abs(y)
	return ax.Cmp(ay)
}

// Add sets z = x + y and returns z.
func Add(z, x, y *BigInt) *BigInt { return z.Add(x, y) }

// Sub sets z = x - y and returns z.
func Sub(z, x, y *BigInt) *BigInt { return z.Sub(x, y) }

// Neg sets z = -x and returns z.
func Neg(z, x *BigInt) *BigInt { return z.Neg(x) }

// Abs sets z = |x| and returns z.
func Abs(z, x *BigInt) *BigInt { return z.Abs(x) }

// Mul sets z = x*y and returns z, dispatching to an FFT-accelerated
// multiply once both operands are large enough for it to pay off.
func Mul(z, x, y *BigInt) *BigInt {
	if len(x.Bits()) >= fftThresholdWords && len(y.Bits()) >= fftThresholdWords {
		return z.Set(bigfft.Mul(x, y))
	}
	return z.Mul(x, y)
}

// QuoRem sets q = x div y (truncated toward zero) and r = x - y*q,
// and returns (q, r).
func QuoRem(q, r, x, y *BigInt) (*BigInt, *BigInt) { return q.QuoRem(x, y, r) }

// DivMod sets q, r to the Euclidean (floor, non-negative remainder)
// division of x by y and returns (q, r).
func DivMod(q, r, x, y *BigInt) (*BigInt, *BigInt) { return q.DivMod(x, y, r) }

// Mod sets z = x mod m with 0 <= z < |m| (Euclidean) and returns z.
func Mod(z, x, m *BigInt) *BigInt {
	_, r := new(big.Int).DivMod(x, m, z)
	return r
}

// ModInverse sets z to the multiplicative inverse of x mod m and
// returns (z, true), or (nil, false) if the inverse does not exist.
func ModInverse(z, x, m *BigInt) (*BigInt, bool) {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(m))
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	r := z.ModInverse(x, m)
	if r == nil {
		return nil, false
	}
	return r, true
}

// Exp sets z = x^y mod m (or x^y if m is nil) and returns z.
func Exp(z, x, y, m *BigInt) *BigInt { return z.Exp(x, y, m) }

// GCD sets z = gcd(|x|, |y|) and, if s and t are non-nil, the Bezout
// coefficients such that z == s*x + t*y. Returns z.
func GCD(z, s, t, x, y *BigInt) *BigInt { return z.GCD(s, t, x, y) }

// Lsh sets z = x << n and returns z.
func Lsh(z, x *BigInt, n uint) *BigInt { return z.Lsh(x, n) }

// Rsh sets z = x >> n (arithmetic, rounds toward -infinity for
// negative x, matching big.Int's own convention) and returns z.
func Rsh(z, x *BigInt, n uint) *BigInt { return z.Rsh(x, n) }

// BitLen returns the length of the absolute value of x in bits; 0 for 0.
func BitLen(x *BigInt) int { return x.BitLen() }

// Bit returns the value of the i'th bit of x.
func Bit(x *BigInt, i int) uint { return x.Bit(i) }

// SetBit sets z to x with its i'th bit set to b (0 or 1) and returns z.
func SetBit(z, x *BigInt, i int, b uint) *BigInt { return z.SetBit(x, i, b) }

// PopCount returns the number of set bits in |x|.
func PopCount(x *BigInt) int {
	n := 0
	for _, w := range new(big.Int).Abs(x).Bits() {
		for w != 0 {
			n += int(w & 1)
			w >>= 1
		}
	}
	return n
}

// ProbablyPrime reports whether x is probably prime, applying n
// Miller-Rabin rounds plus a Baillie-PSW check (big.Int's own policy).
func ProbablyPrime(x *BigInt, n int) bool { return x.ProbablyPrime(n) }

// Sqrt sets z to floor(sqrt(x)) for x >= 0 and returns z.
func Sqrt(z, x *BigInt) *BigInt { return z.Sqrt(x) }

// NthRoot sets z to floor(x^(1/n)) for x >= 0, n >= 1, and reports
// whether the root is exact. math/big has no direct n-th root beyond
// n=2 (Sqrt); this uses Sqrt for n==2 and Newton's method, seeded from
// a bit-length estimate, otherwise.
func NthRoot(z, x *BigInt, n uint) (*BigInt, bool) {
	if x.Sign() == 0 {
		z.SetInt64(0)
		return z, true
	}
	if n == 1 {
		z.Set(x)
		return z, true
	}
	if n == 2 {
		z.Sqrt(x)
		check := new(big.Int).Mul(z, z)
		return z, check.Cmp(x) == 0
	}

	nBig := big.NewInt(int64(n))
	// Newton's method: y_{k+1} = ((n-1)*y_k + x / y_k^(n-1)) / n
	guessBits := (x.BitLen() + int(n) - 1) / int(n)
	if guessBits < 1 {
		guessBits = 1
	}
	y := new(big.Int).Lsh(big.NewInt(1), uint(guessBits))
	one := big.NewInt(1)
	for {
		yPow := new(big.Int).Exp(y, new(big.Int).Sub(nBig, one), nil)
		if yPow.Sign() == 0 {
			yPow = big.NewInt(1)
		}
		num := new(big.Int).Add(new(big.Int).Mul(new(big.Int).Sub(nBig, one), y), new(big.Int).Div(x, yPow))
		next := new(big.Int).Div(num, nBig)
		if next.Cmp(y) >= 0 {
			break
		}
		y.Set(next)
	}
	for {
		p := new(big.Int).Exp(y, nBig, nil)
		if p.Cmp(x) <= 0 {
			break
		}
		y.Sub(y, one)
	}
	z.Set(y)
	check := new(big.Int).Exp(z, nBig, nil)
	return z, check.Cmp(x) == 0
}
