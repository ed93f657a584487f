// Package z implements Z, the tagged multi-precision integer at the
// foundation of the core. A Z is small-by-default: values that fit in
// WordBits-2 bits live inline; anything larger owns a heap-allocated
// BPI BigInt. Every public operation whose result could fit small form
// exits with the result demoted to small form (spec §4.1.3) — small-
// form equality is a plain integer comparison, and downstream code
// (internal/q, internal/qx) relies on that being cheap and exact.
package z

import (
	"math/big"

	"github.com/flintlib/flint-sub040/internal/bpi"
	"github.com/flintlib/flint-sub040/internal/errs"
)

// WordBits is the width of a machine word this build's small form is
// sized against.
const WordBits = 64

// SmallMax and SmallMin bound the inline small-form range:
// [-2^(WordBits-2)+1, 2^(WordBits-2)-1].
const (
	SmallMax = int64(1)<<(WordBits-2) - 1
	SmallMin = -SmallMax
)

// Z is a tagged multi-precision integer. The zero value is 0 and
// ready to use. Z is owning: assigning a Z by value in Go already
// copies the struct, but big is a pointer, so copying a Z's header
// without calling Set would alias the heap BigInt — all core APIs
// that logically "copy" a Z call Set explicitly to keep ownership
// (I2) unambiguous.
type Z struct {
	small int64
	big   *bpi.BigInt // nil iff small form
}

// IsSmall reports whether z is currently in small form.
func (z *Z) IsSmall() bool { return z.big == nil }

// demote converts z to small form if its magnitude now fits, per the
// promotion/demotion discipline of spec §3.1 (I1). Every arithmetic
// entry point below ends by calling this on its result.
func (z *Z) demote() {
	if z.big == nil {
		return
	}
	if z.big.IsInt64() {
		v := z.big.Int64()
		if v >= SmallMin && v <= SmallMax {
			z.small = v
			z.big = nil
		}
	}
}

// promote ensures z is in large form, allocating a BigInt holding the
// current small value if needed, and returns the BigInt.
func (z *Z) promote() *bpi.BigInt {
	if z.big == nil {
		z.big = bpi.SetInt64(bpi.New(), z.small)
	}
	return z.big
}

// asBig returns a BigInt view of z without mutating z's
// representation: a borrowed pointer for a large z, or a freshly
// allocated one for a small z.
func (z *Z) asBig() *bpi.BigInt {
	if z.big != nil {
		return z.big
	}
	return bpi.SetInt64(bpi.New(), z.small)
}

// Init resets z to 0. Present for lifecycle parity with the BPI/spec
// vocabulary; the zero value already satisfies it.
func (z *Z) Init() { z.small, z.big = 0, nil }

// Clear releases any heap storage z owns and resets it to 0.
func (z *Z) Clear() { z.small, z.big = 0, nil }

// Swap exchanges the contents of a and b in O(1).
func Swap(a, b *Z) { *a, *b = *b, *a }

// Set sets z to a copy of src (a deep copy if src is large) and
// returns z.
func (z *Z) Set(src *Z) *Z {
	if src == z {
		return z
	}
	if src.big == nil {
		z.small, z.big = src.small, nil
		return z
	}
	z.small = 0
	z.big = bpi.Copy(src.big)
	return z
}

// SetInt64 sets z to x and returns z.
func (z *Z) SetInt64(x int64) *Z {
	if x >= SmallMin && x <= SmallMax {
		z.small, z.big = x, nil
		return z
	}
	z.big = bpi.SetInt64(bpi.New(), x)
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Z) SetUint64(x uint64) *Z {
	if x <= uint64(SmallMax) {
		z.small, z.big = int64(x), nil
		return z
	}
	z.big = bpi.SetUint64(bpi.New(), x)
	return z
}

// SetFloat64 sets z to x truncated toward zero. It reports a DOMAIN
// error if x is NaN or infinite.
func (z *Z) SetFloat64(x float64) error {
	op := errs.Op{Name: "Z.SetFloat64"}
	if x != x { // NaN; big.NewFloat panics on it, so check first
		return errs.NewDomain(op, "value is NaN")
	}
	bf := big.NewFloat(x)
	if bf.IsInf() {
		return errs.NewDomain(op, "value is infinite")
	}
	bi, _ := bf.Int(nil)
	z.big = bi
	z.demote()
	return nil
}

// SetString sets z to the value of s interpreted in base (2..62, or 0
// to detect a 0x/0b/0o prefix) and returns an error if s is not a
// valid representation in that base.
func (z *Z) SetString(s string, base int) error {
	bi, ok := bpi.SetString(bpi.New(), s, base)
	if !ok {
		return errs.NewDomain(errs.Op{Name: "Z.SetString", Operands: s}, "not a valid base-%d integer", base)
	}
	z.big = bi
	z.demote()
	return nil
}

// Text returns z formatted in the given base (2..62); base 10 is
// plain decimal with no leading zeros except "0" itself, matching
// spec §6.3.
func (z *Z) Text(base int) string {
	if z.big != nil {
		return bpi.Text(z.big, base)
	}
	return bpi.Text(bpi.SetInt64(bpi.New(), z.small), base)
}

// String returns the decimal representation of z.
func (z *Z) String() string { return z.Text(10) }

// Int64 returns z as an int64, truncating if z does not fit (callers
// that need overflow detection should check Sign/BitLen first).
func (z *Z) Int64() int64 {
	if z.big == nil {
		return z.small
	}
	return z.big.Int64()
}

// Sign returns -1, 0 or +1 according to the sign of z.
func (z *Z) Sign() int {
	if z.big == nil {
		switch {
		case z.small < 0:
			return -1
		case z.small > 0:
			return 1
		default:
			return 0
		}
	}
	return bpi.Sign(z.big)
}

// Abs sets z = |x| and returns z.
func (z *Z) Abs(x *Z) *Z {
	if x.big == nil {
		if x.small == SmallMin { // SmallMin's negation still fits (SmallMax == -SmallMin)
			z.small = -x.small
			z.big = nil
			return z
		}
		v := x.small
		if v < 0 {
			v = -v
		}
		z.small, z.big = v, nil
		return z
	}
	z.big = bpi.Abs(bpi.New(), x.big)
	z.demote()
	return z
}

// Cmp returns a total order over (x, y): -1, 0 or +1.
func Cmp(x, y *Z) int {
	if x.big == nil && y.big == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		default:
			return 0
		}
	}
	return bpi.Cmp(x.asBig(), y.asBig())
}

// CmpAbs returns a total order over (|x|, |y|).
func CmpAbs(x, y *Z) int {
	if x.big == nil && y.big == nil {
		ax, ay := x.small, y.small
		if ax < 0 {
			ax = -ax
		}
		if ay < 0 {
			ay = -ay
		}
		switch {
		case ax < ay:
			return -1
		case ax > ay:
			return 1
		default:
			return 0
		}
	}
	return bpi.CmpAbs(x.asBig(), y.asBig())
}

// Equal reports whether x and y hold the same value (I3): both small
// and bitwise equal, or both large and BigInt-equal. A small value is
// never large-equal to a value that needed large form (I1 guarantees
// a large Z's magnitude always exceeds SmallMax).
func Equal(x, y *Z) bool { return Cmp(x, y) == 0 }

// IsZero reports whether z == 0.
func (z *Z) IsZero() bool { return z.big == nil && z.small == 0 }

// Zero is the additive identity, used by callers (e.g. Qx coefficient
// getters) that need a value, not just a predicate.
func Zero() Z { return Z{} }

// FitsWord reports whether z fits in a signed 64-bit machine word.
func (z *Z) FitsWord() bool {
	if z.big == nil {
		return true
	}
	return z.big.IsInt64()
}

// SizeInBase returns the number of digits z needs to print in base,
// not counting a leading sign. Bases 2 and 16 are answered from the
// bit length alone; every other base formats |z| and counts the digits.
func (z *Z) SizeInBase(base int) int {
	bi := z.asBig()
	if bi.Sign() == 0 {
		return 1
	}
	bits := bi.BitLen()
	switch base {
	case 2:
		return bits
	case 16:
		return (bits + 3) / 4
	default:
		return len(bpi.Text(bpi.Abs(bpi.New(), bi), base))
	}
}

// Root sets z to floor(x^(1/n)) (or the exact root when one exists)
// and reports whether it is exact, wrapping the BPI's n-th-root oracle
// (bpi.NthRoot). n must be >= 1. A negative x is only defined for odd
// n, matching ordinary real n-th roots; z's sign is set to match x's
// in that case. Used by Q.Sqrt (n==2 on numerator and denominator) to
// extract an exact rational square root (spec §4, supplemented
// operations).
func (z *Z) Root(x *Z, n uint) (bool, error) {
	if n == 0 {
		return false, errs.NewDomain(errs.Op{Name: "Z.Root"}, "n must be >= 1")
	}
	if x.Sign() < 0 && n%2 == 0 {
		return false, errs.NewDomain(errs.Op{Name: "Z.Root"}, "even root of a negative value is undefined")
	}
	neg := x.Sign() < 0
	xb := x.asBig()
	var mag bpi.BigInt
	if neg {
		bpi.Neg(&mag, xb)
		xb = &mag
	}
	root, exact := bpi.NthRoot(bpi.New(), xb, n)
	if neg {
		bpi.Neg(root, root)
	}
	z.big = root
	z.demote()
	return exact, nil
}
