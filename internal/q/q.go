// Package q implements Q, the canonical rational number built atop
// internal/z: a pair (num, den) always maintained with den > 0 and
// gcd(|num|, den) == 1 (spec §3.2). Zero is always num=0, den=1.
package q

import (
	"strings"

	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/z"
)

// Q is a canonical rational number. The zero value is 0/1 and ready
// to use.
type Q struct {
	num z.Z
	den z.Z
}

func op(name string) errs.Op { return errs.Op{Name: "Q." + name} }

// Num returns (a copy of) the numerator.
func (q *Q) Num() z.Z { var n z.Z; n.Set(&q.num); return n }

// Den returns (a copy of) the denominator.
func (q *Q) Den() z.Z {
	if q.den.IsZero() {
		var one z.Z
		one.SetInt64(1)
		return one
	}
	var d z.Z
	d.Set(&q.den)
	return d
}

// Init resets q to 0/1.
func (q *Q) Init() { q.num.SetInt64(0); q.den.SetInt64(1) }

// Clear releases q's storage and resets it to 0/1.
func (q *Q) Clear() { q.Init() }

// canonicalize enforces (I5): divide through by gcd(|num|, den),
// flip signs so den > 0, and force den = 1 when num == 0. Idempotent.
func (q *Q) canonicalize() {
	if q.den.IsZero() {
		q.den.SetInt64(1)
	}
	if q.num.IsZero() {
		q.den.SetInt64(1)
		return
	}
	var g z.Z
	z.GCD(&g, &q.num, &q.den)
	one := z.Z{}
	one.SetInt64(1)
	if !z.Equal(&g, &one) {
		var n, d z.Z
		_ = z.DivExact(&n, &q.num, &g)
		_ = z.DivExact(&d, &q.den, &g)
		q.num.Set(&n)
		q.den.Set(&d)
	}
	if q.den.Sign() < 0 {
		q.num.Neg(&q.num)
		q.den.Neg(&q.den)
	}
}

// Set sets q to a copy of src and returns q.
func (q *Q) Set(src *Q) *Q {
	q.num.Set(&src.num)
	q.den.Set(&src.den)
	return q
}

// SetFromInt sets q = n/1 and returns q.
func (q *Q) SetFromInt(n *z.Z) *Q {
	q.num.Set(n)
	q.den.SetInt64(1)
	return q
}

// SetFromFraction sets q = num/den, canonicalizing, and reports a
// DOMAIN error if den == 0.
func (q *Q) SetFromFraction(num, den *z.Z) error {
	if den.IsZero() {
		return errs.NewDomain(op("SetFromFraction"), "denominator is zero")
	}
	q.num.Set(num)
	q.den.Set(den)
	q.canonicalize()
	return nil
}

// SetString parses "num/den" or a bare integer "num" and reports an
// error if the string is malformed or the denominator is zero.
func (q *Q) SetString(s string) error {
	parts := strings.SplitN(s, "/", 2)
	var n, d z.Z
	if err := n.SetString(strings.TrimSpace(parts[0]), 10); err != nil {
		return err
	}
	if len(parts) == 1 {
		d.SetInt64(1)
	} else if err := d.SetString(strings.TrimSpace(parts[1]), 10); err != nil {
		return err
	}
	return q.SetFromFraction(&n, &d)
}

// String returns q in "num/den" form, or the bare integer when den == 1.
func (q *Q) String() string {
	d := q.Den()
	if z.Equal(&d, oneZ()) {
		return q.num.String()
	}
	return q.num.String() + "/" + d.String()
}

func oneZ() *z.Z { o := &z.Z{}; o.SetInt64(1); return o }

// Sign returns the sign of q (den is always positive post-canonicalize).
func (q *Q) Sign() int { return q.num.Sign() }

// IsZero reports whether q == 0.
func (q *Q) IsZero() bool { return q.num.IsZero() }

// Cmp returns a total order over (x, y): -1, 0 or +1.
func Cmp(x, y *Q) int {
	xd, yd := x.Den(), y.Den()
	var lhs, rhs z.Z
	lhs.Mul(&x.num, &yd)
	rhs.Mul(&y.num, &xd)
	return z.Cmp(&lhs, &rhs)
}

// Equal reports whether x and y compare equal in canonical form (I6).
func Equal(x, y *Q) bool {
	xd, yd := x.Den(), y.Den()
	return z.Equal(&x.num, &y.num) && z.Equal(&xd, &yd)
}

// Add sets z = x + y and returns z, canonical on exit.
func (q *Q) Add(x, y *Q) *Q {
	xd, yd := x.Den(), y.Den()
	var n1, n2, n z.Z
	n1.Mul(&x.num, &yd)
	n2.Mul(&y.num, &xd)
	n.Add(&n1, &n2)
	var d z.Z
	d.Mul(&xd, &yd)
	q.num.Set(&n)
	q.den.Set(&d)
	q.canonicalize()
	return q
}

// Sub sets z = x - y and returns z.
func (q *Q) Sub(x, y *Q) *Q {
	var ny Q
	ny.Neg(y)
	return q.Add(x, &ny)
}

// Neg sets z = -x and returns z.
func (q *Q) Neg(x *Q) *Q {
	q.num.Neg(&x.num)
	q.den.Set(&x.den)
	return q
}

// Mul sets z = x * y and returns z, canonical on exit.
func (q *Q) Mul(x, y *Q) *Q {
	var n, d z.Z
	n.Mul(&x.num, &y.num)
	d.Mul(&x.den, &y.den)
	q.num.Set(&n)
	q.den.Set(&d)
	q.canonicalize()
	return q
}

// Div sets z = x / y and returns an error if y == 0.
func (q *Q) Div(x, y *Q) error {
	if y.IsZero() {
		return errs.NewDomain(op("Div"), "division by zero")
	}
	var inv Q
	if err := inv.Inv(y); err != nil {
		return err
	}
	q.Mul(x, &inv)
	return nil
}

// Inv sets z = 1/x and returns an error if x == 0.
func (q *Q) Inv(x *Q) error {
	if x.IsZero() {
		return errs.NewDomain(op("Inv"), "inverse of zero")
	}
	num, den := x.num, x.den
	if num.Sign() < 0 {
		q.num.Neg(&den)
		q.den.Neg(&num)
	} else {
		q.num.Set(&den)
		q.den.Set(&num)
	}
	return nil
}

// Pow sets z = x^n for integer n (n may be negative if x != 0) and
// returns an error if n < 0 and x == 0.
func (q *Q) Pow(x *Q, n int) error {
	if n == 0 {
		q.num.SetInt64(1)
		q.den.SetInt64(1)
		return nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	if x.IsZero() && neg {
		return errs.NewDomain(op("Pow"), "zero to a negative power")
	}
	result := Q{}
	result.num.SetInt64(1)
	result.den.SetInt64(1)
	base := Q{}
	base.Set(x)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(&result, &base)
		}
		base.Mul(&base, &base)
		n >>= 1
	}
	if neg {
		if err := q.Inv(&result); err != nil {
			return err
		}
		return nil
	}
	q.Set(&result)
	return nil
}

// AddMul sets z += x*y and returns z.
func (q *Q) AddMul(x, y *Q) *Q {
	var p Q
	p.Mul(x, y)
	return q.Add(q, &p)
}

// SubMul sets z -= x*y and returns z.
func (q *Q) SubMul(x, y *Q) *Q {
	var p Q
	p.Mul(x, y)
	return q.Sub(q, &p)
}

// GCD sets z = gcd(x, y), defined via their reduced numerators scaled
// to a common denominator: gcd(a/b, c/d) = gcd(a*d, c*b) / (b*d) in
// lowest terms. Both x and y must be nonzero for the result to be
// nonzero in the conventional sense; gcd(0, y) == |y|.
func (q *Q) GCD(x, y *Q) *Q {
	if x.IsZero() {
		q.num.Abs(&y.num)
		q.den.Set(&y.den)
		q.canonicalize()
		return q
	}
	if y.IsZero() {
		q.num.Abs(&x.num)
		q.den.Set(&x.den)
		q.canonicalize()
		return q
	}
	var a, b, g, d z.Z
	a.Mul(&x.num, &y.den)
	b.Mul(&y.num, &x.den)
	z.GCD(&g, &a, &b)
	d.Mul(&x.den, &y.den)
	q.num.Set(&g)
	q.den.Set(&d)
	q.canonicalize()
	return q
}

// LCM sets z = lcm(x, y) and returns z.
func (q *Q) LCM(x, y *Q) *Q {
	var g, prod Q
	g.GCD(x, y)
	prod.Mul(x, y)
	prod.num.Abs(&prod.num)
	var out Q
	_ = out.Div(&prod, &g)
	q.Set(&out)
	return q
}

// ScaleByPow2 sets z = x / 2^k (k may be negative to multiply),
// normalizing the result's own 2-adic valuation rather than leaving
// spurious factors of two in numerator or denominator.
func (q *Q) ScaleByPow2(x *Q, k int) *Q {
	num, den := x.num, x.den
	if k >= 0 {
		den.Lshift(&den, uint(k))
	} else {
		num.Lshift(&num, uint(-k))
	}
	q.num.Set(&num)
	q.den.Set(&den)
	q.canonicalize()
	return q
}

// Sqrt sets q to the exact rational square root of x and reports
// whether one exists: x must be nonnegative, and both its (already
// coprime) numerator and denominator must be perfect squares, wrapping
// z.Z.Root(2) (spec §4, supplemented operations).
func (q *Q) Sqrt(x *Q) (bool, error) {
	if x.Sign() < 0 {
		return false, errs.NewDomain(op("Sqrt"), "square root of a negative value")
	}
	if x.IsZero() {
		q.Init()
		return true, nil
	}
	var numRoot, denRoot z.Z
	numExact, err := numRoot.Root(&x.num, 2)
	if err != nil {
		return false, err
	}
	denExact, err := denRoot.Root(&x.den, 2)
	if err != nil {
		return false, err
	}
	if !numExact || !denExact {
		return false, nil
	}
	q.num.Set(&numRoot)
	q.den.Set(&denRoot)
	q.canonicalize()
	return true, nil
}
