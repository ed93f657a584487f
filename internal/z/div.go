package z

import (
	"github.com/flintlib/flint-sub040/internal/bpi"
	"github.com/flintlib/flint-sub040/internal/errs"
)

func divOp(name string) errs.Op { return errs.Op{Name: "Z." + name} }

// TDivQR sets q, r to the truncating (toward zero) quotient and
// remainder of x/y: x == q*y + r, sign(r) == sign(x) or r == 0.
func TDivQR(q, r, x, y *Z) error {
	if y.IsZero() {
		return errs.NewDomain(divOp("TDivQR"), "division by zero")
	}
	qb, rb := bpi.QuoRem(bpi.New(), bpi.New(), x.asBig(), y.asBig())
	q.big, r.big = qb, rb
	q.demote()
	r.demote()
	return nil
}

// TDivQ sets q to the truncating quotient of x/y.
func TDivQ(q, x, y *Z) error { var r Z; return TDivQR(q, &r, x, y) }

// TDivR sets r to the truncating remainder of x/y.
func TDivR(r, x, y *Z) error { var q Z; return TDivQR(&q, r, x, y) }

// FDivQR sets q, r to the quotient and remainder of x/y with
// x == q*y + r and 0 <= r < |y| for either sign of y (P3). For y > 0, q
// is the floor of x/y; for y < 0 with a nonzero remainder, q is the
// ceiling of x/y.
func FDivQR(q, r, x, y *Z) error {
	if y.IsZero() {
		return errs.NewDomain(divOp("FDivQR"), "division by zero")
	}
	qb, rb := bpi.DivMod(bpi.New(), bpi.New(), x.asBig(), y.asBig())
	q.big, r.big = qb, rb
	q.demote()
	r.demote()
	return nil
}

// FDivQ sets q to the floor quotient of x/y.
func FDivQ(q, x, y *Z) error { var r Z; return FDivQR(q, &r, x, y) }

// FDivR sets r to the floor remainder of x/y.
func FDivR(r, x, y *Z) error { var q Z; return FDivQR(&q, r, x, y) }

// CDivQR sets q, r to the ceiling quotient and remainder of x/y.
func CDivQR(q, r, x, y *Z) error {
	if y.IsZero() {
		return errs.NewDomain(divOp("CDivQR"), "division by zero")
	}
	var fq, fr Z
	if err := FDivQR(&fq, &fr, x, y); err != nil {
		return err
	}
	if fr.IsZero() {
		q.Set(&fq)
		r.Set(&fr)
		return nil
	}
	one := Z{}
	one.SetInt64(1)
	if y.Sign() > 0 {
		q.Add(&fq, &one)
	} else {
		// FDivQR's quotient is already the ceiling when y < 0.
		q.Set(&fq)
	}
	var qy Z
	qy.Mul(q, y)
	r.Sub(x, &qy)
	return nil
}

// CDivQ sets q to the ceiling quotient of x/y.
func CDivQ(q, x, y *Z) error { var r Z; return CDivQR(q, &r, x, y) }

// CDivR sets r to the ceiling remainder of x/y.
func CDivR(r, x, y *Z) error { var q Z; return CDivQR(&q, r, x, y) }

// DivExact sets q = x/y, requiring the division to be exact. A
// non-zero remainder is a DOMAIN error, per spec: "behavior on
// non-exact input is reported as a DOMAIN error".
func DivExact(q, x, y *Z) error {
	if y.IsZero() {
		return errs.NewDomain(divOp("DivExact"), "division by zero")
	}
	var qq, r Z
	if err := TDivQR(&qq, &r, x, y); err != nil {
		return err
	}
	if !r.IsZero() {
		return errs.NewDomain(divOp("DivExact"), "%s does not divide %s exactly", y.String(), x.String())
	}
	q.Set(&qq)
	return nil
}

// Mod sets z = x mod m, 0 <= z < |m|, and returns an error if m == 0.
func Mod(z, x, m *Z) error {
	if m.IsZero() {
		return errs.NewDomain(divOp("Mod"), "modulus is zero")
	}
	var q Z
	return FDivQR(&q, z, x, m)
}

// ModWord returns x mod m (0 <= result < m) for a word-sized positive
// modulus.
func ModWord(x *Z, m uint64) (uint64, error) {
	if m == 0 {
		return 0, errs.NewDomain(divOp("ModWord"), "modulus is zero")
	}
	var mz, r Z
	mz.SetUint64(m)
	if err := Mod(&r, x, &mz); err != nil {
		return 0, err
	}
	return uint64(r.Int64()), nil
}

// ModInverse sets z to the inverse of x modulo m and returns an error
// if no inverse exists (gcd(x, m) != 1).
func ModInverse(z, x, m *Z) error {
	r, ok := bpi.ModInverse(bpi.New(), x.asBig(), m.asBig())
	if !ok {
		return errs.NewDomain(divOp("ModInverse"), "%s has no inverse mod %s", x.String(), m.String())
	}
	z.big = r
	z.demote()
	return nil
}

// PowMod sets z = x^e mod m. A negative exponent requires x to be
// invertible mod m.
func PowMod(z, x, e, m *Z) error {
	if m.IsZero() {
		return errs.NewDomain(divOp("PowMod"), "modulus is zero")
	}
	base := x
	exp := e
	if e.Sign() < 0 {
		var inv, negE Z
		if err := ModInverse(&inv, x, m); err != nil {
			return err
		}
		base = &inv
		negE.Neg(e)
		exp = &negE
	}
	z.big = bpi.Exp(bpi.New(), base.asBig(), exp.asBig(), m.asBig())
	z.demote()
	return nil
}

// PowModWord sets z = x^e mod m for a machine-word exponent.
func PowModWord(z, x *Z, e uint64, m *Z) error {
	var ez Z
	ez.SetUint64(e)
	return PowMod(z, x, &ez, m)
}

// GCD sets z = gcd(|x|, |y|) and returns z.
func GCD(z, x, y *Z) *Z {
	z.big = bpi.GCD(bpi.New(), nil, nil, x.asBig(), y.asBig())
	z.demote()
	return z
}

// XGCD sets d = gcd(|x|,|y|) and Bezout coefficients s, t with
// d == s*x + t*y, returning d.
func XGCD(d, s, t, x, y *Z) *Z {
	sb, tb := bpi.New(), bpi.New()
	d.big = bpi.GCD(bpi.New(), sb, tb, x.asBig(), y.asBig())
	d.demote()
	s.big = sb
	s.demote()
	t.big = tb
	t.demote()
	return d
}

// LCM sets z = lcm(|x|, |y|) and returns z. lcm(0, y) == 0.
func LCM(z, x, y *Z) *Z {
	if x.IsZero() || y.IsZero() {
		z.SetInt64(0)
		return z
	}
	var g, qx, absX, absY Z
	absX.Abs(x)
	absY.Abs(y)
	GCD(&g, &absX, &absY)
	_ = TDivQ(&qx, &absX, &g)
	z.Mul(&qx, &absY)
	return z
}
