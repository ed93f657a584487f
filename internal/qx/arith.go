package qx

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

// Add sets p = a + b via common-denominator cross-multiplication,
// then canonicalizes (spec §4.3.2).
func (p *Qx) Add(a, b *Qx) *Qx {
	return p.addOrSub(a, b, false)
}

// Sub sets p = a - b.
func (p *Qx) Sub(a, b *Qx) *Qx {
	return p.addOrSub(a, b, true)
}

func (p *Qx) addOrSub(a, b *Qx, negateB bool) *Qx {
	n := maxInt(a.length, b.length)
	result := make([]z.Z, n)
	aDen, bDen := a.Den(), b.Den()
	var commonDen z.Z
	commonDen.Mul(&aDen, &bDen)
	for i := 0; i < n; i++ {
		var ca, cb, termA, termB z.Z
		if i < a.length {
			ca.Set(&a.coeffs[i])
		}
		if i < b.length {
			cb.Set(&b.coeffs[i])
		}
		termA.Mul(&ca, &bDen)
		termB.Mul(&cb, &aDen)
		if negateB {
			result[i].Sub(&termA, &termB)
		} else {
			result[i].Add(&termA, &termB)
		}
	}
	p.fit(n)
	for i := 0; i < n; i++ {
		p.coeffs[i].Set(&result[i])
	}
	for i := n; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = n
	p.den.Set(&commonDen)
	p.Canonicalize()
	return p
}

// Neg sets p = -a.
func (p *Qx) Neg(a *Qx) *Qx {
	p.fit(a.length)
	for i := 0; i < a.length; i++ {
		p.coeffs[i].Neg(&a.coeffs[i])
	}
	for i := a.length; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = a.length
	p.den.Set(&a.den)
	return p
}

// ScalarMulZ sets p = a * c for an integer scalar c.
func (p *Qx) ScalarMulZ(a *Qx, c *z.Z) *Qx {
	p.fit(a.length)
	for i := 0; i < a.length; i++ {
		p.coeffs[i].Mul(&a.coeffs[i], c)
	}
	for i := a.length; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = a.length
	p.den.Set(&a.den)
	p.Canonicalize()
	return p
}

// ScalarMulQ sets p = a * c for a rational scalar c.
func (p *Qx) ScalarMulQ(a *Qx, c *q.Q) *Qx {
	cnum := c.Num()
	cden := c.Den()
	p.ScalarMulZ(a, &cnum)
	p.den.Mul(&p.den, &cden)
	p.Canonicalize()
	return p
}

// ScalarDivQ sets p = a / c for a nonzero rational scalar c.
func (p *Qx) ScalarDivQ(a *Qx, c *q.Q) error {
	if c.IsZero() {
		return errs.NewDomain(op("ScalarDivQ"), "division by zero scalar")
	}
	var inv q.Q
	if err := inv.Inv(c); err != nil {
		return err
	}
	p.ScalarMulQ(a, &inv)
	return nil
}

// Mul sets p = a * b: the numerator is the integer-polynomial
// product, the denominator is den(a)*den(b), then canonicalizes (spec
// §4.3.2). It reports an OVERFLOW error, leaving p unchanged, when the
// projected coefficient size exceeds the dispatch layer's size budget
// (spec §4.5) instead of building an unbounded result.
func (p *Qx) Mul(a, b *Qx) error {
	if err := checkMulBudget(op("Mul"), a.coeffs[:a.length], b.coeffs[:b.length]); err != nil {
		return err
	}
	prod := integerMul(a.coeffs[:a.length], b.coeffs[:b.length])
	p.fit(len(prod))
	for i := range prod {
		p.coeffs[i].Set(&prod[i])
	}
	for i := len(prod); i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = len(prod)
	p.den.Mul(&a.den, &b.den)
	p.Canonicalize()
	return nil
}

// integerMul returns the schoolbook convolution of two integer
// coefficient vectors, trimmed of trailing zeros.
func integerMul(a, b []z.Z) []z.Z {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]z.Z, len(a)+len(b)-1)
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			if b[j].IsZero() {
				continue
			}
			out[i+j].AddMul(&a[i], &b[j])
		}
	}
	for len(out) > 0 && out[len(out)-1].IsZero() {
		out = out[:len(out)-1]
	}
	return out
}

// MulLow sets p to the first n coefficients of a*b (spec §4.3.2). When
// both a and b are integer polynomials (den == 1) it truncates the
// integer convolution directly; otherwise it clears denominators,
// multiplies truncated, and reattaches the denominator product. Like
// Mul, it refuses with an OVERFLOW error rather than exceed the
// dispatch layer's size budget (spec §4.5).
func (p *Qx) MulLow(a, b *Qx, n int) error {
	if n <= 0 {
		p.Clear()
		p.den.SetInt64(1)
		return nil
	}
	aLen := minInt(a.length, n)
	bLen := minInt(b.length, n)
	if err := checkMulBudget(op("MulLow"), a.coeffs[:aLen], b.coeffs[:bLen]); err != nil {
		return err
	}
	prod := truncatedMul(a.coeffs[:aLen], b.coeffs[:bLen], n)
	p.fit(len(prod))
	for i := range prod {
		p.coeffs[i].Set(&prod[i])
	}
	for i := len(prod); i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = len(prod)
	p.den.Mul(&a.den, &b.den)
	p.Canonicalize()
	return nil
}

func truncatedMul(a, b []z.Z, n int) []z.Z {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	m := n
	if len(a)+len(b)-1 < m {
		m = len(a) + len(b) - 1
	}
	out := make([]z.Z, m)
	for i := range a {
		if i >= m || a[i].IsZero() {
			continue
		}
		maxJ := m - i
		if maxJ > len(b) {
			maxJ = len(b)
		}
		for j := 0; j < maxJ; j++ {
			if b[j].IsZero() {
				continue
			}
			out[i+j].AddMul(&a[i], &b[j])
		}
	}
	for len(out) > 0 && out[len(out)-1].IsZero() {
		out = out[:len(out)-1]
	}
	return out
}

// Pow sets p = a^n for n >= 0 via binary exponentiation.
func (p *Qx) Pow(a *Qx, n int) error {
	if n < 0 {
		return errs.NewDomain(op("Pow"), "negative exponent %d", n)
	}
	result := Qx{}
	result.SetCoeffs([]int64{1})
	base := Qx{}
	base.Set(a)
	for n > 0 {
		if n&1 == 1 {
			if err := result.Mul(&result, &base); err != nil {
				return err
			}
		}
		if n > 1 {
			if err := base.Mul(&base, &base); err != nil {
				return err
			}
		}
		n >>= 1
	}
	p.Set(&result)
	return nil
}

// AddSeries sets p = truncate(a+b, n) without allocating beyond n.
func (p *Qx) AddSeries(a, b *Qx, n int) *Qx {
	var ta, tb Qx
	ta.Truncate(a, n)
	tb.Truncate(b, n)
	return p.Add(&ta, &tb)
}

// SubSeries sets p = truncate(a-b, n) without allocating beyond n.
func (p *Qx) SubSeries(a, b *Qx, n int) *Qx {
	var ta, tb Qx
	ta.Truncate(a, n)
	tb.Truncate(b, n)
	return p.Sub(&ta, &tb)
}

// Truncate sets p = a mod x^n (the first n coefficients of a).
func (p *Qx) Truncate(a *Qx, n int) *Qx {
	if n < 0 {
		n = 0
	}
	l := minInt(a.length, n)
	tmp := make([]z.Z, l)
	for i := 0; i < l; i++ {
		tmp[i].Set(&a.coeffs[i])
	}
	p.fit(l)
	for i := 0; i < l; i++ {
		p.coeffs[i].Set(&tmp[i])
	}
	for i := l; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	den := a.den
	p.length = l
	p.den.Set(&den)
	p.Canonicalize()
	return p
}

// Reverse sets p(x) = x^(len-1) * a(1/x): reverses the coefficient
// order, using length (not a caller-supplied degree bound).
func (p *Qx) Reverse(a *Qx) *Qx {
	l := a.length
	tmp := make([]z.Z, l)
	for i := 0; i < l; i++ {
		tmp[i].Set(&a.coeffs[l-1-i])
	}
	p.fit(l)
	for i := 0; i < l; i++ {
		p.coeffs[i].Set(&tmp[i])
	}
	for i := l; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = l
	p.den.Set(&a.den)
	p.Canonicalize()
	return p
}

// ShiftLeft sets p = a * x^k.
func (p *Qx) ShiftLeft(a *Qx, k int) *Qx {
	if k < 0 {
		panic("qx: ShiftLeft requires k >= 0")
	}
	l := a.length + k
	tmp := make([]z.Z, l)
	for i := 0; i < a.length; i++ {
		tmp[i+k].Set(&a.coeffs[i])
	}
	p.fit(l)
	for i := 0; i < l; i++ {
		p.coeffs[i].Set(&tmp[i])
	}
	for i := l; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = l
	p.den.Set(&a.den)
	p.Canonicalize()
	return p
}

// ShiftRight sets p = a div x^k (drops the low k coefficients).
func (p *Qx) ShiftRight(a *Qx, k int) *Qx {
	if k < 0 {
		panic("qx: ShiftRight requires k >= 0")
	}
	if k >= a.length {
		p.Clear()
		p.den.SetInt64(1)
		return p
	}
	l := a.length - k
	tmp := make([]z.Z, l)
	for i := 0; i < l; i++ {
		tmp[i].Set(&a.coeffs[i+k])
	}
	p.fit(l)
	for i := 0; i < l; i++ {
		p.coeffs[i].Set(&tmp[i])
	}
	for i := l; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = l
	p.den.Set(&a.den)
	p.Canonicalize()
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
