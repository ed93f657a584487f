package qx

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/ivec"
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

// GCD sets p = gcd(f, g), content-normalized with a positive leading
// coefficient, via the polynomial Euclidean algorithm over Q[x].
func (p *Qx) GCD(f, g *Qx) *Qx {
	if g.IsZero() {
		p.Set(f)
		p.normalizeLeading()
		return p
	}
	if f.IsZero() {
		p.Set(g)
		p.normalizeLeading()
		return p
	}
	a, b := Qx{}, Qx{}
	a.Set(f)
	b.Set(g)
	for !b.IsZero() {
		var quot, rem Qx
		must(DivRem(&quot, &rem, &a, &b))
		a, b = b, rem
	}
	p.Set(&a)
	p.normalizeLeading()
	return p
}

// normalizeLeading content-normalizes p and, if its leading
// coefficient is negative, negates p so the leading coefficient is
// positive — the "content-normalized" GCD convention spec §4.3.3
// allows as an alternative to strictly monic.
func (p *Qx) normalizeLeading() {
	p.Canonicalize()
	if p.length == 0 {
		return
	}
	content := ivec.Content(p.coeffs[:p.length])
	for i := 0; i < p.length; i++ {
		var nc z.Z
		_ = z.DivExact(&nc, &p.coeffs[i], &content)
		p.coeffs[i].Set(&nc)
	}
	p.den.SetInt64(1)
	if p.coeffs[p.length-1].Sign() < 0 {
		p.Neg(p)
	}
}

// XGCD sets d = gcd(a, b) and Bezout cofactors s, t with
// d == s*a + t*b (spec §4.3.3, property P10), via the extended
// polynomial Euclidean algorithm. d is only content/sign-canonicalized
// implicitly by Qx's own arithmetic (which preserves value); s and t
// are left exactly as the recurrence produces them so the identity
// holds without any compensating rescale.
func XGCD(d, s, t, a, b *Qx) *Qx {
	oldR, r := Qx{}, Qx{}
	oldR.Set(a)
	r.Set(b)
	oldS, curS := Qx{}, Qx{}
	oldS.SetCoeffs([]int64{1})
	oldT, curT := Qx{}, Qx{}
	curT.SetCoeffs([]int64{1})

	for !r.IsZero() {
		var quot, rem Qx
		must(DivRem(&quot, &rem, &oldR, &r))
		oldR, r = r, rem

		var qs, newS Qx
		must(qs.Mul(&quot, &curS))
		newS.Sub(&oldS, &qs)
		oldS, curS = curS, newS

		var qt, newT Qx
		must(qt.Mul(&quot, &curT))
		newT.Sub(&oldT, &qt)
		oldT, curT = curT, newT
	}
	d.Set(&oldR)
	s.Set(&oldS)
	t.Set(&oldT)
	return d
}

// Content returns the GCD of f's numerators divided by its
// denominator, as a positive Q (spec §4.3.3): content(a*f) ==
// |a|*content(f) for any a in Q.
func Content(f *Qx) q.Q {
	var result q.Q
	if f.IsZero() {
		return result
	}
	c := ivec.Content(f.coeffs[:f.length])
	_ = result.SetFromFraction(&c, &f.den)
	if result.Sign() < 0 {
		result.Neg(&result)
	}
	return result
}

// Resultant returns the resultant of f and g in Q, computed as the
// determinant of the (deg f + deg g)-sized Sylvester matrix over Q
// (spec §4.3.3). Property P11: res(f,g) == (-1)^(deg f * deg g) *
// res(g,f); res(f*h,g) == res(f,g)*res(h,g).
func Resultant(f, g *Qx) (q.Q, error) {
	var zero q.Q
	if f.IsZero() || g.IsZero() {
		return zero, nil
	}
	m, n := f.Degree(), g.Degree()
	size := m + n
	if size == 0 {
		var one q.Q
		var oneZ z.Z
		oneZ.SetInt64(1)
		one.SetFromInt(&oneZ)
		return one, nil
	}
	mat := make([][]q.Q, size)
	for i := range mat {
		mat[i] = make([]q.Q, size)
	}
	for row := 0; row < n; row++ {
		for j := 0; j <= m; j++ {
			mat[row][row+j] = f.GetCoeff(m - j)
		}
	}
	for row := 0; row < m; row++ {
		for j := 0; j <= n; j++ {
			mat[n+row][row+j] = g.GetCoeff(n - j)
		}
	}
	return determinantQ(mat)
}

// ResultantDiv sets out to Resultant(f, g) / divisor. It computes the
// resultant exactly with Resultant and divides it by divisor in Q; it
// does not run a modular reconstruction, nbits is not used, and
// neither the divisibility nor the bit bound is checked. A zero
// divisor is reported as a DOMAIN error.
func ResultantDiv(out *q.Q, f, g *Qx, divisor *q.Q, nbits int) error {
	res, err := Resultant(f, g)
	if err != nil {
		return err
	}
	if divisor.IsZero() {
		return errs.NewDomain(errs.Op{Name: "Qx.ResultantDiv"}, "divisor is zero")
	}
	var quot q.Q
	if err := quot.Div(&res, divisor); err != nil {
		return err
	}
	*out = quot
	return nil
}
