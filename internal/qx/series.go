package qx

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

// Evaluate returns f(x) for x in Q.
func (p *Qx) Evaluate(x *q.Q) q.Q {
	var result q.Q
	for i := p.length - 1; i >= 0; i-- {
		result.Mul(&result, x)
		c := p.GetCoeff(i)
		result.Add(&result, &c)
	}
	return result
}

// Derivative sets p = f' (the formal derivative of f).
func (p *Qx) Derivative(f *Qx) *Qx {
	if f.length <= 1 {
		p.Clear()
		p.den.SetInt64(1)
		return p
	}
	out := Qx{}
	out.den.SetInt64(1)
	for i := 1; i < f.length; i++ {
		c := f.GetCoeff(i)
		iQ := intQ(i)
		var scaled q.Q
		scaled.Mul(&c, &iQ)
		if scaled.IsZero() {
			continue
		}
		_ = out.SetCoeff(i-1, &scaled)
	}
	out.Canonicalize()
	p.Set(&out)
	return p
}

// Integral sets p to the formal antiderivative of f with zero
// constant term.
func (p *Qx) Integral(f *Qx) *Qx {
	out := Qx{}
	out.den.SetInt64(1)
	for i := 0; i < f.length; i++ {
		c := f.GetCoeff(i)
		if c.IsZero() {
			continue
		}
		iQ := intQ(i + 1)
		var scaled q.Q
		_ = scaled.Div(&c, &iQ)
		_ = out.SetCoeff(i+1, &scaled)
	}
	out.Canonicalize()
	p.Set(&out)
	return p
}

// Compose sets p = f(g), the full (non-truncated) functional
// composition, via Horner's rule in g. It reports an OVERFLOW error,
// leaving p unchanged, if an intermediate power of g exceeds the
// multiply size budget (spec §4.5) — callers needing a bounded result
// should prefer ComposeSeries.
func (p *Qx) Compose(f, g *Qx) error {
	result := Qx{}
	result.den.SetInt64(1)
	for i := f.length - 1; i >= 0; i-- {
		if err := result.Mul(&result, g); err != nil {
			return err
		}
		c := f.GetCoeff(i)
		var cPoly Qx
		cPoly.den.SetInt64(1)
		if !c.IsZero() {
			_ = cPoly.SetCoeff(0, &c)
		}
		result.Add(&result, &cPoly)
	}
	p.Set(&result)
	return nil
}

// ComposeSeries sets p = f(g) mod x^n, requiring g(0) == 0 so the
// truncated Horner evaluation stays well-defined coefficient by
// coefficient.
func (p *Qx) ComposeSeries(f, g *Qx, n int) error {
	zero := g.GetCoeff(0)
	if !zero.IsZero() {
		return errs.NewDomain(op("ComposeSeries"), "g(0) must be zero")
	}
	result := Qx{}
	result.den.SetInt64(1)
	for i := f.length - 1; i >= 0; i-- {
		if err := result.MulLow(&result, g, n); err != nil {
			return err
		}
		c := f.GetCoeff(i)
		if !c.IsZero() {
			var cPoly Qx
			cPoly.den.SetInt64(1)
			_ = cPoly.SetCoeff(0, &c)
			result.AddSeries(&result, &cPoly, n)
		}
	}
	p.Set(&result)
	p.Truncate(p, n)
	return nil
}

// RevertSeries returns the compositional inverse of g modulo x^n:
// compose(g, revert(g, n), n) == x (mod x^n) (spec §4.3.4, property
// P12). Requires g(0) == 0 and g'(0) != 0. Computed by Newton
// iteration on the inversion functional equation doubling the number
// of correct coefficients each step, the practical equivalent of the
// spec's Lagrange-inversion formulation at the sizes this core
// targets.
func RevertSeries(g *Qx, n int) (Qx, error) {
	var result Qx
	if n <= 1 {
		result.den.SetInt64(1)
		return result, nil
	}
	c0 := g.GetCoeff(0)
	if !c0.IsZero() {
		return result, errs.NewDomain(errs.Op{Name: "Qx.RevertSeries"}, "g(0) must be zero")
	}
	c1 := g.GetCoeff(1)
	if c1.IsZero() {
		return result, errs.NewDomain(errs.Op{Name: "Qx.RevertSeries"}, "g'(0) must be nonzero")
	}

	// h0 = x / g1, the unique degree-1 solution.
	var inv1 q.Q
	if err := inv1.Inv(&c1); err != nil {
		return result, err
	}
	h := Qx{}
	h.den.SetInt64(1)
	_ = h.SetCoeff(1, &inv1)

	for prec := 2; prec < 2*n; prec *= 2 {
		m := prec
		if m > n {
			m = n
		}
		// Newton step: h_{k+1} = h_k - (g(h_k) - x) / g'(h_k), all
		// truncated mod x^m.
		var gh Qx
		if err := gh.ComposeSeries(g, &h, m); err != nil {
			return result, err
		}
		var xPoly Qx
		xPoly.SetCoeffs([]int64{0, 1})
		var diff Qx
		diff.SubSeries(&gh, &xPoly, m)

		var gPrime Qx
		gPrime.Derivative(g)
		var gPrimeAtH Qx
		if err := gPrimeAtH.ComposeSeries(&gPrime, &h, m); err != nil {
			return result, err
		}
		// gPrimeAtH(0) == g1 != 0, so it is invertible as a power
		// series; obtain its series inverse via Newton too.
		ginv, err := seriesInverse(&gPrimeAtH, m)
		if err != nil {
			return result, err
		}
		var correction Qx
		if err := correction.MulLow(&diff, &ginv, m); err != nil {
			return result, err
		}
		var next Qx
		next.SubSeries(&h, &correction, m)
		h = next
		if m == n {
			break
		}
	}
	h.Truncate(&h, n)
	result.Set(&h)
	return result, nil
}

// seriesInverse returns the power-series inverse of f modulo x^n,
// requiring f(0) != 0, via Newton iteration doubling precision each
// step: u_{k+1} = u_k*(2 - f*u_k).
func seriesInverse(f *Qx, n int) (Qx, error) {
	var result Qx
	c0 := f.GetCoeff(0)
	if c0.IsZero() {
		return result, errs.NewDomain(errs.Op{Name: "Qx.seriesInverse"}, "f(0) must be nonzero")
	}
	var inv0 q.Q
	if err := inv0.Inv(&c0); err != nil {
		return result, err
	}
	u := Qx{}
	u.den.SetInt64(1)
	_ = u.SetCoeff(0, &inv0)

	two := Qx{}
	two.SetCoeffs([]int64{2})

	for prec := 1; prec < 2*n; prec *= 2 {
		m := prec * 2
		if m > n {
			m = n
		}
		var fu Qx
		if err := fu.MulLow(f, &u, m); err != nil {
			return result, err
		}
		var twoMinusFu Qx
		twoMinusFu.SubSeries(&two, &fu, m)
		var next Qx
		if err := next.MulLow(&u, &twoMinusFu, m); err != nil {
			return result, err
		}
		u = next
		if m == n {
			break
		}
	}
	u.Truncate(&u, n)
	result.Set(&u)
	return result, nil
}

// intQ returns the rational value of the plain integer n.
func intQ(n int) q.Q {
	var zz z.Z
	zz.SetInt64(int64(n))
	var out q.Q
	out.SetFromInt(&zz)
	return out
}
