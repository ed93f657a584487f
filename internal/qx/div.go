package qx

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/q"
)

// DivRem computes the Euclidean quotient and remainder of a by b over
// Q[x]: a == quot*b + rem with deg(rem) < deg(b). Reports a DOMAIN
// error if b == 0 (spec §4.3.2).
func DivRem(quot, rem *Qx, a, b *Qx) error {
	if b.IsZero() {
		return errs.NewDomain(op("DivRem"), "division by zero polynomial")
	}
	degB := b.Degree()
	lcB := b.GetCoeff(degB)

	// Work over plain []q.Q to keep the long-division arithmetic
	// simple and exact; the result is folded back into Qx's shared-
	// denominator form via SetCoeff, which performs its own
	// canonicalizing rescale.
	remCoeffs := make([]q.Q, a.length)
	for i := 0; i < a.length; i++ {
		remCoeffs[i] = a.GetCoeff(i)
	}
	degRem := a.Degree()

	quotCoeffs := map[int]q.Q{}

	for degRem >= degB && !allZero(remCoeffs[:degRem+1]) {
		for degRem >= 0 && remCoeffs[degRem].IsZero() {
			degRem--
		}
		if degRem < degB {
			break
		}
		lcRem := remCoeffs[degRem]
		var factor q.Q
		if err := factor.Div(&lcRem, &lcB); err != nil {
			return err
		}
		shift := degRem - degB
		quotCoeffs[shift] = factor
		for i := 0; i <= degB; i++ {
			bc := b.GetCoeff(i)
			var term q.Q
			term.Mul(&factor, &bc)
			var newVal q.Q
			newVal.Sub(&remCoeffs[shift+i], &term)
			remCoeffs[shift+i] = newVal
		}
		degRem--
	}

	quot.Clear()
	quot.den.SetInt64(1)
	for shift, c := range quotCoeffs {
		if c.IsZero() {
			continue
		}
		if err := quot.SetCoeff(shift, &c); err != nil {
			return err
		}
	}
	quot.Canonicalize()

	rem.Clear()
	rem.den.SetInt64(1)
	for i, c := range remCoeffs {
		if c.IsZero() {
			continue
		}
		if err := rem.SetCoeff(i, &c); err != nil {
			return err
		}
	}
	rem.Canonicalize()
	return nil
}

func allZero(cs []q.Q) bool {
	for i := range cs {
		if !cs[i].IsZero() {
			return false
		}
	}
	return true
}

// Div sets p = a/b, the polynomial quotient over Q (spec §4.3.2).
func (p *Qx) Div(a, b *Qx) error {
	var quot, rem Qx
	if err := DivRem(&quot, &rem, a, b); err != nil {
		return err
	}
	p.Set(&quot)
	return nil
}
