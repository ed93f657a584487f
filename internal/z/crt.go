package z

import (
	"github.com/flintlib/flint-sub040/internal/errs"
)

// CRT combines residues r1 mod m1 and r2 mod m2 (gcd(m1, m2) == 1)
// into the unique residue mod m1*m2 (spec §4.1.1). When signed is
// false the result lies in [0, m1*m2); when true, it is placed in the
// symmetric range (-m1*m2/2, m1*m2/2] by picking whichever of the
// non-symmetric result or that result minus m1*m2 has the smaller
// magnitude, ties resolving toward the non-symmetric representative.
func CRT(out, r1, m1, r2, m2 *Z, signed bool) error {
	var g, inv Z
	GCD(&g, m1, m2)
	one := Z{}
	one.SetInt64(1)
	if !Equal(&g, &one) {
		return errs.NewDomain(errs.Op{Name: "Z.CRT"}, "moduli %s and %s are not coprime", m1.String(), m2.String())
	}
	if err := ModInverse(&inv, m1, m2); err != nil {
		return errs.NewDomain(errs.Op{Name: "Z.CRT"}, "m1 not invertible mod m2")
	}
	var m1m2 Z
	m1m2.Mul(m1, m2)
	return crtCombine(out, r1, m1, r2, m2, &m1m2, &inv, signed)
}

// CRTPrecomp is the specialized path for precomputed m1*m2 and
// m1^{-1} mod m2 (spec §4.1.1): it must not recompute either.
func CRTPrecomp(out, r1, m1, r2, m2, m1m2, m1Inv *Z, signed bool) error {
	return crtCombine(out, r1, m1, r2, m2, m1m2, m1Inv, signed)
}

func crtCombine(out, r1, m1, r2, m2, m1m2, m1Inv *Z, signed bool) error {
	var diff, t, nonsym, r1m, result Z
	diff.Sub(r2, r1)
	if err := Mod(&t, &diff, m2); err != nil {
		return err
	}
	t.Mul(&t, m1Inv)
	if err := Mod(&t, &t, m2); err != nil {
		return err
	}
	r1m.Mul(m1, &t)
	nonsym.Add(r1, &r1m)
	if err := Mod(&nonsym, &nonsym, m1m2); err != nil {
		return err
	}
	if !signed {
		result.Set(&nonsym)
		out.Set(&result)
		return nil
	}
	var alt, twiceNonsym, twiceAlt Z
	alt.Sub(&nonsym, m1m2)
	// compare |nonsym| vs |alt|; tie -> non-symmetric representative.
	twiceNonsym.Abs(&nonsym)
	twiceAlt.Abs(&alt)
	if CmpAbs(&twiceAlt, &twiceNonsym) < 0 {
		out.Set(&alt)
	} else {
		out.Set(&nonsym)
	}
	return nil
}
