package q

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/z"
)

// ReconstructFromResidue finds p/q with gcd(den, m) == 1, gcd(p, den)
// == 1 and 2*max(|p|, den)^2 <= m such that p/den == a (mod m), using
// the half-extended Euclidean algorithm on (m, a) terminated once
// 2*v_k^2 <= m (spec §4.2, property P8). It returns (result, true) on
// success, or (zero, false) if no such rational exists.
func ReconstructFromResidue(a, m *z.Z) (Q, bool) {
	if m.Sign() <= 0 {
		return Q{}, false
	}
	var r0, r1, s0, s1 z.Z
	r0.Set(m)
	r1.Set(a)
	if err := z.Mod(&r1, &r1, m); err != nil {
		return Q{}, false
	}
	s0.SetInt64(0)
	s1.SetInt64(1)

	bound := boundCheck(m)

	for {
		if bound(&r1, &s1) {
			break
		}
		if r1.IsZero() {
			return Q{}, false
		}
		var quot, rem z.Z
		if err := z.FDivQR(&quot, &rem, &r0, &r1); err != nil {
			return Q{}, false
		}
		var qs1, newS z.Z
		qs1.Mul(&quot, &s1)
		newS.Sub(&s0, &qs1)

		r0, r1 = r1, rem
		s0, s1 = s1, newS
	}

	p, den := r1, s1
	if den.Sign() < 0 {
		p.Neg(&p)
		den.Neg(&den)
	}
	var g1, g2 z.Z
	z.GCD(&g1, &p, &den)
	one := z.Z{}
	one.SetInt64(1)
	if !z.Equal(&g1, &one) {
		return Q{}, false
	}
	z.GCD(&g2, &den, m)
	if !z.Equal(&g2, &one) {
		return Q{}, false
	}

	var result Q
	if err := result.SetFromFraction(&p, &den); err != nil {
		return Q{}, false
	}
	return result, true
}

// boundCheck returns a predicate testing 2*max(|r|,|s|)^2 <= m.
func boundCheck(m *z.Z) func(r, s *z.Z) bool {
	return func(r, s *z.Z) bool {
		var ar, as, mx, sq, two, lhs z.Z
		ar.Abs(r)
		as.Abs(s)
		if z.Cmp(&ar, &as) >= 0 {
			mx.Set(&ar)
		} else {
			mx.Set(&as)
		}
		sq.Mul(&mx, &mx)
		two.SetInt64(2)
		lhs.Mul(&two, &sq)
		return z.Cmp(&lhs, m) <= 0
	}
}

// FromContinuedFraction builds the rational value of the continued
// fraction [a0; a1, a2, ..., a_{n-1}] via the standard convergent
// recurrence: h_{-1}=1, h_{-2}=0, k_{-1}=0, k_{-2}=1,
// h_i = a_i*h_{i-1} + h_{i-2}, k_i = a_i*k_{i-1} + k_{i-2}.
func FromContinuedFraction(a []z.Z) (Q, error) {
	if len(a) == 0 {
		return Q{}, errs.NewDomain(errs.Op{Name: "Q.FromContinuedFraction"}, "empty term list")
	}
	hPrev2, hPrev1 := z.Z{}, z.Z{}
	hPrev1.SetInt64(1)
	kPrev2, kPrev1 := z.Z{}, z.Z{}
	kPrev2.SetInt64(1)
	hPrev2.SetInt64(0)
	kPrev1.SetInt64(0)

	h, k := hPrev1, kPrev1
	for i, ai := range a {
		if i == 0 {
			h.Set(&ai)
			k.SetInt64(1)
			hPrev2.SetInt64(1)
			kPrev2.SetInt64(0)
			hPrev1 = h
			kPrev1 = k
			continue
		}
		var th, tk, m1, m2 z.Z
		m1.Mul(&ai, &hPrev1)
		th.Add(&m1, &hPrev2)
		m2.Mul(&ai, &kPrev1)
		tk.Add(&m2, &kPrev2)
		hPrev2, hPrev1 = hPrev1, th
		kPrev2, kPrev1 = kPrev1, tk
		h, k = th, tk
	}
	var result Q
	if err := result.SetFromFraction(&h, &k); err != nil {
		return Q{}, err
	}
	return result, nil
}
