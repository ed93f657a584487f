package q

import (
	"testing"

	"github.com/flintlib/flint-sub040/internal/z"
)

func mustQ(t *testing.T, s string) Q {
	t.Helper()
	var q Q
	if err := q.SetString(s); err != nil {
		t.Fatalf("SetString(%q): %v", s, err)
	}
	return q
}

func TestFromFractionCanonicalizes(t *testing.T) {
	var num, den z.Z
	num.SetInt64(6)
	den.SetInt64(-4)
	var r Q
	if err := r.SetFromFraction(&num, &den); err != nil {
		t.Fatal(err)
	}
	want := mustQ(t, "-3/2")
	if !Equal(&r, &want) {
		t.Errorf("from_fraction(6,-4) = %s, want -3/2", r.String())
	}
	if d := r.Den(); d.Sign() <= 0 {
		t.Errorf("denominator not positive: %s", r.String())
	}
}

func TestZeroCanonicalForm(t *testing.T) {
	var num, den z.Z
	num.SetInt64(0)
	den.SetInt64(-7)
	var r Q
	if err := r.SetFromFraction(&num, &den); err != nil {
		t.Fatal(err)
	}
	if r.String() != "0" {
		t.Errorf("zero in canonical form should print as 0, got %s", r.String())
	}
	one := r.Den()
	if one.Int64() != 1 {
		t.Errorf("zero's denominator should canonicalize to 1, got %s", one.String())
	}
}

func TestSetFromFractionZeroDenominator(t *testing.T) {
	var num, den z.Z
	num.SetInt64(1)
	den.SetInt64(0)
	var r Q
	if err := r.SetFromFraction(&num, &den); err == nil {
		t.Fatal("expected error for zero denominator")
	}
}

func TestArithmeticAgainstKnownValues(t *testing.T) {
	a := mustQ(t, "1/2")
	b := mustQ(t, "1/3")
	var sum, diff, prod Q
	sum.Add(&a, &b)
	if want := mustQ(t, "5/6"); !Equal(&sum, &want) {
		t.Errorf("1/2+1/3 = %s, want 5/6", sum.String())
	}
	diff.Sub(&a, &b)
	if want := mustQ(t, "1/6"); !Equal(&diff, &want) {
		t.Errorf("1/2-1/3 = %s, want 1/6", diff.String())
	}
	prod.Mul(&a, &b)
	if want := mustQ(t, "1/6"); !Equal(&prod, &want) {
		t.Errorf("1/2*1/3 = %s, want 1/6", prod.String())
	}
	var quot Q
	if err := quot.Div(&a, &b); err != nil {
		t.Fatal(err)
	}
	if want := mustQ(t, "3/2"); !Equal(&quot, &want) {
		t.Errorf("(1/2)/(1/3) = %s, want 3/2", quot.String())
	}
}

func TestInvRoundTrip(t *testing.T) {
	vals := []string{"1/2", "-3/7", "5", "-1", "22/7"}
	for _, s := range vals {
		a := mustQ(t, s)
		var inv, back Q
		if err := inv.Inv(&a); err != nil {
			t.Fatal(err)
		}
		if err := back.Inv(&inv); err != nil {
			t.Fatal(err)
		}
		if !Equal(&a, &back) {
			t.Errorf("inv(inv(%s)) = %s, want %s", s, back.String(), s)
		}
	}
}

func TestDivByZero(t *testing.T) {
	a := mustQ(t, "1/2")
	var zero, out Q
	if err := out.Div(&a, &zero); err == nil {
		t.Fatal("expected DOMAIN error dividing by zero")
	}
}

func TestPowNegativeExponent(t *testing.T) {
	a := mustQ(t, "2/3")
	var out Q
	if err := out.Pow(&a, -2); err != nil {
		t.Fatal(err)
	}
	want := mustQ(t, "9/4")
	if !Equal(&out, &want) {
		t.Errorf("(2/3)^-2 = %s, want 9/4", out.String())
	}
}

func TestPowZeroToNegative(t *testing.T) {
	var zero, out Q
	if err := out.Pow(&zero, -1); err == nil {
		t.Fatal("expected DOMAIN error for 0^-1")
	}
}

func TestLCMConsistentWithGCD(t *testing.T) {
	a := mustQ(t, "4/9")
	b := mustQ(t, "6/15")
	var g, l, prod, check Q
	g.GCD(&a, &b)
	l.LCM(&a, &b)
	prod.Mul(&g, &l)
	check.Mul(&a, &b)
	check.num.Abs(&check.num)
	if !Equal(&prod, &check) {
		t.Errorf("gcd*lcm = %s, want |a*b| = %s", prod.String(), check.String())
	}
}

func TestCmpTotalOrder(t *testing.T) {
	vals := []string{"-3/2", "-1", "0", "1/3", "1/2", "2", "22/7"}
	for i := 0; i < len(vals); i++ {
		for j := 0; j < len(vals); j++ {
			a := mustQ(t, vals[i])
			b := mustQ(t, vals[j])
			got := Cmp(&a, &b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Cmp(%s,%s) = %d, want %d", vals[i], vals[j], got, want)
			}
		}
	}
}

func TestReconstructFromResidueKnown(t *testing.T) {
	p := mustQ(t, "-3/2")
	var m z.Z
	m.SetInt64(101)
	var num, den z.Z
	num.Set(&p.num)
	den.Set(&p.den)
	var denInv z.Z
	if err := z.ModInverse(&denInv, &den, &m); err != nil {
		t.Fatal(err)
	}
	var a z.Z
	a.Mul(&num, &denInv)
	_ = z.Mod(&a, &a, &m)

	got, ok := ReconstructFromResidue(&a, &m)
	if !ok {
		t.Fatal("expected successful reconstruction")
	}
	if !Equal(&got, &p) {
		t.Errorf("reconstructed %s, want -3/2", got.String())
	}
}

func TestSqrtExactAndInexact(t *testing.T) {
	a := mustQ(t, "9/4")
	var root Q
	exact, err := root.Sqrt(&a)
	if err != nil {
		t.Fatal(err)
	}
	if !exact {
		t.Fatal("sqrt(9/4) should be exact")
	}
	want := mustQ(t, "3/2")
	if !Equal(&root, &want) {
		t.Errorf("sqrt(9/4) = %s, want 3/2", root.String())
	}

	b := mustQ(t, "2")
	var inexact Q
	exact, err = inexact.Sqrt(&b)
	if err != nil {
		t.Fatal(err)
	}
	if exact {
		t.Error("sqrt(2) should not be exact")
	}
}

func TestSqrtNegativeIsDomainError(t *testing.T) {
	a := mustQ(t, "-1")
	var out Q
	if _, err := out.Sqrt(&a); err == nil {
		t.Fatal("expected DOMAIN error for sqrt of a negative value")
	}
}

func TestScaleByPow2RoundTrip(t *testing.T) {
	a := mustQ(t, "3/7")
	var scaled, back Q
	scaled.ScaleByPow2(&a, 5)
	back.ScaleByPow2(&scaled, -5)
	if !Equal(&a, &back) {
		t.Errorf("ScaleByPow2 round trip: got %s, want %s", back.String(), a.String())
	}
}

func TestFromContinuedFractionGoldenRatioApprox(t *testing.T) {
	ones := make([]z.Z, 8)
	for i := range ones {
		ones[i].SetInt64(1)
	}
	got, err := FromContinuedFraction(ones)
	if err != nil {
		t.Fatal(err)
	}
	want := mustQ(t, "34/21")
	if !Equal(&got, &want) {
		t.Errorf("cf([1,1,1,1,1,1,1,1]) = %s, want 34/21", got.String())
	}
}
