package qx

import (
	"testing"

	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

func poly(vals ...int64) Qx {
	var p Qx
	p.SetCoeffs(vals)
	return p
}

func TestSetCoeffsNormalizesTrailingZeros(t *testing.T) {
	p := poly(1, 2, 0, 0)
	if p.Len() != 2 {
		t.Errorf("length = %d, want 2 after trimming trailing zeros", p.Len())
	}
}

func TestSetCoeffRescalesDenominator(t *testing.T) {
	var p Qx
	p.SetCoeffs([]int64{0, 1})
	var half q.Q
	if err := half.SetString("1/2"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCoeff(2, &half); err != nil {
		t.Fatal(err)
	}
	got := p.GetCoeff(2)
	if got.String() != "1/2" {
		t.Errorf("coeff 2 = %s, want 1/2", got.String())
	}
	if got1 := p.GetCoeff(1); got1.String() != "1" {
		t.Errorf("coeff 1 = %s, want 1 (unaffected by rescale)", got1.String())
	}
}

func TestAddSubCommutativeAssociative(t *testing.T) {
	a := poly(1, 2, 3)
	b := poly(-1, 5, 0, 2)
	var ab, ba Qx
	ab.Add(&a, &b)
	ba.Add(&b, &a)
	if !Equal(&ab, &ba) {
		t.Errorf("addition not commutative: %s != %s", ab.String(), ba.String())
	}

	var diff, back Qx
	diff.Sub(&ab, &b)
	back.Add(&diff, &b)
	if !Equal(&back, &ab) {
		t.Errorf("(a+b)-b+b != a+b: got %s want %s", back.String(), ab.String())
	}
}

func TestMulAliasingSelf(t *testing.T) {
	a := poly(1, 1)
	var result Qx
	result.Set(&a)
	if err := result.Mul(&result, &a); err != nil {
		t.Fatal(err)
	}
	want := poly(1, 2, 1)
	if !Equal(&result, &want) {
		t.Errorf("(1+x)^2 via self-aliased Mul = %s, want %s", result.String(), want.String())
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := poly(1, 2, 3)
	b := poly(0, 1)
	c := poly(5, -1, 2, 1)

	var bc, aTimesBc Qx
	bc.Add(&b, &c)
	if err := aTimesBc.Mul(&a, &bc); err != nil {
		t.Fatal(err)
	}

	var ab, ac, sum Qx
	if err := ab.Mul(&a, &b); err != nil {
		t.Fatal(err)
	}
	if err := ac.Mul(&a, &c); err != nil {
		t.Fatal(err)
	}
	sum.Add(&ab, &ac)

	if !Equal(&aTimesBc, &sum) {
		t.Errorf("a*(b+c) != a*b+a*c: %s != %s", aTimesBc.String(), sum.String())
	}
}

func TestDivRemReconstructs(t *testing.T) {
	a := poly(-1, 0, 1) // x^2 - 1
	b := poly(-1, 1)    // x - 1
	var quot, rem Qx
	if err := DivRem(&quot, &rem, &a, &b); err != nil {
		t.Fatal(err)
	}
	want := poly(1, 1) // x + 1
	if !Equal(&quot, &want) {
		t.Errorf("quotient = %s, want %s", quot.String(), want.String())
	}
	if !rem.IsZero() {
		t.Errorf("remainder = %s, want 0", rem.String())
	}

	var check, recon Qx
	if err := check.Mul(&quot, &b); err != nil {
		t.Fatal(err)
	}
	recon.Add(&check, &rem)
	if !Equal(&recon, &a) {
		t.Errorf("quot*b+rem = %s, want %s", recon.String(), a.String())
	}
}

func TestXGCDBezoutIdentity(t *testing.T) {
	f := poly(-1, 0, 1) // x^2 - 1
	g := poly(-1, 1)    // x - 1
	var d, s, t2 Qx
	XGCD(&d, &s, &t2, &f, &g)

	var sa, tb, sum Qx
	if err := sa.Mul(&s, &f); err != nil {
		t.Fatal(err)
	}
	if err := tb.Mul(&t2, &g); err != nil {
		t.Fatal(err)
	}
	sum.Add(&sa, &tb)
	if !Equal(&sum, &d) {
		t.Errorf("Bezout identity failed: s*f+t*g = %s, want d = %s", sum.String(), d.String())
	}
}

func TestGCDOfSharedFactor(t *testing.T) {
	f := poly(-1, 0, 1) // x^2-1 = (x-1)(x+1)
	g := poly(-1, 1)    // x-1
	var gcd Qx
	gcd.GCD(&f, &g)
	want := poly(-1, 1)
	if !Equal(&gcd, &want) {
		t.Errorf("gcd(x^2-1,x-1) = %s, want x-1 (as %s)", gcd.String(), want.String())
	}
}

func TestEvaluateKnownValue(t *testing.T) {
	p := poly(1, 2, 3) // 1 + 2x + 3x^2
	var x q.Q
	if err := x.SetString("2"); err != nil {
		t.Fatal(err)
	}
	got := p.Evaluate(&x)
	var expect q.Q
	if err := expect.SetString("17"); err != nil { // 1+4+12
		t.Fatal(err)
	}
	if got.String() != expect.String() {
		t.Errorf("p(2) = %s, want 17", got.String())
	}
}

func TestDerivativeAndIntegral(t *testing.T) {
	p := poly(1, 2, 3) // 1 + 2x + 3x^2
	var dp Qx
	dp.Derivative(&p)
	want := poly(2, 6) // 2 + 6x
	if !Equal(&dp, &want) {
		t.Errorf("d/dx(1+2x+3x^2) = %s, want %s", dp.String(), want.String())
	}

	var ip Qx
	ip.Integral(&dp)
	wantIp := poly(0, 2, 3)
	if !Equal(&ip, &wantIp) {
		t.Errorf("integral of derivative = %s, want %s (constant term lost by design)", ip.String(), wantIp.String())
	}
}

func TestRevertSeriesIdentityExample(t *testing.T) {
	var g Qx
	g.SetCoeffs([]int64{0, 1})
	rev, err := RevertSeries(&g, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := poly(0, 1, 0, 0, 0)
	if !Equal(&rev, &want) {
		t.Errorf("revert_series(x,5) = %s, want %s", rev.String(), want.String())
	}
}

func TestRevertSeriesComposeIsIdentity(t *testing.T) {
	var g Qx
	g.SetCoeffs([]int64{0, 1, 1}) // x + x^2
	n := 6
	rev, err := RevertSeries(&g, n)
	if err != nil {
		t.Fatal(err)
	}
	var composed Qx
	if err := composed.ComposeSeries(&g, &rev, n); err != nil {
		t.Fatal(err)
	}
	composed.Truncate(&composed, n)
	var x Qx
	x.SetCoeffs([]int64{0, 1})
	x.Truncate(&x, n)
	if !Equal(&composed, &x) {
		t.Errorf("g(revert(g)) mod x^%d = %s, want x", n, composed.String())
	}
}

func TestComposeMatchesComposeSeriesWithinTruncation(t *testing.T) {
	f := poly(1, 0, 1)    // 1 + x^2
	g := poly(0, 1, 1, 1) // x + x^2 + x^3
	var full Qx
	if err := full.Compose(&f, &g); err != nil {
		t.Fatal(err)
	}
	n := 4
	var truncated Qx
	if err := truncated.ComposeSeries(&f, &g, n); err != nil {
		t.Fatal(err)
	}
	full.Truncate(&full, n)
	if !Equal(&full, &truncated) {
		t.Errorf("compose(f,g) mod x^%d = %s, want %s", n, full.String(), truncated.String())
	}
}

func TestMulBudgetRejectsOversizedProduct(t *testing.T) {
	var huge z.Z
	huge.SetInt64(1)
	huge.Lshift(&huge, 9_000_000)
	var a, b Qx
	a.SetCoeffs([]int64{1})
	a.coeffs[0] = huge
	b.Set(&a)
	var out Qx
	err := out.Mul(&a, &b)
	if err == nil {
		t.Fatal("expected OVERFLOW error for an astronomically large coefficient product")
	}
	if !errs.Is(err, errs.Overflow) {
		t.Errorf("expected an OVERFLOW error, got %v", err)
	}
}

func TestResultantAntisymmetry(t *testing.T) {
	f := poly(-1, 0, 1) // deg 2
	g := poly(-1, 1)    // deg 1
	rfg, err := Resultant(&f, &g)
	if err != nil {
		t.Fatal(err)
	}
	rgf, err := Resultant(&g, &f)
	if err != nil {
		t.Fatal(err)
	}
	// deg(f)*deg(g) = 2, so (-1)^2 = 1: res(f,g) == res(g,f).
	if !q.Equal(&rfg, &rgf) {
		t.Errorf("res(f,g) = %s, res(g,f) = %s, want equal (even degree product)", rfg.String(), rgf.String())
	}
}

func TestResultantSharedRootIsZero(t *testing.T) {
	f := poly(-1, 1)    // x - 1
	g := poly(-1, 0, 1) // x^2 - 1, shares root x=1
	res, err := Resultant(&f, &g)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsZero() {
		t.Errorf("resultant of polynomials with a common root should be 0, got %s", res.String())
	}
}
