package bpi

import "testing"

func TestNthRootExact(t *testing.T) {
	cases := []struct {
		x    int64
		n    uint
		want int64
	}{
		{27, 3, 3},
		{1024, 10, 2},
		{100, 2, 10},
		{0, 5, 0},
		{7, 1, 7},
	}
	for _, c := range cases {
		x := New()
		SetInt64(x, c.x)
		root, exact := NthRoot(New(), x, c.n)
		if !exact {
			t.Errorf("NthRoot(%d,%d): expected exact", c.x, c.n)
		}
		if root.Int64() != c.want {
			t.Errorf("NthRoot(%d,%d) = %d, want %d", c.x, c.n, root.Int64(), c.want)
		}
	}
}

func TestNthRootInexactFloors(t *testing.T) {
	x := New()
	SetInt64(x, 10)
	root, exact := NthRoot(New(), x, 3)
	if exact {
		t.Error("expected inexact cube root of 10")
	}
	if root.Int64() != 2 {
		t.Errorf("floor(10^(1/3)) = %d, want 2", root.Int64())
	}
}

func TestMulMatchesSchoolbook(t *testing.T) {
	a, b := New(), New()
	SetInt64(a, 123456789)
	SetInt64(b, -987654321)
	got := Mul(New(), a, b)
	want := New()
	want.Mul(a, b)
	if got.Cmp(want) != 0 {
		t.Errorf("Mul = %s, want %s", Text(got, 10), Text(want, 10))
	}
}

func TestModInverseNoInverse(t *testing.T) {
	x, m := New(), New()
	SetInt64(x, 4)
	SetInt64(m, 8)
	if _, ok := ModInverse(New(), x, m); ok {
		t.Error("expected no inverse for gcd(4,8) != 1")
	}
}
