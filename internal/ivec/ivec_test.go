package ivec

import (
	"testing"

	"github.com/flintlib/flint-sub040/internal/z"
)

func zs(vals ...int64) []z.Z {
	out := make([]z.Z, len(vals))
	for i, v := range vals {
		out[i].SetInt64(v)
	}
	return out
}

func TestContent(t *testing.T) {
	v := zs(12, 18, 30)
	c := Content(v)
	if c.Int64() != 6 {
		t.Errorf("content([12,18,30]) = %d, want 6", c.Int64())
	}
}

func TestHeight(t *testing.T) {
	v := zs(-3, 7, -9, 2)
	h := Height(v)
	if h.Int64() != 9 {
		t.Errorf("height = %d, want 9", h.Int64())
	}
}

func TestNegAliasing(t *testing.T) {
	v := zs(1, -2, 3)
	Neg(v, v)
	want := []int64{-1, 2, -3}
	for i, w := range want {
		if v[i].Int64() != w {
			t.Errorf("Neg aliased in-place: v[%d] = %d, want %d", i, v[i].Int64(), w)
		}
	}
}

func TestEqual(t *testing.T) {
	a := zs(1, 2, 3)
	b := zs(1, 2, 3)
	c := zs(1, 2, 4)
	if !Equal(a, b) {
		t.Error("expected equal vectors to compare equal")
	}
	if Equal(a, c) {
		t.Error("expected differing vectors to compare unequal")
	}
}

func TestMaxBitsAndMaxLimbs(t *testing.T) {
	v := zs(1, 1<<40, 3)
	if MaxBits(v) != 41 {
		t.Errorf("MaxBits = %d, want 41", MaxBits(v))
	}
	if ml := MaxLimbs(v); ml != 1 {
		t.Errorf("MaxLimbs = %d, want 1 (41 bits fits one 64-bit limb)", ml)
	}
}

func TestAbsAndMaxOfGeneric(t *testing.T) {
	if Abs(-5) != 5 {
		t.Error("Abs(-5) != 5")
	}
	if MaxOf(3, 7) != 7 {
		t.Error("MaxOf(3,7) != 7")
	}
}
