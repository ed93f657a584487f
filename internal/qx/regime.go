package qx

import (
	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/ivec"
	"github.com/flintlib/flint-sub040/internal/z"
)

// mulSizeBudget bounds the bit-length a single product coefficient may
// reach before Mul/MulLow refuse to build the result (spec §4.5's
// dispatch: past this bound there is no "large regime" to fall
// through to — the BPI itself would just be asked to allocate an
// unbounded result — so the operation is refused as an OVERFLOW
// rather than left to exhaust memory silently).
const mulSizeBudget = 1 << 24 // 16 Mbit per coefficient

// checkMulBudget estimates the bit-length of the largest coefficient a
// schoolbook convolution of a and b could produce and reports an
// OVERFLOW error if that estimate exceeds mulSizeBudget. The estimate
// follows spec §4.4's integer-vector sizing family directly: each
// output coefficient out[k] = sum_i a[i]*b[k-i], so its magnitude is
// bounded by (sum of |a|'s entries) * (the largest single entry of
// b), or symmetrically with a and b swapped — sum_max_bits and height
// give exactly those two quantities without materializing the
// convolution first. max_limbs cross-checks the same bound in whole
// machine words, and the degree skew (via abs/max_of) widens the
// margin for lopsided-length multiplies, where the accumulation in
// the shorter operand's direction dominates.
func checkMulBudget(operation errs.Op, a, b []z.Z) error {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	aSumBits, _ := ivec.SumMaxBits(a)
	bSumBits, _ := ivec.SumMaxBits(b)
	aHeight := ivec.Height(a)
	bHeight := ivec.Height(b)
	aMaxBits := aHeight.BitLen()
	bMaxBits := bHeight.BitLen()

	bound := ivec.MaxOf(aSumBits+bMaxBits, bSumBits+aMaxBits) + 1

	aLimbs := ivec.MaxLimbs(a)
	bLimbs := ivec.MaxLimbs(b)
	limbBound := (ivec.MaxOf(aLimbs, bLimbs) + ivec.Abs(len(a)-len(b))) * z.WordBits
	if limbBound > bound {
		bound = limbBound
	}

	if bound > mulSizeBudget {
		return errs.NewOverflow(operation, uint64(bound),
			"projected product coefficient size %d bits exceeds the multiply budget", bound)
	}
	return nil
}
