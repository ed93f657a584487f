// Package randsrc adapts an external pseudo-random generator (Go's
// own math/rand, plus modernc.org/mathutil's full-cycle generator for
// boundary-biased sampling) behind the uniform interface spec §6.2
// requires: RandState.
package randsrc

import (
	"math/big"
	"math/rand"

	"github.com/pkg/errors"
	"modernc.org/mathutil"

	"github.com/flintlib/flint-sub040/internal/bpi"
)

// RandState is a local, exclusive handle over a seeded random source.
// It is not safe for concurrent use from multiple goroutines — the
// concurrency model (spec §5) requires a RandState be per-thread.
type RandState struct {
	r *rand.Rand
}

// Init returns a RandState seeded deterministically from seed, so
// that test runs are reproducible (spec §6.2).
func Init(seed int64) *RandState {
	return &RandState{r: rand.New(rand.NewSource(seed))}
}

// Clear releases the state. RandState holds no external resources
// beyond the PRNG itself, so Clear is a no-op kept for symmetry with
// the core's init/clear lifecycle convention.
func (s *RandState) Clear() {}

// UniformWord returns a uniformly distributed machine word.
func (s *RandState) UniformWord() uint64 { return s.r.Uint64() }

// UniformWordBelow returns a uniformly distributed word in [0, n).
// n must be > 0.
func (s *RandState) UniformWordBelow(n uint64) uint64 {
	if n == 0 {
		panic("randsrc: UniformWordBelow(0)")
	}
	return uint64(s.r.Int63n(int64(n)))
}

// UniformBits returns a uniformly distributed value in [0, 2^k).
func (s *RandState) UniformBits(k uint) *bpi.BigInt {
	if k == 0 {
		return bpi.New()
	}
	nbytes := (k + 7) / 8
	buf := make([]byte, nbytes)
	s.r.Read(buf)
	z := new(big.Int).SetBytes(buf)
	z.Rsh(z, nbytes*8-k)
	return z
}

// UniformBigIntBelow returns a uniformly distributed value in [0, n).
// n must be positive.
func (s *RandState) UniformBigIntBelow(n *bpi.BigInt) *bpi.BigInt {
	if n.Sign() <= 0 {
		panic(errors.New("randsrc: UniformBigIntBelow requires n > 0"))
	}
	return new(big.Int).Rand(s.r, n)
}

// boundary values used by RandTest, as spec §4.1 requires: 0, ±1,
// the small/large boundary (±2^(W-1) and ±2^(W-1)-1), and further
// power-of-two boundaries for wider coverage. wordBits must be <= 63
// so that 2^(wordBits-1) itself still fits in an int64; callers
// probing the actual machine-word width should pass wordBits-1 or
// narrower, not 64.
func boundaryValues(wordBits uint) []int64 {
	if wordBits == 0 || wordBits > 63 {
		wordBits = 63
	}
	half := int64(1) << (wordBits - 1)
	vals := []int64{0, 1, -1, half, -half, half - 1, -(half - 1)}
	for shift := uint(1); shift < wordBits-1; shift <<= 1 {
		v := int64(1) << shift
		vals = append(vals, v, -v, v-1, -(v - 1))
	}
	return vals
}

// RandTest returns a value drawn from a distribution biased to
// oversample boundary magnitudes (0, ±1, small/large-form boundaries,
// power-of-two boundaries) mixed with ordinary uniform values, as
// required for reliable corner-case test coverage (spec §4.1). On the
// boundary path each call builds a new mathutil.FC32 over the pool's
// indices and takes its first value; no generator state is kept between
// calls, so successive calls do not walk the pool without repetition.
func (s *RandState) RandTest(wordBits uint) int64 {
	vals := boundaryValues(wordBits)
	if s.r.Intn(2) == 0 {
		cyc, err := mathutil.NewFC32(0, len(vals)-1, true)
		if err != nil {
			return vals[s.r.Intn(len(vals))]
		}
		return vals[cyc.Next()]
	}
	return int64(s.UniformWordBelow(1<<20)) - (1 << 19)
}
