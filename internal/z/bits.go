package z

import (
	"github.com/flintlib/flint-sub040/internal/bpi"
	"github.com/flintlib/flint-sub040/internal/errs"
)

// Lshift sets z = x << n and returns z.
func (z *Z) Lshift(x *Z, n uint) *Z {
	z.big = bpi.Lsh(bpi.New(), x.asBig(), n)
	z.demote()
	return z
}

// RshiftFloor sets z = floor(x / 2^n) and returns z (arithmetic shift,
// rounds toward -infinity).
func (z *Z) RshiftFloor(x *Z, n uint) *Z {
	z.big = bpi.Rsh(bpi.New(), x.asBig(), n)
	z.demote()
	return z
}

// RshiftTrunc sets z = trunc(x / 2^n) and returns z (rounds toward 0).
func (z *Z) RshiftTrunc(x *Z, n uint) *Z {
	var q, r, divisor Z
	divisor.SetInt64(1)
	divisor.Lshift(&divisor, n)
	_ = TDivQR(&q, &r, x, &divisor)
	z.Set(&q)
	return z
}

// RshiftCeil sets z = ceil(x / 2^n) and returns z.
func (z *Z) RshiftCeil(x *Z, n uint) *Z {
	var q, r, divisor Z
	divisor.SetInt64(1)
	divisor.Lshift(&divisor, n)
	_ = CDivQR(&q, &r, x, &divisor)
	z.Set(&q)
	return z
}

// PopCount returns the number of set bits in |z|.
func (z *Z) PopCount() int { return bpi.PopCount(z.asBig()) }

// BitLen returns the number of bits needed to represent |z|, 0 for 0.
func (z *Z) BitLen() int {
	if z.big == nil {
		v := z.small
		if v < 0 {
			v = -v
		}
		n := 0
		for v > 0 {
			n++
			v >>= 1
		}
		return n
	}
	return bpi.BitLen(z.big)
}

// Bit returns the value (0 or 1) of bit i of z (two's-complement
// convention for negative z, matching math/big).
func (z *Z) Bit(i int) uint { return bpi.Bit(z.asBig(), i) }

// SetBitValue sets z to x with bit i set to b (0 or 1) and returns z.
func (z *Z) SetBitValue(x *Z, i int, b uint) *Z {
	z.big = bpi.SetBit(bpi.New(), x.asBig(), i, b)
	z.demote()
	return z
}

// SetBit sets bit i of z to 1 (in place) and returns z.
func (z *Z) SetBit(i int) *Z { return z.SetBitValue(z, i, 1) }

// ClearBit sets bit i of z to 0 (in place) and returns z.
func (z *Z) ClearBit(i int) *Z { return z.SetBitValue(z, i, 0) }

// ComplementBit flips bit i of z (in place) and returns z.
func (z *Z) ComplementBit(i int) *Z {
	cur := z.Bit(i)
	return z.SetBitValue(z, i, 1-cur)
}

// limbBits is the width of one limb of a bit-packed array (spec
// §4.1.2/§6.3): one machine word.
const limbBits = WordBits

// BitPack writes value (optionally negated via XOR with an all-ones
// mask when negate is true) as a two's-complement field of width bits
// into arr starting at bit offset shift, adding borrow before writing
// and returning the carry-out borrow for chained packing. The low
// `shift` bits of arr[0] and any bits beyond the field's span are left
// untouched (spec §4.1.2).
func BitPack(arr []uint64, shift uint, bits uint, value *Z, negate bool, borrow int64) (borrowOut int64, err error) {
	if bits == 0 {
		return borrow, nil
	}
	v := Z{}
	v.Set(value)
	if negate {
		v.Neg(&v)
		v.SubWord(&v, 1) // two's-complement-style XOR with all-ones == -(v)-1
	}
	v.AddWord(&v, borrow)

	// Extract the low `bits` bits of v's two's-complement
	// representation into a field value in [0, 2^bits).
	field := fieldBits(&v, bits)

	limb := shift / limbBits
	off := shift % limbBits
	needLimbs := int((shift+bits-1)/limbBits - shift/limbBits + 1)
	if int(limb)+needLimbs > len(arr) {
		return 0, errs.NewOverflow(errs.Op{Name: "Z.BitPack"}, uint64(shift+bits), "destination array too small")
	}
	remaining := bits
	pos := off
	idx := limb
	written := uint(0)
	for remaining > 0 {
		room := limbBits - pos
		take := remaining
		if take > room {
			take = room
		}
		chunk := (field >> written) & ((uint64(1) << take) - 1)
		mask := ((uint64(1) << take) - 1) << pos
		arr[idx] = (arr[idx] &^ mask) | (chunk << pos)
		remaining -= take
		written += take
		pos = 0
		idx++
	}
	// borrow-out: the bits of v beyond the packed field, arithmetic-
	// shifted down, represent the carry into the next chained call.
	var shifted Z
	shifted.RshiftFloor(&v, bits)
	return shifted.Int64(), nil
}

// fieldBits returns the low `bits` bits of v's two's-complement
// representation as an unsigned field in [0, 2^bits).
func fieldBits(v *Z, bits uint) uint64 {
	var mod, m Z
	m.SetInt64(1)
	m.Lshift(&m, bits)
	_ = Mod(&mod, v, &m)
	return uint64(mod.Int64())
}

// BitUnpackSigned reads a signed two's-complement field of width bits
// at bit offset shift out of arr into out.
func BitUnpackSigned(out *Z, arr []uint64, shift uint, bits uint) {
	unpack(out, arr, shift, bits, true)
}

// BitUnpackUnsigned reads an unsigned field of width bits at bit
// offset shift out of arr into out.
func BitUnpackUnsigned(out *Z, arr []uint64, shift uint, bits uint) {
	unpack(out, arr, shift, bits, false)
}

func unpack(out *Z, arr []uint64, shift uint, bits uint, signed bool) {
	if bits == 0 {
		out.SetInt64(0)
		return
	}
	var field Z
	field.SetInt64(0)
	remaining := bits
	pos := shift % limbBits
	idx := shift / limbBits
	written := uint(0)
	for remaining > 0 {
		room := limbBits - pos
		take := remaining
		if take > room {
			take = room
		}
		var limbVal uint64
		if idx < uint(len(arr)) {
			limbVal = arr[idx]
		}
		chunk := (limbVal >> pos) & ((uint64(1) << take) - 1)
		var chunkZ, shiftedChunk Z
		chunkZ.SetUint64(chunk)
		shiftedChunk.Lshift(&chunkZ, written)
		field.Add(&field, &shiftedChunk)
		remaining -= take
		written += take
		pos = 0
		idx++
	}
	if signed && field.Bit(int(bits-1)) == 1 {
		var full Z
		full.SetInt64(1)
		full.Lshift(&full, bits)
		field.Sub(&field, &full)
	}
	out.Set(&field)
}
