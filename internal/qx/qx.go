// Package qx implements Qx, a dense univariate polynomial over Q
// stored as an integer coefficient vector plus one shared denominator
// (spec §3.3): value = (1/den) * sum(coeffs[i] * x^i). Canonical form
// requires den > 0, no trailing zero coefficients, and
// gcd(den, coeffs[0..length)) == 1 (I7-I9).
package qx

import (
	"fmt"
	"strings"

	"github.com/flintlib/flint-sub040/internal/errs"
	"github.com/flintlib/flint-sub040/internal/ivec"
	"github.com/flintlib/flint-sub040/internal/q"
	"github.com/flintlib/flint-sub040/internal/z"
)

// Qx is a dense rational polynomial. The zero value is the zero
// polynomial (length 0, den 1) and ready to use.
type Qx struct {
	coeffs []z.Z
	den    z.Z
	length int
}

func op(name string) errs.Op { return errs.Op{Name: "Qx." + name} }

// Init2 returns a Qx preallocated for at least `capacity` coefficients.
func Init2(capacity int) *Qx {
	p := &Qx{}
	p.fit(capacity)
	p.den.SetInt64(1)
	return p
}

// Len returns the polynomial's length (0 iff the zero polynomial).
func (p *Qx) Len() int { return p.length }

// Degree returns the polynomial's degree, -1 for the zero polynomial.
func (p *Qx) Degree() int { return p.length - 1 }

// Den returns a copy of the shared denominator.
func (p *Qx) Den() z.Z {
	if p.den.IsZero() {
		var one z.Z
		one.SetInt64(1)
		return one
	}
	var d z.Z
	d.Set(&p.den)
	return d
}

// IsZero reports whether p is the zero polynomial.
func (p *Qx) IsZero() bool { return p.length == 0 }

// fit ensures p.coeffs has room for at least n coefficients, growing
// capacity by doubling (spec §3.3 length protocol); slots beyond the
// old length arrive zero-valued, matching the "alloc slots are valid
// zero Z" invariant without any extra initialization step.
func (p *Qx) fit(n int) {
	if n <= len(p.coeffs) {
		return
	}
	newCap := len(p.coeffs)
	if newCap == 0 {
		newCap = 4
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]z.Z, newCap)
	copy(grown, p.coeffs)
	p.coeffs = grown
}

// Realloc resizes p's capacity to exactly newCapacity, truncating
// length if it now exceeds newCapacity.
func (p *Qx) Realloc(newCapacity int) {
	if newCapacity <= 0 {
		p.coeffs = nil
		p.length = 0
		return
	}
	grown := make([]z.Z, newCapacity)
	copy(grown, p.coeffs)
	p.coeffs = grown
	if p.length > newCapacity {
		p.length = newCapacity
	}
}

// Clear resets p to the zero polynomial and releases its storage.
func (p *Qx) Clear() {
	p.coeffs = nil
	p.length = 0
	p.den.SetInt64(0)
}

// Set sets p to a (deep) copy of src and returns p.
func (p *Qx) Set(src *Qx) *Qx {
	if src == p {
		return p
	}
	p.fit(src.length)
	for i := 0; i < src.length; i++ {
		p.coeffs[i].Set(&src.coeffs[i])
	}
	for i := src.length; i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = src.length
	p.den.Set(&src.den)
	return p
}

// GetCoeff returns coeffs[i]/den in lowest terms; an out-of-range
// index returns 0/1 (spec §4.3.1).
func (p *Qx) GetCoeff(i int) q.Q {
	var result q.Q
	if i < 0 || i >= p.length {
		result.SetFromInt(zeroZ())
		return result
	}
	_ = result.SetFromFraction(&p.coeffs[i], &p.den)
	return result
}

func zeroZ() *z.Z { return &z.Z{} }

// SetCoeff sets coefficient n to value, rescaling the shared
// denominator as needed (spec §4.3.1): g = lcm(den, value.Den());
// coeffs and den are scaled by g/den, and (g/value.Den())*value.Num()
// is written into position n.
func (p *Qx) SetCoeff(n int, value *q.Q) error {
	if n < 0 {
		return errs.NewDomain(op("SetCoeff"), "negative index %d", n)
	}
	vnum := value.Num()
	vden := value.Den()

	pden := p.Den()
	var g, gOverDen, gOverVden z.Z
	lcmZ(&g, &pden, &vden)
	_ = z.TDivQ(&gOverDen, &g, &pden)
	_ = z.TDivQ(&gOverVden, &g, &vden)

	p.fit(n + 1)
	if n+1 > p.length {
		for i := p.length; i < n; i++ {
			p.coeffs[i].SetInt64(0)
		}
		p.length = n + 1
	}
	for i := 0; i < p.length; i++ {
		if i == n {
			continue
		}
		p.coeffs[i].Mul(&p.coeffs[i], &gOverDen)
	}
	var newVal z.Z
	newVal.Mul(&gOverVden, &vnum)
	p.coeffs[n].Set(&newVal)
	p.den.Set(&g)
	p.canonicalizeAfterSet()
	return nil
}

func lcmZ(out, a, b *z.Z) {
	z.LCM(out, a, b)
}

// Normalize decrements length while the top coefficient is zero (spec
// §4.3.1).
func (p *Qx) Normalize() {
	for p.length > 0 && p.coeffs[p.length-1].IsZero() {
		p.length--
	}
}

// Canonicalize enforces (I7)-(I9): normalize, divide through by
// gcd(den, content(coeffs)), and flip signs so den > 0 (spec §4.3.1).
func (p *Qx) Canonicalize() {
	p.Normalize()
	if p.length == 0 {
		p.den.SetInt64(1)
		return
	}
	content := ivec.Content(p.coeffs[:p.length])
	var c z.Z
	c.Set(&content)
	z.GCD(&c, &c, &p.den)
	one := z.Z{}
	one.SetInt64(1)
	if !z.Equal(&c, &one) {
		for i := 0; i < p.length; i++ {
			var nc z.Z
			_ = z.DivExact(&nc, &p.coeffs[i], &c)
			p.coeffs[i].Set(&nc)
		}
		var nd z.Z
		_ = z.DivExact(&nd, &p.den, &c)
		p.den.Set(&nd)
	}
	if p.den.Sign() < 0 {
		for i := 0; i < p.length; i++ {
			p.coeffs[i].Neg(&p.coeffs[i])
		}
		p.den.Neg(&p.den)
	}
}

// canonicalizeAfterSet is Canonicalize but tolerant of a p.den that
// might transiently be <= 0 mid-rescale; it is the same operation,
// named separately only to document the call site in SetCoeff.
func (p *Qx) canonicalizeAfterSet() { p.Canonicalize() }

// SetCoeffs replaces p's integer coefficients (denominator 1) with
// vals and canonicalizes.
func (p *Qx) SetCoeffs(vals []int64) {
	p.fit(len(vals))
	for i, v := range vals {
		p.coeffs[i].SetInt64(v)
	}
	for i := len(vals); i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = len(vals)
	p.den.SetInt64(1)
	p.Canonicalize()
}

// String renders p as the whitespace-separated coefficient list
// followed by the denominator (spec §6.3): "c0 c1 ... c_{n-1} den".
func (p *Qx) String() string {
	parts := make([]string, 0, p.length+1)
	for i := 0; i < p.length; i++ {
		parts = append(parts, p.coeffs[i].String())
	}
	den := p.Den()
	parts = append(parts, den.String())
	return strings.Join(parts, " ")
}

// SetString parses the §6.3 coefficient-list-then-denominator grammar.
func (p *Qx) SetString(s string) error {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return errs.NewDomain(op("SetString"), "empty input")
	}
	coeffFields, denField := fields[:len(fields)-1], fields[len(fields)-1]
	p.fit(len(coeffFields))
	for i, f := range coeffFields {
		if err := p.coeffs[i].SetString(f, 10); err != nil {
			return err
		}
	}
	for i := len(coeffFields); i < len(p.coeffs); i++ {
		p.coeffs[i].SetInt64(0)
	}
	p.length = len(coeffFields)
	if err := p.den.SetString(denField, 10); err != nil {
		return err
	}
	p.Canonicalize()
	return nil
}

// must is a small helper used where an internal call is known not to
// fail (e.g. a non-zero divisor already checked by the caller).
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("qx: internal invariant violated: %v", err))
	}
}

