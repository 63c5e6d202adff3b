package arith

import (
	"math/bits"
)

// Montgomery implements Arithmetic in Montgomery form over an odd
// 64-bit modulus: a residue carries an implicit factor of 2^64, which
// turns modular multiplication into a multiply-high, a multiply-low and
// a single conditional addition, with no division and no intermediate
// overflow. Lifting values in and out costs one reduction each way,
// amortized over the multiplication-heavy loops of primality testing
// and divisor search.
type Montgomery struct {
	q    uint64
	qInv uint64 // q^-1 mod 2^64
	one  uint64 // 2^64 mod q
}

// NewMontgomery returns the Montgomery strategy for modulus q, which
// must be odd and greater than 1.
func NewMontgomery(q uint64) Montgomery {
	if q&1 == 0 || q == 1 {
		panic("arith: Montgomery modulus must be odd and > 1")
	}
	m := Montgomery{q: q, qInv: MRedParams(q)}
	m.one = m.FromUint64(1)
	return m
}

// Modulus returns the modulus.
func (m Montgomery) Modulus() uint64 { return m.q }

// FromUint64 lifts x into Montgomery form, returning x*2^64 mod q.
func (m Montgomery) FromUint64(x uint64) uint64 {
	if x >= m.q {
		x %= m.q
	}
	// x*2^64 is a two-word value with high word x < q, so the
	// remainder comes straight out of a 128/64 division.
	_, r := bits.Div64(x, 0, m.q)
	return r
}

// ToUint64 projects a Montgomery residue back to its canonical
// representative, returning r*(1/2^64) mod q.
func (m Montgomery) ToUint64(r uint64) uint64 {
	h, _ := bits.Mul64(r*m.qInv, m.q)
	r = m.q - h
	if r >= m.q {
		r -= m.q
	}
	return r
}

// Mul multiplies two Montgomery residues, performing a 64x64-bit
// multiplication followed by a Montgomery reduction over a radix of
// 2^64.
func (m Montgomery) Mul(x, y uint64) uint64 {
	ahi, alo := bits.Mul64(x, y)
	t := alo * m.qInv
	h, _ := bits.Mul64(t, m.q)
	// ahi - h lies in (-q, q); a single conditional addition
	// canonicalizes it even when q exceeds 2^63.
	r := ahi - h
	if ahi < h {
		r += m.q
	}
	return r
}

// Add returns the residue sum of a and b, safe against wraparound for
// moduli above 2^63.
func (m Montgomery) Add(a, b uint64) uint64 {
	r, carry := bits.Add64(a, b, 0)
	if carry == 1 || r >= m.q {
		r -= m.q
	}
	return r
}

// Sub returns the residue difference of a and b.
func (m Montgomery) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m.q - b + a
}

// One returns the residue encoding of 1, i.e. 2^64 mod q.
func (m Montgomery) One() uint64 { return m.one }

// MinusOne returns the residue encoding of q-1.
func (m Montgomery) MinusOne() uint64 { return m.q - m.one }
