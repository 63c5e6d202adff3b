// Package arith provides overflow-safe modular arithmetic over a fixed
// 64-bit modulus, behind a small capability interface with two concrete
// strategies: plain machine arithmetic for moduli below 2^32 and
// Montgomery form for the full 64-bit range.
//
// Residues are uint64 values in a strategy-specific encoding. Values
// produced by different strategies, or by the same strategy for
// different moduli, must never be mixed. The choice of strategy does
// not affect projected results, only performance.
package arith

// Arithmetic is the capability set shared by the modular arithmetic
// strategies. Generic functions should take a type parameter
// constrained by Arithmetic so that the multiply in their inner loop is
// dispatched statically.
type Arithmetic interface {
	// Modulus returns the modulus the strategy was constructed for.
	Modulus() uint64
	// FromUint64 lifts x into the residue domain.
	FromUint64(x uint64) uint64
	// ToUint64 projects a residue back to its canonical representative
	// in [0, modulus).
	ToUint64(r uint64) uint64
	// Mul returns the residue product of a and b.
	Mul(a, b uint64) uint64
	// Add returns the residue sum of a and b.
	Add(a, b uint64) uint64
	// Sub returns the residue difference of a and b.
	Sub(a, b uint64) uint64
	// One returns the residue encoding of 1.
	One() uint64
	// MinusOne returns the residue encoding of modulus-1.
	MinusOne() uint64
}

// Pow raises the residue r to the power e by square-and-multiply,
// staying in the residue domain throughout.
func Pow[A Arithmetic](m A, r, e uint64) uint64 {
	acc := m.One()
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			acc = m.Mul(acc, r)
		}
		r = m.Mul(r, r)
	}
	return acc
}

// Gcd returns the greatest common divisor of a and b by Euclid's
// algorithm, with Gcd(a, 0) = a.
func Gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// CRed returns a mod q for a in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// MRedParams computes q^-1 mod 2^64 for odd q by Newton iteration, as
// required by Montgomery reduction and by the reciprocal trial-division
// trick of the small-prime table.
func MRedParams(q uint64) (qInv uint64) {
	qInv = 1
	x := q
	for i := 0; i < 63; i++ {
		qInv *= x
		x *= x
	}
	return
}
