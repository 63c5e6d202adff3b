package arith

// Basic implements Arithmetic with plain machine operations. It is
// restricted to moduli below 2^32 so that a product of two residues
// fits in 64 bits before reduction; within that range it beats
// Montgomery form by skipping the domain transforms entirely.
type Basic struct {
	q uint64
}

// NewBasic returns the plain strategy for modulus q, which must be in
// [2, 2^32).
func NewBasic(q uint64) Basic {
	if q < 2 || q >= 1<<32 {
		panic("arith: Basic modulus must be in [2, 2^32)")
	}
	return Basic{q: q}
}

// Modulus returns the modulus.
func (m Basic) Modulus() uint64 { return m.q }

// FromUint64 lifts x into the residue domain. For the plain strategy
// this is a bare reduction.
func (m Basic) FromUint64(x uint64) uint64 { return x % m.q }

// ToUint64 projects a residue back to [0, modulus). Plain residues are
// already canonical.
func (m Basic) ToUint64(r uint64) uint64 { return r }

// Mul returns a*b mod q. Both operands are below 2^32, so the product
// cannot overflow.
func (m Basic) Mul(a, b uint64) uint64 { return a * b % m.q }

// Add returns a+b mod q.
func (m Basic) Add(a, b uint64) uint64 { return CRed(a+b, m.q) }

// Sub returns a-b mod q.
func (m Basic) Sub(a, b uint64) uint64 { return CRed(a+m.q-b, m.q) }

// One returns the residue encoding of 1.
func (m Basic) One() uint64 { return 1 }

// MinusOne returns the residue encoding of q-1.
func (m Basic) MinusOne() uint64 { return m.q - 1 }
