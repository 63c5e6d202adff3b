// Package factors implements the result type of integer factorization:
// a multiset of primes represented as a mapping from each prime factor
// to its exponent, with a multiplicative merge operation.
package factors

import (
	"strconv"
	"strings"

	"github.com/primekit/factorint/utils"
)

// Factors represents a factored nonnegative integer as a multiset of
// primes. The zero value is not usable; create instances with New or
// Prime.
//
// Every key must be prime and every exponent at least 1; absence of a
// key means exponent 0. These invariants are the caller's
// responsibility and are verified only when the 'debug' build tag is
// set. Inserting a non-prime in a release build produces silently
// wrong output, not a failure.
type Factors struct {
	f map[uint64]uint8
}

// New returns the empty multiset, representing 1.
func New() Factors {
	return Factors{f: map[uint64]uint8{}}
}

// Prime returns the multiset {p}. p must be prime.
func Prime(p uint64) Factors {
	assertPrime(p)
	f := New()
	f.Push(p)
	return f
}

// Add accumulates p^e into the multiset: if p is already present with
// exponent k, it becomes k+e. e must be at least 1.
func (f Factors) Add(p uint64, e uint8) {
	assertExponent(e)
	f.f[p] += e
}

// Push accumulates a single power of p into the multiset.
func (f Factors) Push(p uint64) {
	f.Add(p, 1)
}

// Mul merges other into f, summing exponents over the union of their
// primes. It is the multiset counterpart of multiplying the
// represented integers and is associative and commutative. other must
// not be used afterwards.
func (f Factors) Mul(other Factors) {
	for p, e := range other.f {
		f.Add(p, e)
	}
}

// Equal reports whether f and other represent the same factorization.
func (f Factors) Equal(other Factors) bool {
	if len(f.f) != len(other.f) {
		return false
	}
	for p, e := range f.f {
		if other.f[p] != e {
			return false
		}
	}
	return true
}

// Map returns a copy of the underlying prime-to-exponent mapping.
func (f Factors) Map() map[uint64]uint8 {
	m := make(map[uint64]uint8, len(f.f))
	for p, e := range f.f {
		m[p] = e
	}
	return m
}

// String renders the multiset in the conventional factor(1) form: each
// prime in ascending order, repeated once per unit of exponent, every
// value preceded by a single space.
func (f Factors) String() string {
	var b strings.Builder
	for _, p := range utils.GetSortedKeys(f.f) {
		for i := uint8(0); i < f.f[p]; i++ {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(p, 10))
		}
	}
	return b.String()
}

// Product recombines the represented integer. It exists for round-trip
// validation in tests and wraps silently on overflow; it is not part
// of the production contract.
func (f Factors) Product() uint64 {
	n := uint64(1)
	for p, e := range f.f {
		for i := uint8(0); i < e; i++ {
			n *= p
		}
	}
	return n
}
