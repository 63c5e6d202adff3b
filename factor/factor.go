// Package factor computes the complete prime factorization of 64-bit
// unsigned integers.
package factor

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/blake3"

	"github.com/primekit/factorint/arith"
	"github.com/primekit/factorint/factors"
	"github.com/primekit/factorint/prime"
	"github.com/primekit/factorint/rho"
	"github.com/primekit/factorint/table"
	"github.com/primekit/factorint/utils/sampling"
)

// Factor returns the prime factorization of n. It is total over the
// whole uint64 range and never fails; by convention 0 and 1 each
// factor to themselves, matching factor(1) output for those inputs.
//
// Powers of two are stripped by trailing-zero count, small odd primes
// by the precomputed table, and the remaining cofactor is split
// recursively with the primality test and, when no divisor is in hand,
// the rho divisor search. Cofactors below 2^32 use the plain
// arithmetic strategy, larger ones Montgomery form.
func Factor(n uint64) factors.Factors {
	f := factors.New()

	if n < 2 {
		f.Push(n)
		return f
	}

	if z := bits.TrailingZeros64(n); z > 0 {
		f.Add(2, uint8(z))
		n >>= uint(z)
	}

	if n == 1 {
		return f
	}

	var tf factors.Factors
	tf, n = table.Factor(n)
	f.Mul(tf)

	if n == 1 {
		return f
	}

	if n < 1<<32 {
		f.Mul(split(arith.NewBasic, n))
	} else {
		f.Mul(split(arith.NewMontgomery, n))
	}

	return f
}

// split recursively factors the odd integer n. The arithmetic strategy
// is fixed once by the caller and threaded through the recursion via
// its constructor mk, so every level dispatches statically.
func split[A arith.Arithmetic](mk func(uint64) A, n uint64) factors.Factors {
	if n == 1 {
		return factors.New()
	}

	m := mk(n)

	var d uint64
	switch r := prime.Test(m); r.Status {
	case prime.StatusPrime:
		return factors.Prime(n)
	case prime.StatusComposite:
		d = r.Divisor
	default:
		d = rho.FindDivisor(m, divisorPRNG(n))
	}

	f := split(mk, d)
	f.Mul(split(mk, n/d))
	return f
}

// divisorPRNG derives the randomness stream for the divisor search
// from the candidate itself, so repeated factorizations of the same
// input behave identically while distinct inputs get independent
// streams.
func divisorPRNG(n uint64) sampling.PRNG {
	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], n)
	key := blake3.Sum256(seed[:])

	prng, err := sampling.NewKeyedPRNG(key[:])
	if err != nil {
		panic(err)
	}
	return prng
}
