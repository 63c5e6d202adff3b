// Package table strips small prime factors by trial division against a
// precomputed ascending table of the odd primes below its bound.
//
// The table stores, for each prime p, the pair (p^-1 mod 2^64,
// floor((2^64-1)/p)): for any n, p divides n exactly when n * pInv <=
// limit, and n * pInv is then n/p. This replaces the division in the
// hot stripping loop with a multiply and a compare, and hands back the
// quotient for free.
package table

import (
	"github.com/primekit/factorint/arith"
	"github.com/primekit/factorint/factors"
)

// Bound is the exclusive upper limit of the tabled primes.
const Bound = 1 << 12

// NextPrime is the smallest prime not covered by the table. A cofactor
// below NextPrime*NextPrime with no tabled factor is prime.
const NextPrime = 4099

type entry struct {
	p     uint64
	pInv  uint64 // p^-1 mod 2^64
	limit uint64 // floor((2^64-1)/p)
}

// entries holds the odd primes below Bound in ascending order. Built
// once at init and never mutated, so it is shared freely across
// concurrent callers.
var entries = build()

func build() []entry {
	composite := make([]bool, Bound)
	var t []entry
	for p := uint64(3); p < Bound; p += 2 {
		if composite[p] {
			continue
		}
		for c := p * p; c < Bound; c += 2 * p {
			composite[c] = true
		}
		t = append(t, entry{p: p, pInv: arith.MRedParams(p), limit: ^uint64(0) / p})
	}
	return t
}

// Factor divides every tabled prime out of n, accumulating exponents
// into a multiset. It returns the accumulated factors and the
// remaining cofactor, which is either 1 or free of factors below
// Bound. n must be odd and at least 3.
//
// The scan exits early once the running cofactor drops below the
// square of the current prime: having no factor below that prime, the
// cofactor is then itself prime and is pushed directly.
func Factor(n uint64) (factors.Factors, uint64) {
	f := factors.New()

	for _, e := range entries {
		if n < e.p*e.p {
			if n > 1 {
				f.Push(n)
				n = 1
			}
			break
		}
		for {
			q := n * e.pInv
			if q > e.limit {
				break
			}
			f.Push(e.p)
			n = q
		}
	}

	return f, n
}
