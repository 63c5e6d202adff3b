// Package prime implements a deterministic Miller-Rabin primality test
// for 64-bit integers with a three-way outcome: definitely prime,
// composite with an exhibited nontrivial divisor, or composite with no
// divisor in hand.
package prime

import (
	"math/bits"

	"github.com/primekit/factorint/arith"
)

// basis is the fixed witness set. Miller-Rabin with the first twelve
// primes as witnesses is exact for every integer below 3.3*10^24, in
// particular over the whole uint64 range, so StatusPrime is never a
// false positive.
var basis = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Status classifies the outcome of Test.
type Status int

const (
	// StatusPrime means the candidate is prime.
	StatusPrime Status = iota
	// StatusComposite means the candidate is composite and a
	// nontrivial divisor was exhibited along the way.
	StatusComposite
	// StatusPseudoprime means the candidate is composite but the
	// witness computation surfaced no divisor, so a divisor search is
	// required to split it.
	StatusPseudoprime
)

// Result is the outcome of Test. Divisor is meaningful only when
// Status is StatusComposite, in which case 1 < Divisor < n and Divisor
// divides n.
type Result struct {
	Status  Status
	Divisor uint64
}

// Test runs the deterministic Miller-Rabin test on the modulus of m,
// which must be odd and greater than 1.
//
// Writing n-1 = 2^s * d with d odd, each witness a either satisfies the
// primality conditions (a^d = 1 or a^(d*2^i) = -1 for some i < s) or
// proves n composite. When the squaring chain reaches 1 from a value
// other than +-1, that value is a nontrivial square root of 1 and
// gcd(x-1, n) splits n, yielding StatusComposite; when a witness fails
// without passing through such a root, only StatusPseudoprime can be
// reported.
func Test[A arith.Arithmetic](m A) Result {
	n := m.Modulus()
	assertCandidate(n)

	s := bits.TrailingZeros64(n - 1)
	d := (n - 1) >> uint(s)

	one, minusOne := m.One(), m.MinusOne()

	for _, b := range basis {
		b %= n
		if b == 0 {
			continue
		}

		x := arith.Pow(m, m.FromUint64(b), d)
		if x == one || x == minusOne {
			continue
		}

		witnessed := false
		for i := 1; i < s; i++ {
			y := m.Mul(x, x)
			if y == one {
				// x^2 = 1 with x != +-1, so (x-1)(x+1) = 0 mod n
				// and gcd(x-1, n) is a nontrivial divisor.
				return Result{Status: StatusComposite, Divisor: arith.Gcd(m.ToUint64(x)-1, n)}
			}
			x = y
			if x == minusOne {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return Result{Status: StatusPseudoprime}
		}
	}

	return Result{Status: StatusPrime}
}

// IsPrime reports whether n is prime. It handles even and trivial
// inputs directly and defers to Test otherwise, picking the plain
// strategy below 2^32 and Montgomery form above.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n&1 == 0 {
		return n == 2
	}
	if n == 3 {
		return true
	}
	if n < 1<<32 {
		return Test(arith.NewBasic(n)).Status == StatusPrime
	}
	return Test(arith.NewMontgomery(n)).Status == StatusPrime
}
