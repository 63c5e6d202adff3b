// Package rho finds a nontrivial divisor of an odd composite integer
// with Pollard's rho algorithm: Floyd cycle detection over the map
// x -> x^2 + c, with gcds batched over products of differences. A
// polynomial that fails to expose a divisor is retried with fresh
// parameters up to a fixed ceiling, after which the search falls back
// to deterministic trial division, so it terminates with a correct
// divisor for every true composite.
package rho

import (
	"github.com/primekit/factorint/arith"
	"github.com/primekit/factorint/utils"
	"github.com/primekit/factorint/utils/sampling"
)

const (
	// maxRetries bounds the number of (start, offset) pairs tried
	// before escalating to trial division.
	maxRetries = 64

	// maxSteps bounds the iterations spent on a single polynomial.
	// Expected work is on the order of n^(1/4) ~ 2^16 for 64-bit
	// inputs; this ceiling is generous.
	maxSteps = 1 << 24

	// batchSize is the number of differences folded into one gcd.
	batchSize = 128
)

// FindDivisor returns a nontrivial divisor d, 1 < d < n, of the
// modulus n of m, which must be odd and composite. prng drives the
// choice of starting points and polynomial offsets; a keyed PRNG makes
// the search replayable.
func FindDivisor[A arith.Arithmetic](m A, prng sampling.PRNG) uint64 {
	n := m.Modulus()

	for i := 0; i < maxRetries; i++ {
		x0 := m.FromUint64(utils.RandUint64(prng) % n)
		c := m.FromUint64(utils.RandUint64(prng)%(n-1) + 1)
		if d := search(m, x0, c); d != 0 {
			return d
		}
	}

	return trialDivide(n)
}

// search runs Floyd cycle detection from x0 on x -> x^2 + c. It
// returns 0 when the cycle collapses, or the step budget runs out,
// without exposing a divisor; the caller then retries with fresh
// parameters. Perfect squares and repeated prime factors surface as
// collapsed cycles and are resolved by those retries.
func search[A arith.Arithmetic](m A, x0, c uint64) uint64 {
	n := m.Modulus()
	f := func(v uint64) uint64 { return m.Add(m.Mul(v, v), c) }

	x, y := x0, x0
	for steps := 0; steps < maxSteps; steps += batchSize {
		// Fold a batch of differences into one product; a divisor
		// shared by any difference survives into the batch gcd.
		xs, ys := x, y
		prod := m.One()
		for j := 0; j < batchSize; j++ {
			x = f(x)
			y = f(f(y))
			prod = m.Mul(prod, m.Sub(x, y))
		}

		g := arith.Gcd(m.ToUint64(prod), n)
		if g == 1 {
			continue
		}
		if g < n {
			return g
		}

		// The batch product vanished mod n. Replay it one step at a
		// time: the earliest step sharing a factor with n yields it,
		// unless the tortoise and hare truly met (difference 0), in
		// which case this polynomial is spent.
		for j := 0; j < batchSize; j++ {
			xs = f(xs)
			ys = f(f(ys))
			g = arith.Gcd(m.ToUint64(m.Sub(xs, ys)), n)
			if g == n {
				return 0
			}
			if g > 1 {
				return g
			}
		}
		return 0
	}

	return 0
}

// trialDivide is the deterministic fallback: n is odd and composite,
// so its smallest prime factor is odd and no larger than sqrt(n).
func trialDivide(n uint64) uint64 {
	for d := uint64(3); ; d += 2 {
		if n%d == 0 {
			return d
		}
	}
}
