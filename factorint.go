/*
Package factorint implements complete prime factorization of 64-bit
unsigned integers. It combines trial division against a precomputed
table of small primes, a deterministic Miller-Rabin primality test and
Pollard's rho divisor search, all running over an overflow-safe modular
arithmetic layer with a plain strategy for small moduli and a
Montgomery-form strategy for the full 64-bit range.

The computational entry point is factor.Factor; the cmd/factor command
wraps it in a factor(1)-style command-line interface.
*/
package factorint
