package arith_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primekit/factorint/arith"
	"github.com/primekit/factorint/utils"
	"github.com/primekit/factorint/utils/sampling"
)

var testModuli = []uint64{
	3,
	17,
	4294967291,           // largest prime below 2^32
	2305843009213693951,  // 2^61 - 1
	9223372036854775783,  // largest prime below 2^63
	18446744073709551557, // 2^64 - 59
	18446744073709551615, // 2^64 - 1, composite
}

func testString(opname string, q uint64) string {
	return fmt.Sprintf("%s/q=%d", opname, q)
}

// checkAgainstBig verifies a strategy against math/big on random
// operands.
func checkAgainstBig[A arith.Arithmetic](t *testing.T, m A, prng sampling.PRNG) {
	q := m.Modulus()
	bigQ := new(big.Int).SetUint64(q)

	for i := 0; i < 100; i++ {
		x := utils.RandUint64(prng)
		y := utils.RandUint64(prng)

		rx, ry := m.FromUint64(x), m.FromUint64(y)
		bigX := new(big.Int).SetUint64(x % q)
		bigY := new(big.Int).SetUint64(y % q)

		require.Equal(t, x%q, m.ToUint64(rx))

		mul := new(big.Int).Mul(bigX, bigY)
		require.Equal(t, mul.Mod(mul, bigQ).Uint64(), m.ToUint64(m.Mul(rx, ry)))

		add := new(big.Int).Add(bigX, bigY)
		require.Equal(t, add.Mod(add, bigQ).Uint64(), m.ToUint64(m.Add(rx, ry)))

		sub := new(big.Int).Sub(bigX, bigY)
		require.Equal(t, sub.Mod(sub, bigQ).Uint64(), m.ToUint64(m.Sub(rx, ry)))

		e := utils.RandUint64(prng) % 1024
		pow := new(big.Int).Exp(bigX, new(big.Int).SetUint64(e), bigQ)
		require.Equal(t, pow.Uint64(), m.ToUint64(arith.Pow(m, rx, e)))
	}
}

func TestMontgomery(t *testing.T) {
	for _, q := range testModuli {
		t.Run(testString("Montgomery", q), func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG([]byte{'m', 'o', 'n', 't'})
			require.NoError(t, err)
			checkAgainstBig(t, arith.NewMontgomery(q), prng)
		})
	}
}

func TestBasic(t *testing.T) {
	for _, q := range testModuli {
		if q >= 1<<32 {
			continue
		}
		t.Run(testString("Basic", q), func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG([]byte{'b', 'a', 's', 'e'})
			require.NoError(t, err)
			checkAgainstBig(t, arith.NewBasic(q), prng)
		})
	}
}

// TestStrategiesAgree checks that both strategies project identical
// results wherever their modulus ranges overlap.
func TestStrategiesAgree(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		q := utils.RandUint64(prng)%(1<<32-3) + 3
		q |= 1 // Montgomery needs an odd modulus

		mb := arith.NewBasic(q)
		mm := arith.NewMontgomery(q)

		x := utils.RandUint64(prng)
		y := utils.RandUint64(prng)
		e := utils.RandUint64(prng) % 4096

		rxB, ryB := mb.FromUint64(x), mb.FromUint64(y)
		rxM, ryM := mm.FromUint64(x), mm.FromUint64(y)

		require.Equal(t, mb.ToUint64(mb.Mul(rxB, ryB)), mm.ToUint64(mm.Mul(rxM, ryM)))
		require.Equal(t, mb.ToUint64(mb.Add(rxB, ryB)), mm.ToUint64(mm.Add(rxM, ryM)))
		require.Equal(t, mb.ToUint64(mb.Sub(rxB, ryB)), mm.ToUint64(mm.Sub(rxM, ryM)))
		require.Equal(t, mb.ToUint64(arith.Pow(mb, rxB, e)), mm.ToUint64(arith.Pow(mm, rxM, e)))
	}
}

func TestOneAndMinusOne(t *testing.T) {
	for _, q := range testModuli {
		mm := arith.NewMontgomery(q)
		require.Equal(t, uint64(1%q), mm.ToUint64(mm.One()))
		require.Equal(t, q-1, mm.ToUint64(mm.MinusOne()))
		require.Equal(t, mm.MinusOne(), mm.Sub(0, mm.One()))
	}
}

func TestGcd(t *testing.T) {
	require.Equal(t, uint64(6), arith.Gcd(54, 24))
	require.Equal(t, uint64(1), arith.Gcd(17, 4))
	require.Equal(t, uint64(13), arith.Gcd(0, 13))
	require.Equal(t, uint64(13), arith.Gcd(13, 0))
	require.Equal(t, uint64(4294967291), arith.Gcd(4294967291*2, 4294967291*3))
}

func TestMRedParams(t *testing.T) {
	for _, q := range testModuli {
		require.Equal(t, uint64(1), q*arith.MRedParams(q))
	}
}
