package factors_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/primekit/factorint/factors"
)

func TestNewIsIdentity(t *testing.T) {
	f := factors.New()
	require.Equal(t, "", f.String())
	require.Equal(t, uint64(1), f.Product())
}

func TestAddAccumulates(t *testing.T) {
	f := factors.New()
	f.Add(3, 2)
	f.Add(3, 1)
	f.Push(5)

	require.Empty(t, cmp.Diff(map[uint64]uint8{3: 3, 5: 1}, f.Map()))
	require.Equal(t, uint64(135), f.Product())
}

func TestString(t *testing.T) {
	f := factors.New()
	f.Push(3)
	f.Add(2, 2)

	// Ascending primes, exponent-expanded, each preceded by a space.
	require.Equal(t, " 2 2 3", f.String())
}

func TestMulSumsExponents(t *testing.T) {
	a := factors.Prime(2)
	a.Push(7)

	b := factors.Prime(7)
	b.Add(11, 2)

	a.Mul(b)
	require.Empty(t, cmp.Diff(map[uint64]uint8{2: 1, 7: 2, 11: 2}, a.Map()))
}

func TestMulLaws(t *testing.T) {
	build := func(ps ...uint64) factors.Factors {
		f := factors.New()
		for _, p := range ps {
			f.Push(p)
		}
		return f
	}

	t.Run("Commutative", func(t *testing.T) {
		ab := build(2, 3, 3)
		ab.Mul(build(3, 5))
		ba := build(3, 5)
		ba.Mul(build(2, 3, 3))
		require.True(t, ab.Equal(ba))
	})

	t.Run("Associative", func(t *testing.T) {
		left := build(2)
		bc := build(3)
		bc.Mul(build(5, 5))
		left.Mul(bc)

		right := build(2)
		right.Mul(build(3))
		right.Mul(build(5, 5))
		require.True(t, left.Equal(right))
	})

	t.Run("Identity", func(t *testing.T) {
		f := build(2, 3)
		f.Mul(factors.New())
		require.Empty(t, cmp.Diff(map[uint64]uint8{2: 1, 3: 1}, f.Map()))
	})
}

func TestEqual(t *testing.T) {
	a := factors.Prime(13)
	b := factors.Prime(13)
	require.True(t, a.Equal(b))

	b.Push(13)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(factors.Prime(17)))
}
