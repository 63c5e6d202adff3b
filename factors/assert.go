//go:build !debug

package factors

func assertPrime(p uint64)   {}
func assertExponent(e uint8) {}
