//go:build debug

package factors

import (
	"fmt"

	"github.com/primekit/factorint/prime"
)

func assertPrime(p uint64) {
	if !prime.IsPrime(p) {
		panic(fmt.Sprintf("factors: %d is not prime", p))
	}
}

func assertExponent(e uint8) {
	if e == 0 {
		panic("factors: exponent must be at least 1")
	}
}
