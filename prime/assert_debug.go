//go:build debug

package prime

import "fmt"

func assertCandidate(n uint64) {
	if n < 3 || n&1 == 0 {
		panic(fmt.Sprintf("prime: candidate %d must be odd and > 1", n))
	}
}
