//go:build !debug

package prime

func assertCandidate(n uint64) {}
