// Package sampling provides sources of random bytes for the
// probabilistic parts of the factorization engine.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG draws from the system entropy source and is safe for
// concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG backed by crypto/rand.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG produces a deterministic stream of bytes derived from its
// key through the blake2b XOF. Two KeyedPRNG instances with the same
// key emit the same sequence, which makes probabilistic searches
// replayable.
type KeyedPRNG struct {
	mutex sync.Mutex
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG seeded with key. A nil key is
// treated as an empty one and yields a fixed stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Read fills sum with the next bytes of the keyed stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
