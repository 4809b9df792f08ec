package random

import (
	"crypto/rand"
	"fmt"
)

// Random provides random byte generation that can be mocked for testing.
// Secrets derived from it (passcodes) must be unpredictable, so the real
// implementation draws from crypto/rand only.
type Random interface {
	// Bytes fills a new slice of length n with random bytes
	Bytes(n int) ([]byte, error)
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Bytes returns n cryptographically random bytes
func (r *CryptoRandom) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
