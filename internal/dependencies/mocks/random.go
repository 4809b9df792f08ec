package mocks

import (
	"github.com/monstermint/backend/internal/dependencies/random"
)

// MockRandom is a deterministic Random for testing. Each call returns
// bytes derived from an incrementing counter, so consecutive calls
// produce distinct but reproducible output.
type MockRandom struct {
	counter byte
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Bytes returns n bytes all set to the current counter value, then
// increments the counter
func (r *MockRandom) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	for i := range b {
		b[i] = r.counter
	}
	r.counter++
	return b, nil
}
