package testutil

import (
	"errors"
	"math/rand/v2"
	"sync"
)

// ErrRandomFailure is returned by FailingRandom once its budget is spent.
var ErrRandomFailure = errors.New("random source failure")

// SeededRandom is a deterministic RandomSource for tests. Two instances built
// from the same seed emit the same byte stream. Never use it outside tests.
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.ChaCha8
}

// NewSeededRandom returns a SeededRandom whose stream is derived from seed.
func NewSeededRandom(seed byte) *SeededRandom {
	var s [32]byte
	for i := range s {
		s[i] = seed
	}
	return &SeededRandom{rng: rand.NewChaCha8(s)}
}

// Read fills p from the seeded stream.
func (r *SeededRandom) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Read(p)
}

// FailingRandom serves up to Budget bytes and then fails every read.
// A zero Budget fails immediately.
type FailingRandom struct {
	mu     sync.Mutex
	Budget int
}

// NewFailingRandom returns a FailingRandom that serves budget zero bytes before failing.
func NewFailingRandom(budget int) *FailingRandom {
	return &FailingRandom{Budget: budget}
}

// Read serves zero bytes while budget remains, then returns ErrRandomFailure.
func (r *FailingRandom) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Budget < len(p) {
		return 0, ErrRandomFailure
	}
	r.Budget -= len(p)
	clear(p)
	return len(p), nil
}
