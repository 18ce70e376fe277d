package service

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// systemRandom reads from the operating system CSPRNG through crypto/rand.
type systemRandom struct{}

// NewSystemRandom returns the production RandomSource backed by crypto/rand.
// It is safe for concurrent use.
func NewSystemRandom() RandomSource {
	return systemRandom{}
}

// Read fills p from crypto/rand.
func (systemRandom) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// randomBytes returns n bytes from src. A failed or short read is reported as
// ErrRandomnessUnavailable; there is no fallback to a weaker source.
func randomBytes(src RandomSource, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrRandomnessUnavailable, err)
	}
	return b, nil
}
