package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM.
//
// Security properties:
//   - 256-bit key
//   - 12-byte nonce drawn from the injected RandomSource for every encryption
//   - 16-byte authentication tag appended to the ciphertext
//
// The instance is stateless apart from the key schedule and is safe for concurrent use.
type AESGCMCipher struct {
	aead   cipher.AEAD
	random RandomSource
}

// NewAESGCM creates a new AES-256-GCM cipher instance. The key must be exactly 32 bytes.
func NewAESGCM(key []byte, random RandomSource) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead, random: random}, nil
}

// Encrypt seals plaintext with optional AAD and returns the ciphertext with the tag appended
// and the fresh 12-byte nonce.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	return seal(a.aead, a.random, plaintext, aad)
}

// Decrypt opens ciphertext using the provided nonce and AAD. Any tag mismatch returns
// ErrDecryptionFailed and no plaintext.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	return open(a.aead, ciphertext, nonce, aad)
}

func seal(aead cipher.AEAD, random RandomSource, plaintext, aad []byte) ([]byte, []byte, error) {
	nonce, err := randomBytes(random, aead.NonceSize())
	if err != nil {
		return nil, nil, err
	}

	return aead.Seal(nil, nonce, plaintext, aad), nonce, nil
}

func open(aead cipher.AEAD, ciphertext, nonce, aad []byte) ([]byte, error) {
	// cipher.AEAD panics on a nonce of the wrong length.
	if len(nonce) != aead.NonceSize() {
		return nil, cryptoDomain.ErrInvalidNonceSize
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
