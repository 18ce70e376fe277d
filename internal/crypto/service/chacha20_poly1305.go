package service

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements the AEAD interface using ChaCha20-Poly1305.
//
// It is the preferred choice on platforms without hardware AES acceleration.
// Nonce and tag sizes match AES-256-GCM so the record layout is the same for both.
type ChaCha20Poly1305Cipher struct {
	aead   cipher.AEAD
	random RandomSource
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance. The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte, random RandomSource) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	return &ChaCha20Poly1305Cipher{aead: aead, random: random}, nil
}

// Encrypt seals plaintext with optional AAD under a fresh 12-byte nonce.
func (c *ChaCha20Poly1305Cipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	return seal(c.aead, c.random, plaintext, aad)
}

// Decrypt opens ciphertext using the provided nonce and AAD.
func (c *ChaCha20Poly1305Cipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	return open(c.aead, ciphertext, nonce, aad)
}
