package service

import (
	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// CipherService implements SymmetricCipher for one AEAD algorithm. The raw key
// only leaves its SymmetricKey for the duration of a single call.
type CipherService struct {
	provider  CryptoProvider
	algorithm cryptoDomain.Algorithm
}

// NewCipher creates a new CipherService for the given algorithm.
func NewCipher(provider CryptoProvider, algorithm cryptoDomain.Algorithm) *CipherService {
	return &CipherService{provider: provider, algorithm: algorithm}
}

// Algorithm returns the AEAD algorithm this service seals with.
func (c *CipherService) Algorithm() cryptoDomain.Algorithm {
	return c.algorithm
}

// Encrypt seals plaintext under key. The nonce is fresh for every call, so
// encrypting the same plaintext twice yields different ciphertexts.
func (c *CipherService) Encrypt(
	plaintext []byte,
	key cryptoDomain.SymmetricKey,
) (ciphertext, nonce []byte, err error) {
	if key == nil {
		return nil, nil, cryptoDomain.ErrInvalidKeySize
	}

	err = key.Use(func(raw []byte) error {
		aead, err := c.provider.CreateCipher(raw, c.algorithm)
		if err != nil {
			return err
		}
		ciphertext, nonce, err = aead.Encrypt(plaintext, nil)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext under key. A nonce of the wrong size is rejected
// before any primitive runs. Wrong key, wrong nonce or tampered ciphertext all
// surface as ErrDecryptionFailed.
func (c *CipherService) Decrypt(
	ciphertext, nonce []byte,
	key cryptoDomain.SymmetricKey,
) ([]byte, error) {
	if key == nil {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	if len(nonce) != cryptoDomain.NonceSize {
		return nil, cryptoDomain.ErrInvalidNonceSize
	}
	if len(ciphertext) < cryptoDomain.TagSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	var plaintext []byte
	err := key.Use(func(raw []byte) error {
		aead, err := c.provider.CreateCipher(raw, c.algorithm)
		if err != nil {
			return err
		}
		plaintext, err = aead.Decrypt(ciphertext, nonce, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}
