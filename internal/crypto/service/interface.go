// Package service provides the cryptographic services for client-side envelope encryption:
// key derivation, AEAD encryption (AES-256-GCM, ChaCha20-Poly1305), data key wrapping
// and a text codec. Every service is stateless and safe for concurrent use.
package service

import (
	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// RandomSource supplies cryptographically secure random bytes. It has the shape
// of io.Reader so crypto/rand.Reader satisfies it directly.
type RandomSource interface {
	Read(p []byte) (n int, err error)
}

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and a fresh nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// CryptoProvider is the single seam to the audited primitives. Services never
// implement a KDF or an AEAD themselves.
type CryptoProvider interface {
	// DeriveKey runs the password-based KDF over secret and salt.
	DeriveKey(secret, salt []byte, iterations, keyLen int) ([]byte, error)

	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver turns a low-entropy secret and a salt into a MasterKey.
type KeyDeriver interface {
	// Derive returns the MasterKey and the salt used. A nil salt makes Derive
	// generate a fresh one.
	Derive(secret string, salt []byte) (*cryptoDomain.MasterKey, []byte, error)
}

// SymmetricCipher encrypts and decrypts byte payloads under a symmetric key.
type SymmetricCipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	Encrypt(plaintext []byte, key cryptoDomain.SymmetricKey) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext. Tag failure yields ErrDecryptionFailed and no plaintext.
	Decrypt(ciphertext, nonce []byte, key cryptoDomain.SymmetricKey) ([]byte, error)
}

// Envelope wraps per-record data keys under a master key.
type Envelope interface {
	// GenerateDataKey returns a fresh random DataKey.
	GenerateDataKey() (*cryptoDomain.DataKey, error)

	// Wrap seals the raw DataKey bytes under masterKey.
	Wrap(dataKey *cryptoDomain.DataKey, masterKey *cryptoDomain.MasterKey) (wrapped, nonce []byte, err error)

	// Unwrap recovers a DataKey sealed under masterKey.
	Unwrap(wrapped, nonce []byte, masterKey *cryptoDomain.MasterKey) (*cryptoDomain.DataKey, error)

	// Rewrap moves a wrapped DataKey from oldKey to newKey without exposing it to the caller.
	Rewrap(
		wrapped, nonce []byte,
		oldKey, newKey *cryptoDomain.MasterKey,
	) (newWrapped, newNonce []byte, err error)
}

// Codec converts binary fields to text and back.
type Codec interface {
	// ToText encodes b as text.
	ToText(b []byte) string

	// FromText decodes text produced by ToText. Malformed input yields ErrInvalidEncoding.
	FromText(s string) ([]byte, error)

	// EncodeRecord converts every binary field of record to text.
	EncodeRecord(record *cryptoDomain.EncryptedRecord) cryptoDomain.EncodedRecord

	// DecodeRecord reverses EncodeRecord.
	DecodeRecord(encoded cryptoDomain.EncodedRecord) (*cryptoDomain.EncryptedRecord, error)
}
