package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

// Cryptographic operation error definitions.
//
// Every error wraps one of the root kinds in internal/errors so callers can
// branch with errors.Is without knowing which component failed:
//   - ErrInvalidInput: malformed input, detected before any primitive runs
//   - ErrAuthentication: AEAD tag verification failed
//   - ErrDecode: malformed text encoding
//   - ErrRandomnessUnavailable: the secure random source failed
var (
	// ErrEmptySecret indicates the caller supplied an empty secret to key derivation.
	ErrEmptySecret = errors.Wrap(errors.ErrInvalidInput, "empty secret")

	// ErrInvalidSaltSize indicates a salt that is not exactly SaltSize bytes.
	ErrInvalidSaltSize = errors.Wrap(errors.ErrInvalidInput, "invalid salt size")

	// ErrInvalidNonceSize indicates a nonce that is not exactly NonceSize bytes.
	ErrInvalidNonceSize = errors.Wrap(errors.ErrInvalidInput, "invalid nonce size")

	// ErrInvalidKeySize indicates key material that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidIterations indicates a KDF work factor below MinKDFIterations.
	ErrInvalidIterations = errors.Wrap(errors.ErrInvalidInput, "kdf iterations below minimum")

	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidRecord indicates a record that is missing or structurally unusable.
	ErrInvalidRecord = errors.Wrap(errors.ErrInvalidInput, "invalid record")

	// ErrKeyDestroyed indicates key material was used after Destroy.
	ErrKeyDestroyed = errors.Wrap(errors.ErrInvalidInput, "key destroyed")

	// ErrDecryptionFailed indicates the AEAD tag did not verify.
	//
	// This can be caused by a wrong key (wrong secret or salt), a wrong nonce, or
	// tampered ciphertext. The specific cause is not disclosed. No plaintext is
	// ever returned alongside this error.
	ErrDecryptionFailed = errors.Wrap(errors.ErrAuthentication, "decryption failed")

	// ErrInvalidEncoding indicates a text field is not valid standard base64.
	ErrInvalidEncoding = errors.Wrap(errors.ErrDecode, "invalid base64 encoding")

	// ErrRandomnessUnavailable indicates the random source returned an error or a short read.
	ErrRandomnessUnavailable = errors.Wrap(errors.ErrRandomnessUnavailable, "secure random source failed")
)
