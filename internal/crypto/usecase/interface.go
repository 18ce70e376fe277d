// Package usecase composes the cryptographic services into the client-side
// envelope workflow: seal a payload under a secret, open it again, and rewrap
// its data key when the secret rotates.
//
// The master key is re-derived from the secret and the record's own salt on
// every call and destroyed before the call returns; nothing is cached between
// operations.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// EnvelopeUseCase defines the client-side envelope encryption operations.
type EnvelopeUseCase interface {
	// Seal encrypts plaintext under a fresh DataKey, wraps the DataKey under a
	// MasterKey derived from secret and a fresh salt, and returns the record at
	// InitialKeyVersion.
	Seal(ctx context.Context, secret string, plaintext []byte) (*cryptoDomain.EncryptedRecord, error)

	// Open re-derives the MasterKey from secret and the record's salt, unwraps
	// the DataKey and decrypts the payload.
	//
	// Security Note: Callers MUST zero the returned plaintext after use by calling
	// cryptoDomain.Zero(plaintext).
	Open(ctx context.Context, secret string, record *cryptoDomain.EncryptedRecord) ([]byte, error)

	// Rewrap moves the record's DataKey from oldSecret to newSecret under a fresh
	// salt and bumps KeyVersion. Ciphertext and Nonce are carried over untouched.
	Rewrap(
		ctx context.Context,
		oldSecret, newSecret string,
		record *cryptoDomain.EncryptedRecord,
	) (*cryptoDomain.EncryptedRecord, error)
}
