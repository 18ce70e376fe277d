// Package domain defines the core domain models for the sealed record store.
//
// The store is the persistence collaborator of the envelope scheme: it keeps
// encoded records verbatim and never sees a secret, a key or a plaintext.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
)

// Record is a stored envelope.
type Record struct {
	// ID is a UUIDv7 assigned on creation.
	ID uuid.UUID
	// Envelope is the encoded record exactly as the client produced it.
	Envelope cryptoDomain.EncodedRecord
	// CreatedAt is the UTC timestamp of the first write.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last rewrap.
	UpdatedAt time.Time
}

// KeyVersion returns the envelope key version, treating a missing version as the initial one.
func (r *Record) KeyVersion() uint {
	if r.Envelope.KeyVersion == 0 {
		return cryptoDomain.InitialKeyVersion
	}
	return r.Envelope.KeyVersion
}
