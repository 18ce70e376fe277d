package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

// Record-specific error definitions.
var (
	// ErrRecordNotFound indicates no record exists with the given ID.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrKeyVersionConflict indicates the stored key version changed underneath an update.
	ErrKeyVersionConflict = errors.Wrap(errors.ErrConflict, "record key version conflict")

	// ErrKeyVersionNotIncreased indicates a rewrap that does not move the key version forward.
	ErrKeyVersionNotIncreased = errors.Wrap(errors.ErrConflict, "key version must increase on rewrap")

	// ErrPayloadChanged indicates a rewrap that alters the ciphertext or its nonce.
	ErrPayloadChanged = errors.Wrap(errors.ErrInvalidInput, "rewrap must not change ciphertext or nonce")

	// ErrInvalidEnvelope indicates an envelope whose decoded fields have the wrong sizes.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid envelope")
)
